// Copyright 2024 the scwserverless authors
//
//
//    Licensed under the Apache License, Version 2.0 (the "License");
//    you may not use this file except in compliance with the License.
//    You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
//    Unless required by applicable law or agreed to in writing, software
//    distributed under the License is distributed on an "AS IS" BASIS,
//    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//    See the License for the specific language governing permissions and
//    limitations under the License.

// Package registry contains the implementation of the ContainerRegistry
// data source following the Terraform framework interfaces. Registry
// namespaces are provisioned by Scaleway alongside serverless namespaces,
// so the provider only exposes a read path.
package registry

import (
	"context"
	"fmt"

	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/config"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/models"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/scaleway"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/validators"
)

// Ensure provider defined types fully satisfy framework interfaces.
var (
	_ datasource.DataSource              = &DataSourceContainerRegistry{}
	_ datasource.DataSourceWithConfigure = &DataSourceContainerRegistry{}
)

// DataSourceContainerRegistry represents a container registry data source.
type DataSourceContainerRegistry struct {
	Client    *scaleway.Client
	ProjectID string
}

// Metadata returns the full name of the ContainerRegistry data source.
func (*DataSourceContainerRegistry) Metadata(_ context.Context, _ datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = "scwserverless_container_registry"
}

// Configure uses provider level data to configure
// DataSourceContainerRegistry's client.
func (d *DataSourceContainerRegistry) Configure(_ context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	if req.ProviderData == nil {
		return
	}

	p, ok := req.ProviderData.(config.Datasource)
	if !ok {
		resp.Diagnostics.AddError(
			"Unexpected Datasource Configure Type",
			fmt.Sprintf("Expected config.Datasource, got: %T. Please report this issue to the provider developers.", req.ProviderData))
		return
	}
	d.Client = p.Client
	d.ProjectID = p.ProjectID
}

// Schema returns the schema for the ContainerRegistry data source.
func (*DataSourceContainerRegistry) Schema(_ context.Context, _ datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = datasourceContainerRegistrySchema()
}

func datasourceContainerRegistrySchema() schema.Schema {
	return schema.Schema{
		Attributes: map[string]schema.Attribute{
			"name": schema.StringAttribute{
				Required:    true,
				Description: "Name of the registry namespace",
			},
			"region": schema.StringAttribute{
				Required:    true,
				Description: "Scaleway region of the registry namespace (for example fr-par)",
				Validators:  validators.Regions(),
			},
			"project_id": schema.StringAttribute{
				Optional:    true,
				Computed:    true,
				Description: "Project to look the registry namespace up in. Defaults to the provider level project",
			},
			"id": schema.StringAttribute{
				Computed:    true,
				Description: "The ID of the registry namespace",
			},
			"description": schema.StringAttribute{
				Computed:    true,
				Description: "Description of the registry namespace",
			},
			"endpoint": schema.StringAttribute{
				Computed:    true,
				Description: "Endpoint images are pulled from, for example rg.fr-par.scw.cloud/mynamespace",
			},
			"is_public": schema.BoolAttribute{
				Computed:    true,
				Description: "Whether images can be pulled without authentication",
			},
			"size": schema.Int64Attribute{
				Computed:    true,
				Description: "Total size of the images stored in the registry namespace, in bytes",
			},
			"image_count": schema.Int64Attribute{
				Computed:    true,
				Description: "Number of images stored in the registry namespace",
			},
			"organization_id": schema.StringAttribute{
				Computed:    true,
				Description: "Organization owning the registry namespace",
			},
			"status": schema.StringAttribute{
				Computed:    true,
				Description: "Provider reported status of the registry namespace",
			},
			"status_message": schema.StringAttribute{
				Computed:    true,
				Description: "Details about the current status, if any",
			},
			"created_at": schema.StringAttribute{
				Computed:    true,
				Description: "Creation timestamp of the registry namespace",
			},
			"updated_at": schema.StringAttribute{
				Computed:    true,
				Description: "Last update timestamp of the registry namespace",
			},
		},
		Description: "Data source for a Scaleway container registry namespace",
	}
}

// Read reads the ContainerRegistry data source's values and updates the
// state. Registry namespaces are looked up by name within a project.
func (d *DataSourceContainerRegistry) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	var model models.ContainerRegistry
	resp.Diagnostics.Append(req.Config.Get(ctx, &model)...)
	if resp.Diagnostics.HasError() {
		return
	}

	projectID := model.ProjectID.ValueString()
	if projectID == "" {
		projectID = d.ProjectID
	}
	ns, err := d.Client.RegistryNamespaceByName(ctx, model.Region.ValueString(), projectID, model.Name.ValueString())
	if err != nil {
		resp.Diagnostics.AddError(fmt.Sprintf("failed to find container registry %s", model.Name.ValueString()), err.Error())
		return
	}

	resp.Diagnostics.Append(resp.State.Set(ctx, models.ContainerRegistry{
		ID:             types.StringValue(ns.ID),
		ProjectID:      types.StringValue(ns.ProjectID),
		Region:         model.Region,
		Name:           types.StringValue(ns.Name),
		Description:    types.StringValue(ns.Description),
		Endpoint:       types.StringValue(ns.Endpoint),
		IsPublic:       types.BoolValue(ns.IsPublic),
		Size:           types.Int64Value(ns.Size),
		ImageCount:     types.Int64Value(ns.ImageCount),
		OrganizationID: types.StringValue(ns.OrganizationID),
		Status:         types.StringValue(ns.Status),
		StatusMessage:  types.StringValue(ns.StatusMessage),
		CreatedAt:      types.StringValue(ns.CreatedAt),
		UpdatedAt:      types.StringValue(ns.UpdatedAt),
	})...)
}

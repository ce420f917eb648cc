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

package functionnamespace

import (
	"context"
	"fmt"

	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/config"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/models"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/scaleway"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/utils"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/validators"
)

// Ensure provider defined types fully satisfy framework interfaces.
var (
	_ datasource.DataSource              = &DataSourceFunctionNamespace{}
	_ datasource.DataSourceWithConfigure = &DataSourceFunctionNamespace{}
)

// DataSourceFunctionNamespace represents a function namespace data source.
type DataSourceFunctionNamespace struct {
	Client    *scaleway.Client
	ProjectID string
}

// Metadata returns the full name of the FunctionNamespace data source.
func (*DataSourceFunctionNamespace) Metadata(_ context.Context, _ datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = "scwserverless_function_namespace"
}

// Configure uses provider level data to configure DataSourceFunctionNamespace's client.
func (d *DataSourceFunctionNamespace) Configure(_ context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
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

// Schema returns the schema for the FunctionNamespace data source.
func (*DataSourceFunctionNamespace) Schema(_ context.Context, _ datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = datasourceFunctionNamespaceSchema()
}

func datasourceFunctionNamespaceSchema() schema.Schema {
	return schema.Schema{
		Attributes: map[string]schema.Attribute{
			"name": schema.StringAttribute{
				Required:    true,
				Description: "Name of the function namespace",
			},
			"region": schema.StringAttribute{
				Required:    true,
				Description: "Scaleway region of the function namespace (for example fr-par)",
				Validators:  validators.Regions(),
			},
			"project_id": schema.StringAttribute{
				Optional:    true,
				Computed:    true,
				Description: "Project to look the function namespace up in. Defaults to the provider level project",
			},
			"id": schema.StringAttribute{
				Computed:    true,
				Description: "The ID of the function namespace",
			},
			"description": schema.StringAttribute{
				Computed:    true,
				Description: "Description of the function namespace",
			},
			"environment_variables": schema.MapAttribute{
				Computed:    true,
				ElementType: types.StringType,
				Description: "Environment variables injected in functions at runtime",
			},
			"organization_id": schema.StringAttribute{
				Computed:    true,
				Description: "Organization owning the function namespace",
			},
			"registry_endpoint": schema.StringAttribute{
				Computed:    true,
				Description: "Endpoint of the registry provisioned alongside the function namespace",
			},
			"registry_namespace_id": schema.StringAttribute{
				Computed:    true,
				Description: "The ID of the registry namespace provisioned alongside the function namespace",
			},
			"status": schema.StringAttribute{
				Computed:    true,
				Description: "Provider reported status of the function namespace",
			},
			"error_message": schema.StringAttribute{
				Computed:    true,
				Description: "Details of the last provisioning failure, if any",
			},
		},
		Description: "Data source for a Scaleway serverless function namespace",
	}
}

// Read reads the FunctionNamespace data source's values and updates the
// state. Namespaces are looked up by name within a project.
func (d *DataSourceFunctionNamespace) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	var model models.FunctionNamespaceData
	resp.Diagnostics.Append(req.Config.Get(ctx, &model)...)
	if resp.Diagnostics.HasError() {
		return
	}

	projectID := model.ProjectID.ValueString()
	if projectID == "" {
		projectID = d.ProjectID
	}
	ns, err := d.Client.FunctionNamespaceByName(ctx, model.Region.ValueString(), projectID, model.Name.ValueString())
	if err != nil {
		resp.Diagnostics.AddError(fmt.Sprintf("failed to find function namespace %s", model.Name.ValueString()), err.Error())
		return
	}

	envVars, diags := utils.StringMapToTypesMap(ns.EnvironmentVariables)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}
	resp.Diagnostics.Append(resp.State.Set(ctx, models.FunctionNamespaceData{
		ID:                   types.StringValue(ns.ID),
		ProjectID:            types.StringValue(ns.ProjectID),
		Region:               model.Region,
		Name:                 types.StringValue(ns.Name),
		Description:          types.StringValue(ns.Description),
		EnvironmentVariables: envVars,
		OrganizationID:       types.StringValue(ns.OrganizationID),
		RegistryEndpoint:     types.StringValue(ns.RegistryEndpoint),
		RegistryNamespaceID:  types.StringValue(ns.RegistryNamespaceID),
		Status:               types.StringValue(ns.Status),
		ErrorMessage:         types.StringValue(ns.ErrorMessage),
	})...)
}

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

package container

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
	_ datasource.DataSource              = &DataSourceContainer{}
	_ datasource.DataSourceWithConfigure = &DataSourceContainer{}
)

// DataSourceContainer represents a container data source.
type DataSourceContainer struct {
	Client *scaleway.Client
}

// Metadata returns the full name of the Container data source.
func (*DataSourceContainer) Metadata(_ context.Context, _ datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = "scwserverless_container"
}

// Configure uses provider level data to configure DataSourceContainer's
// client.
func (d *DataSourceContainer) Configure(_ context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
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
}

// Schema returns the schema for the Container data source.
func (*DataSourceContainer) Schema(_ context.Context, _ datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = datasourceContainerSchema()
}

func datasourceContainerSchema() schema.Schema {
	return schema.Schema{
		Attributes: map[string]schema.Attribute{
			"name": schema.StringAttribute{
				Required:    true,
				Description: "Name of the container",
			},
			"namespace_id": schema.StringAttribute{
				Required:    true,
				Description: "The ID of the container namespace holding the container",
			},
			"region": schema.StringAttribute{
				Required:    true,
				Description: "Scaleway region of the container (for example fr-par)",
				Validators:  validators.Regions(),
			},
			"id": schema.StringAttribute{
				Computed:    true,
				Description: "The ID of the container",
			},
			"description": schema.StringAttribute{
				Computed:    true,
				Description: "Description of the container",
			},
			"min_scale": schema.Int64Attribute{
				Computed:    true,
				Description: "Minimum number of instances kept running",
			},
			"max_scale": schema.Int64Attribute{
				Computed:    true,
				Description: "Maximum number of instances the container scales to",
			},
			"environment_variables": schema.MapAttribute{
				Computed:    true,
				ElementType: types.StringType,
				Description: "Environment variables injected in the container at runtime",
			},
			"memory_limit": schema.Int64Attribute{
				Computed:    true,
				Description: "Memory allocated to each instance, in MB",
			},
			"cpu_limit": schema.Int64Attribute{
				Computed:    true,
				Description: "CPU allocated to each instance, in mvCPU",
			},
			"timeout": schema.StringAttribute{
				Computed:    true,
				Description: "Maximum duration a request can take before the instance is considered hung",
			},
			"privacy": schema.StringAttribute{
				Computed:    true,
				Description: "Whether the container endpoint requires authentication (public or private)",
			},
			"registry_image": schema.StringAttribute{
				Computed:    true,
				Description: "Registry image the container runs",
			},
			"max_concurrency": schema.Int64Attribute{
				Computed:    true,
				Description: "Maximum number of requests an instance handles concurrently",
			},
			"protocol": schema.StringAttribute{
				Computed:    true,
				Description: "Protocol the container speaks (http1 or h2c)",
			},
			"port": schema.Int64Attribute{
				Computed:    true,
				Description: "Port the container listens on",
			},
			"domain_name": schema.StringAttribute{
				Computed:    true,
				Description: "Domain name the container is served on",
			},
			"status": schema.StringAttribute{
				Computed:    true,
				Description: "Provider reported status of the container",
			},
			"error_message": schema.StringAttribute{
				Computed:    true,
				Description: "Details of the last deployment failure, if any",
			},
		},
		Description: "Data source for a Scaleway serverless container",
	}
}

// Read reads the Container data source's values and updates the state.
// Containers are looked up by name within a namespace.
func (d *DataSourceContainer) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	var model models.ContainerData
	resp.Diagnostics.Append(req.Config.Get(ctx, &model)...)
	if resp.Diagnostics.HasError() {
		return
	}

	cn, err := d.Client.ContainerByName(ctx, model.Region.ValueString(), model.NamespaceID.ValueString(), model.Name.ValueString())
	if err != nil {
		resp.Diagnostics.AddError(fmt.Sprintf("failed to find container %s", model.Name.ValueString()), err.Error())
		return
	}

	envVars, diags := utils.StringMapToTypesMap(cn.EnvironmentVariables)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}
	resp.Diagnostics.Append(resp.State.Set(ctx, models.ContainerData{
		ID:                   types.StringValue(cn.ID),
		NamespaceID:          types.StringValue(cn.NamespaceID),
		Region:               model.Region,
		Name:                 types.StringValue(cn.Name),
		Description:          types.StringValue(cn.Description),
		MinScale:             types.Int64Value(cn.MinScale),
		MaxScale:             types.Int64Value(cn.MaxScale),
		EnvironmentVariables: envVars,
		MemoryLimit:          types.Int64Value(cn.MemoryLimit),
		Timeout:              types.StringValue(cn.Timeout),
		Privacy:              types.StringValue(cn.Privacy),
		RegistryImage:        types.StringValue(cn.RegistryImage),
		MaxConcurrency:       types.Int64Value(cn.MaxConcurrency),
		Protocol:             types.StringValue(cn.Protocol),
		Port:                 types.Int64Value(cn.Port),
		CPULimit:             types.Int64Value(cn.CPULimit),
		DomainName:           types.StringValue(cn.DomainName),
		Status:               types.StringValue(cn.Status),
		ErrorMessage:         types.StringValue(cn.ErrorMessage),
	})...)
}

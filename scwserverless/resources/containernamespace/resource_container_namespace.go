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

// Package containernamespace contains the implementation of the
// ContainerNamespace resource following the Terraform framework
// interfaces.
package containernamespace

import (
	"context"
	"fmt"

	"github.com/hashicorp/terraform-plugin-framework-timeouts/resource/timeouts"
	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/planmodifier"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/stringplanmodifier"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/config"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/models"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/scaleway"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/utils"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/validators"
)

// Ensure provider defined types fully satisfy framework interfaces.
var (
	_ resource.Resource                = &ContainerNamespace{}
	_ resource.ResourceWithConfigure   = &ContainerNamespace{}
	_ resource.ResourceWithImportState = &ContainerNamespace{}
)

var stableStates = []string{"ready"}

// ContainerNamespace represents a container namespace managed resource.
type ContainerNamespace struct {
	Client    *scaleway.Client
	ProjectID string
}

// Metadata returns the full name of the ContainerNamespace resource.
func (*ContainerNamespace) Metadata(_ context.Context, _ resource.MetadataRequest, resp *resource.MetadataResponse) {
	resp.TypeName = "scwserverless_container_namespace"
}

// Configure uses provider level data to configure ContainerNamespace's
// client.
func (r *ContainerNamespace) Configure(_ context.Context, req resource.ConfigureRequest, resp *resource.ConfigureResponse) {
	if req.ProviderData == nil {
		return
	}

	p, ok := req.ProviderData.(config.Resource)
	if !ok {
		resp.Diagnostics.AddError(
			"Unexpected Resource Configure Type",
			fmt.Sprintf("Expected config.Resource, got: %T. Please report this issue to the provider developers.", req.ProviderData))
		return
	}
	r.Client = p.Client
	r.ProjectID = p.ProjectID
}

// Schema returns the schema for the ContainerNamespace resource.
func (*ContainerNamespace) Schema(ctx context.Context, _ resource.SchemaRequest, resp *resource.SchemaResponse) {
	resp.Schema = resourceContainerNamespaceSchema(ctx)
}

func resourceContainerNamespaceSchema(ctx context.Context) schema.Schema {
	return schema.Schema{
		Attributes: map[string]schema.Attribute{
			"name": schema.StringAttribute{
				Required:      true,
				Description:   "Name of the container namespace",
				PlanModifiers: []planmodifier.String{stringplanmodifier.RequiresReplace()},
			},
			"project_id": schema.StringAttribute{
				Optional:      true,
				Computed:      true,
				Description:   "Project in which to create the container namespace. Defaults to the provider level project",
				PlanModifiers: []planmodifier.String{stringplanmodifier.RequiresReplace(), stringplanmodifier.UseStateForUnknown()},
			},
			"region": schema.StringAttribute{
				Required:      true,
				Description:   "Scaleway region of the container namespace (for example fr-par)",
				Validators:    validators.Regions(),
				PlanModifiers: []planmodifier.String{stringplanmodifier.RequiresReplace()},
			},
			"description": schema.StringAttribute{
				Optional:    true,
				Computed:    true,
				Description: "Description of the container namespace",
			},
			"environment_variables": schema.MapAttribute{
				Optional:    true,
				ElementType: types.StringType,
				Description: "Environment variables injected in containers at runtime",
			},
			"secret_environment_variables": schema.MapAttribute{
				Optional:    true,
				Sensitive:   true,
				ElementType: types.StringType,
				Description: "Secret environment variables injected in containers at runtime. The API never echoes the values back",
			},
			"id": schema.StringAttribute{
				Computed:      true,
				Description:   "The ID of the container namespace",
				PlanModifiers: []planmodifier.String{stringplanmodifier.UseStateForUnknown()},
			},
			"organization_id": schema.StringAttribute{
				Computed:    true,
				Description: "Organization owning the container namespace",
			},
			"registry_endpoint": schema.StringAttribute{
				Computed:    true,
				Description: "Endpoint of the registry provisioned alongside the container namespace",
			},
			"registry_namespace_id": schema.StringAttribute{
				Computed:    true,
				Description: "The ID of the registry namespace provisioned alongside the container namespace",
			},
			"status": schema.StringAttribute{
				Computed:    true,
				Description: "Provider reported status of the container namespace",
			},
			"error_message": schema.StringAttribute{
				Computed:    true,
				Description: "Details of the last provisioning failure, if any",
			},
			"timeouts": timeouts.Attributes(ctx, timeouts.Opts{
				Create: true,
				Update: true,
				Delete: true,
			}),
		},
		Description: "A Scaleway serverless container namespace",
	}
}

// Create creates a new ContainerNamespace resource. It updates the state
// if the resource is successfully created.
func (r *ContainerNamespace) Create(ctx context.Context, req resource.CreateRequest, resp *resource.CreateResponse) {
	var model models.ContainerNamespace
	resp.Diagnostics.Append(req.Plan.Get(ctx, &model)...)
	if resp.Diagnostics.HasError() {
		return
	}

	nsReq, diags := GenerateNamespaceRequest(ctx, model, r.ProjectID)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	region := model.Region.ValueString()
	ns, err := r.Client.CreateContainerNamespace(ctx, region, nsReq)
	if err != nil {
		resp.Diagnostics.AddError("failed to create container namespace", err.Error())
		return
	}
	// write initial state so that if provisioning fails, we can still track and delete it
	resp.Diagnostics.Append(resp.State.SetAttribute(ctx, path.Root("id"), ns.ID)...)
	if resp.Diagnostics.HasError() {
		return
	}

	createTimeout, diags := model.Timeouts.Create(ctx, utils.DefaultWaitTimeout)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}
	if _, err := utils.WaitForState(ctx, r.stateReader(region, ns.ID), stableStates, createTimeout, utils.DefaultPollInterval); err != nil {
		resp.Diagnostics.AddError("container namespace did not reach a stable status while creating", err.Error())
		return
	}

	ns, err = r.Client.GetContainerNamespace(ctx, region, ns.ID)
	if err != nil {
		resp.Diagnostics.AddError(fmt.Sprintf("successfully created container namespace %q, but failed to read it back", ns.ID), err.Error())
		return
	}
	persist, diags := generateModel(ns, model)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}
	resp.Diagnostics.Append(resp.State.Set(ctx, persist)...)
}

// Read reads ContainerNamespace resource's values and updates the state.
func (r *ContainerNamespace) Read(ctx context.Context, req resource.ReadRequest, resp *resource.ReadResponse) {
	var model models.ContainerNamespace
	resp.Diagnostics.Append(req.State.Get(ctx, &model)...)
	if resp.Diagnostics.HasError() {
		return
	}

	ns, err := r.Client.GetContainerNamespace(ctx, model.Region.ValueString(), model.ID.ValueString())
	if err != nil {
		if utils.IsNotFound(err) {
			resp.State.RemoveResource(ctx)
			return
		}
		resp.Diagnostics.AddError(fmt.Sprintf("failed to read container namespace %s", model.ID), err.Error())
		return
	}

	persist, diags := generateModel(ns, model)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}
	resp.Diagnostics.Append(resp.State.Set(ctx, persist)...)
}

// Update updates the ContainerNamespace resource. Only description and
// environment variables are mutable.
func (r *ContainerNamespace) Update(ctx context.Context, req resource.UpdateRequest, resp *resource.UpdateResponse) {
	var plan models.ContainerNamespace
	resp.Diagnostics.Append(req.Plan.Get(ctx, &plan)...)
	if resp.Diagnostics.HasError() {
		return
	}

	patch, diags := GenerateNamespaceUpdateRequest(ctx, plan)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	region := plan.Region.ValueString()
	id := plan.ID.ValueString()
	if _, err := r.Client.UpdateContainerNamespace(ctx, region, id, patch); err != nil {
		resp.Diagnostics.AddError("failed to update container namespace", err.Error())
		return
	}

	updateTimeout, diags := plan.Timeouts.Update(ctx, utils.DefaultWaitTimeout)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}
	if _, err := utils.WaitForState(ctx, r.stateReader(region, id), stableStates, updateTimeout, utils.DefaultPollInterval); err != nil {
		resp.Diagnostics.AddError("container namespace did not reach a stable status while updating", err.Error())
		return
	}

	ns, err := r.Client.GetContainerNamespace(ctx, region, id)
	if err != nil {
		resp.Diagnostics.AddError(fmt.Sprintf("successfully updated container namespace %q, but failed to read it back", id), err.Error())
		return
	}
	persist, diags := generateModel(ns, plan)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}
	resp.Diagnostics.Append(resp.State.Set(ctx, persist)...)
}

// Delete deletes the ContainerNamespace resource and the containers it
// holds.
func (r *ContainerNamespace) Delete(ctx context.Context, req resource.DeleteRequest, resp *resource.DeleteResponse) {
	var model models.ContainerNamespace
	resp.Diagnostics.Append(req.State.Get(ctx, &model)...)
	if resp.Diagnostics.HasError() {
		return
	}

	region := model.Region.ValueString()
	id := model.ID.ValueString()
	deleteTimeout, diags := model.Timeouts.Delete(ctx, utils.DefaultWaitTimeout)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	// let any in-flight transition settle first; a namespace stuck in
	// error is still deletable
	if _, err := utils.WaitForState(ctx, r.stateReader(region, id), stableStates, deleteTimeout, utils.DefaultPollInterval); err != nil {
		tflog.Warn(ctx, "deleting container namespace in a non stable status", map[string]any{
			"id":    id,
			"error": err.Error(),
		})
	}

	if err := r.Client.DeleteContainerNamespace(ctx, region, id); err != nil {
		if utils.IsNotFound(err) {
			resp.State.RemoveResource(ctx)
			return
		}
		resp.Diagnostics.AddError("failed to delete container namespace", err.Error())
		return
	}

	if _, err := utils.WaitForState(ctx, r.stateReader(region, id), []string{utils.StatusAbsent}, deleteTimeout, utils.DefaultPollInterval); err != nil {
		resp.Diagnostics.AddError("container namespace was not fully deleted within the timeout", err.Error())
	}
}

// ImportState imports and updates the state of the container namespace
// resource.
func (*ContainerNamespace) ImportState(ctx context.Context, req resource.ImportStateRequest, resp *resource.ImportStateResponse) {
	resource.ImportStatePassthroughID(ctx, path.Root("id"), req, resp)
}

func (r *ContainerNamespace) stateReader(region, id string) utils.StateReader {
	return utils.StateReaderFunc(func(ctx context.Context) (string, error) {
		ns, err := r.Client.GetContainerNamespace(ctx, region, id)
		if err != nil {
			return "", err
		}
		return ns.Status, nil
	})
}

// GenerateNamespaceRequest was pulled out to enable unit testing.
func GenerateNamespaceRequest(ctx context.Context, model models.ContainerNamespace, defaultProjectID string) (*scaleway.NamespaceRequest, diag.Diagnostics) {
	var diags diag.Diagnostics

	projectID := model.ProjectID.ValueString()
	if projectID == "" {
		projectID = defaultProjectID
	}
	if projectID == "" {
		diags.AddError("project_id missing",
			"no project_id set on the resource or the provider configuration")
		return nil, diags
	}

	envVars, d := utils.TypesMapToStringMap(ctx, model.EnvironmentVariables)
	diags.Append(d...)
	secretVars, d := utils.TypesMapToStringMap(ctx, model.SecretEnvironmentVariables)
	diags.Append(d...)
	if diags.HasError() {
		return nil, diags
	}

	return &scaleway.NamespaceRequest{
		ProjectID:                  projectID,
		Name:                       model.Name.ValueString(),
		Description:                utils.OptionalString(model.Description),
		EnvironmentVariables:       envVars,
		SecretEnvironmentVariables: scaleway.SecretVarsFromMap(secretVars),
	}, diags
}

// GenerateNamespaceUpdateRequest builds the patch payload carrying only
// the mutable namespace attributes.
func GenerateNamespaceUpdateRequest(ctx context.Context, plan models.ContainerNamespace) (*scaleway.NamespaceRequest, diag.Diagnostics) {
	var diags diag.Diagnostics

	envVars, d := utils.TypesMapToStringMap(ctx, plan.EnvironmentVariables)
	diags.Append(d...)
	secretVars, d := utils.TypesMapToStringMap(ctx, plan.SecretEnvironmentVariables)
	diags.Append(d...)
	if diags.HasError() {
		return nil, diags
	}

	return &scaleway.NamespaceRequest{
		Description:                utils.OptionalString(plan.Description),
		EnvironmentVariables:       envVars,
		SecretEnvironmentVariables: scaleway.SecretVarsFromMap(secretVars),
	}, diags
}

// generateModel maps an API descriptor into the Terraform state model.
// Secret environment variables are redacted by the API, so the configured
// values are carried over from the prior model.
func generateModel(ns *scaleway.ContainerNamespace, prior models.ContainerNamespace) (models.ContainerNamespace, diag.Diagnostics) {
	envVars, diags := utils.StringMapToTypesMap(ns.EnvironmentVariables)

	return models.ContainerNamespace{
		ID:                         types.StringValue(ns.ID),
		ProjectID:                  types.StringValue(ns.ProjectID),
		Region:                     prior.Region,
		Name:                       types.StringValue(ns.Name),
		Description:                types.StringValue(ns.Description),
		EnvironmentVariables:       envVars,
		SecretEnvironmentVariables: prior.SecretEnvironmentVariables,
		OrganizationID:             types.StringValue(ns.OrganizationID),
		RegistryEndpoint:           types.StringValue(ns.RegistryEndpoint),
		RegistryNamespaceID:        types.StringValue(ns.RegistryNamespaceID),
		Status:                     types.StringValue(ns.Status),
		ErrorMessage:               types.StringValue(ns.ErrorMessage),
		Timeouts:                   prior.Timeouts,
	}, diags
}

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

// Package container contains the implementation of the Container resource
// and data source following the Terraform framework interfaces.
package container

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
	_ resource.Resource                = &Container{}
	_ resource.ResourceWithConfigure   = &Container{}
	_ resource.ResourceWithImportState = &Container{}
)

// stableStates are the terminal statuses a container settles in after a
// deployment. A container that has never been deployed sits in created.
var stableStates = []string{"ready", "created"}

// Container represents a serverless container managed resource.
type Container struct {
	Client *scaleway.Client
}

// Metadata returns the full name of the Container resource.
func (*Container) Metadata(_ context.Context, _ resource.MetadataRequest, resp *resource.MetadataResponse) {
	resp.TypeName = "scwserverless_container"
}

// Configure uses provider level data to configure Container's client.
func (r *Container) Configure(_ context.Context, req resource.ConfigureRequest, resp *resource.ConfigureResponse) {
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
}

// Schema returns the schema for the Container resource.
func (*Container) Schema(ctx context.Context, _ resource.SchemaRequest, resp *resource.SchemaResponse) {
	resp.Schema = resourceContainerSchema(ctx)
}

func resourceContainerSchema(ctx context.Context) schema.Schema {
	return schema.Schema{
		Attributes: map[string]schema.Attribute{
			"name": schema.StringAttribute{
				Required:      true,
				Description:   "Name of the container",
				PlanModifiers: []planmodifier.String{stringplanmodifier.RequiresReplace()},
			},
			"namespace_id": schema.StringAttribute{
				Required:      true,
				Description:   "The ID of the container namespace holding the container",
				PlanModifiers: []planmodifier.String{stringplanmodifier.RequiresReplace()},
			},
			"region": schema.StringAttribute{
				Required:      true,
				Description:   "Scaleway region of the container (for example fr-par)",
				Validators:    validators.Regions(),
				PlanModifiers: []planmodifier.String{stringplanmodifier.RequiresReplace()},
			},
			"registry_image": schema.StringAttribute{
				Required:    true,
				Description: "Registry image the container runs, for example rg.fr-par.scw.cloud/mynamespace/myimage:latest",
			},
			"description": schema.StringAttribute{
				Optional:    true,
				Computed:    true,
				Description: "Description of the container",
			},
			"min_scale": schema.Int64Attribute{
				Optional:    true,
				Computed:    true,
				Description: "Minimum number of instances kept running",
			},
			"max_scale": schema.Int64Attribute{
				Optional:    true,
				Computed:    true,
				Description: "Maximum number of instances the container scales to",
			},
			"environment_variables": schema.MapAttribute{
				Optional:    true,
				ElementType: types.StringType,
				Description: "Environment variables injected in the container at runtime",
			},
			"secret_environment_variables": schema.MapAttribute{
				Optional:    true,
				Sensitive:   true,
				ElementType: types.StringType,
				Description: "Secret environment variables injected in the container at runtime. The API never echoes the values back",
			},
			"memory_limit": schema.Int64Attribute{
				Optional:    true,
				Computed:    true,
				Description: "Memory allocated to each instance, in MB",
			},
			"cpu_limit": schema.Int64Attribute{
				Optional:    true,
				Computed:    true,
				Description: "CPU allocated to each instance, in mvCPU",
			},
			"timeout": schema.StringAttribute{
				Optional:    true,
				Computed:    true,
				Description: "Maximum duration a request can take before the instance is considered hung, for example 300s",
			},
			"privacy": schema.StringAttribute{
				Optional:    true,
				Computed:    true,
				Description: "Whether the container endpoint requires authentication (public or private)",
				Validators:  validators.Privacies(),
			},
			"max_concurrency": schema.Int64Attribute{
				Optional:    true,
				Computed:    true,
				Description: "Maximum number of requests an instance handles concurrently",
			},
			"protocol": schema.StringAttribute{
				Optional:    true,
				Computed:    true,
				Description: "Protocol the container speaks (http1 or h2c)",
				Validators:  validators.Protocols(),
			},
			"port": schema.Int64Attribute{
				Optional:    true,
				Computed:    true,
				Description: "Port the container listens on",
			},
			"redeploy": schema.BoolAttribute{
				Optional:    true,
				Description: "Force a redeployment of the container on the next update",
			},
			"id": schema.StringAttribute{
				Computed:      true,
				Description:   "The ID of the container",
				PlanModifiers: []planmodifier.String{stringplanmodifier.UseStateForUnknown()},
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
			"timeouts": timeouts.Attributes(ctx, timeouts.Opts{
				Create: true,
				Update: true,
				Delete: true,
			}),
		},
		Description: "A Scaleway serverless container",
	}
}

// Create creates a new Container resource. It updates the state if the
// container is successfully created.
func (r *Container) Create(ctx context.Context, req resource.CreateRequest, resp *resource.CreateResponse) {
	var model models.Container
	resp.Diagnostics.Append(req.Plan.Get(ctx, &model)...)
	if resp.Diagnostics.HasError() {
		return
	}

	cnReq, diags := GenerateContainerRequest(ctx, model, true)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	region := model.Region.ValueString()
	cn, err := r.Client.CreateContainer(ctx, region, cnReq)
	if err != nil {
		resp.Diagnostics.AddError("failed to create container", err.Error())
		return
	}
	// write initial state so that if deployment fails, we can still track and delete it
	resp.Diagnostics.Append(resp.State.SetAttribute(ctx, path.Root("id"), cn.ID)...)
	if resp.Diagnostics.HasError() {
		return
	}

	createTimeout, diags := model.Timeouts.Create(ctx, utils.DefaultWaitTimeout)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}
	if _, err := utils.WaitForState(ctx, r.stateReader(region, cn.ID), stableStates, createTimeout, utils.DefaultPollInterval); err != nil {
		resp.Diagnostics.AddError("container did not reach a stable status while creating", err.Error())
		return
	}

	cn, err = r.Client.GetContainer(ctx, region, cn.ID)
	if err != nil {
		resp.Diagnostics.AddError(fmt.Sprintf("successfully created container %q, but failed to read it back", cn.ID), err.Error())
		return
	}
	persist, diags := generateModel(cn, model)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}
	resp.Diagnostics.Append(resp.State.Set(ctx, persist)...)
}

// Read reads Container resource's values and updates the state.
func (r *Container) Read(ctx context.Context, req resource.ReadRequest, resp *resource.ReadResponse) {
	var model models.Container
	resp.Diagnostics.Append(req.State.Get(ctx, &model)...)
	if resp.Diagnostics.HasError() {
		return
	}

	cn, err := r.Client.GetContainer(ctx, model.Region.ValueString(), model.ID.ValueString())
	if err != nil {
		if utils.IsNotFound(err) {
			resp.State.RemoveResource(ctx)
			return
		}
		resp.Diagnostics.AddError(fmt.Sprintf("failed to read container %s", model.ID), err.Error())
		return
	}

	persist, diags := generateModel(cn, model)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}
	resp.Diagnostics.Append(resp.State.Set(ctx, persist)...)
}

// Update updates the Container resource, then waits for the triggered
// deployment to settle.
func (r *Container) Update(ctx context.Context, req resource.UpdateRequest, resp *resource.UpdateResponse) {
	var plan models.Container
	resp.Diagnostics.Append(req.Plan.Get(ctx, &plan)...)
	if resp.Diagnostics.HasError() {
		return
	}

	patch, diags := GenerateContainerRequest(ctx, plan, false)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	region := plan.Region.ValueString()
	id := plan.ID.ValueString()
	if _, err := r.Client.UpdateContainer(ctx, region, id, patch); err != nil {
		resp.Diagnostics.AddError("failed to update container", err.Error())
		return
	}

	updateTimeout, diags := plan.Timeouts.Update(ctx, utils.DefaultWaitTimeout)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}
	if _, err := utils.WaitForState(ctx, r.stateReader(region, id), stableStates, updateTimeout, utils.DefaultPollInterval); err != nil {
		resp.Diagnostics.AddError("container did not reach a stable status while updating", err.Error())
		return
	}

	cn, err := r.Client.GetContainer(ctx, region, id)
	if err != nil {
		resp.Diagnostics.AddError(fmt.Sprintf("successfully updated container %q, but failed to read it back", id), err.Error())
		return
	}
	persist, diags := generateModel(cn, plan)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}
	resp.Diagnostics.Append(resp.State.Set(ctx, persist)...)
}

// Delete deletes the Container resource.
func (r *Container) Delete(ctx context.Context, req resource.DeleteRequest, resp *resource.DeleteResponse) {
	var model models.Container
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

	// let any in-flight deployment settle first; a container stuck in
	// error is still deletable
	if _, err := utils.WaitForState(ctx, r.stateReader(region, id), stableStates, deleteTimeout, utils.DefaultPollInterval); err != nil {
		tflog.Warn(ctx, "deleting container in a non stable status", map[string]any{
			"id":    id,
			"error": err.Error(),
		})
	}

	if err := r.Client.DeleteContainer(ctx, region, id); err != nil {
		if utils.IsNotFound(err) {
			resp.State.RemoveResource(ctx)
			return
		}
		resp.Diagnostics.AddError("failed to delete container", err.Error())
		return
	}

	if _, err := utils.WaitForState(ctx, r.stateReader(region, id), []string{utils.StatusAbsent}, deleteTimeout, utils.DefaultPollInterval); err != nil {
		resp.Diagnostics.AddError("container was not fully deleted within the timeout", err.Error())
	}
}

// ImportState imports and updates the state of the container resource.
func (*Container) ImportState(ctx context.Context, req resource.ImportStateRequest, resp *resource.ImportStateResponse) {
	resource.ImportStatePassthroughID(ctx, path.Root("id"), req, resp)
}

func (r *Container) stateReader(region, id string) utils.StateReader {
	return utils.StateReaderFunc(func(ctx context.Context) (string, error) {
		cn, err := r.Client.GetContainer(ctx, region, id)
		if err != nil {
			return "", err
		}
		return cn.Status, nil
	})
}

// GenerateContainerRequest was pulled out to enable unit testing. The
// creation payload carries namespace and name; updates carry the redeploy
// flag instead, which the creation endpoint rejects.
func GenerateContainerRequest(ctx context.Context, model models.Container, isCreate bool) (*scaleway.ContainerRequest, diag.Diagnostics) {
	var diags diag.Diagnostics

	envVars, d := utils.TypesMapToStringMap(ctx, model.EnvironmentVariables)
	diags.Append(d...)
	secretVars, d := utils.TypesMapToStringMap(ctx, model.SecretEnvironmentVariables)
	diags.Append(d...)
	if diags.HasError() {
		return nil, diags
	}

	req := &scaleway.ContainerRequest{
		Description:                utils.OptionalString(model.Description),
		MinScale:                   utils.OptionalInt64(model.MinScale),
		MaxScale:                   utils.OptionalInt64(model.MaxScale),
		EnvironmentVariables:       envVars,
		SecretEnvironmentVariables: scaleway.SecretVarsFromMap(secretVars),
		MemoryLimit:                utils.OptionalInt64(model.MemoryLimit),
		Timeout:                    utils.OptionalString(model.Timeout),
		Privacy:                    utils.OptionalString(model.Privacy),
		RegistryImage:              utils.OptionalString(model.RegistryImage),
		MaxConcurrency:             utils.OptionalInt64(model.MaxConcurrency),
		Protocol:                   utils.OptionalString(model.Protocol),
		Port:                       utils.OptionalInt64(model.Port),
	}
	if isCreate {
		req.NamespaceID = model.NamespaceID.ValueString()
		req.Name = model.Name.ValueString()
	} else {
		req.Redeploy = utils.OptionalBool(model.Redeploy)
	}
	return req, diags
}

// generateModel maps an API descriptor into the Terraform state model.
// Secret environment variables are redacted by the API, so the configured
// values are carried over from the prior model.
func generateModel(cn *scaleway.Container, prior models.Container) (models.Container, diag.Diagnostics) {
	envVars, diags := utils.StringMapToTypesMap(cn.EnvironmentVariables)

	return models.Container{
		ID:                         types.StringValue(cn.ID),
		NamespaceID:                types.StringValue(cn.NamespaceID),
		Region:                     prior.Region,
		Name:                       types.StringValue(cn.Name),
		Description:                types.StringValue(cn.Description),
		MinScale:                   types.Int64Value(cn.MinScale),
		MaxScale:                   types.Int64Value(cn.MaxScale),
		EnvironmentVariables:       envVars,
		SecretEnvironmentVariables: prior.SecretEnvironmentVariables,
		MemoryLimit:                types.Int64Value(cn.MemoryLimit),
		Timeout:                    types.StringValue(cn.Timeout),
		Privacy:                    types.StringValue(cn.Privacy),
		RegistryImage:              types.StringValue(cn.RegistryImage),
		MaxConcurrency:             types.Int64Value(cn.MaxConcurrency),
		Protocol:                   types.StringValue(cn.Protocol),
		Port:                       types.Int64Value(cn.Port),
		Redeploy:                   prior.Redeploy,
		CPULimit:                   types.Int64Value(cn.CPULimit),
		DomainName:                 types.StringValue(cn.DomainName),
		Status:                     types.StringValue(cn.Status),
		ErrorMessage:               types.StringValue(cn.ErrorMessage),
		Timeouts:                   prior.Timeouts,
	}, diags
}

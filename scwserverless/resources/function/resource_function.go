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

// Package function contains the implementation of the Function resource
// following the Terraform framework interfaces.
package function

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
	_ resource.Resource                = &Function{}
	_ resource.ResourceWithConfigure   = &Function{}
	_ resource.ResourceWithImportState = &Function{}
)

// stableStates are the terminal statuses a function settles in after a
// deployment. A function whose code was never deployed sits in created.
var stableStates = []string{"ready", "created"}

// Function represents a serverless function managed resource.
type Function struct {
	Client *scaleway.Client
}

// Metadata returns the full name of the Function resource.
func (*Function) Metadata(_ context.Context, _ resource.MetadataRequest, resp *resource.MetadataResponse) {
	resp.TypeName = "scwserverless_function"
}

// Configure uses provider level data to configure Function's client.
func (r *Function) Configure(_ context.Context, req resource.ConfigureRequest, resp *resource.ConfigureResponse) {
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

// Schema returns the schema for the Function resource.
func (*Function) Schema(ctx context.Context, _ resource.SchemaRequest, resp *resource.SchemaResponse) {
	resp.Schema = resourceFunctionSchema(ctx)
}

func resourceFunctionSchema(ctx context.Context) schema.Schema {
	return schema.Schema{
		Attributes: map[string]schema.Attribute{
			"name": schema.StringAttribute{
				Required:      true,
				Description:   "Name of the function",
				PlanModifiers: []planmodifier.String{stringplanmodifier.RequiresReplace()},
			},
			"namespace_id": schema.StringAttribute{
				Required:      true,
				Description:   "The ID of the function namespace holding the function",
				PlanModifiers: []planmodifier.String{stringplanmodifier.RequiresReplace()},
			},
			"region": schema.StringAttribute{
				Required:      true,
				Description:   "Scaleway region of the function (for example fr-par)",
				Validators:    validators.Regions(),
				PlanModifiers: []planmodifier.String{stringplanmodifier.RequiresReplace()},
			},
			"runtime": schema.StringAttribute{
				Required:    true,
				Description: "Runtime executing the function, for example go121 or python311",
			},
			"handler": schema.StringAttribute{
				Optional:    true,
				Computed:    true,
				Description: "Entrypoint of the function within the deployed code",
			},
			"description": schema.StringAttribute{
				Optional:    true,
				Computed:    true,
				Description: "Description of the function",
			},
			"min_scale": schema.Int64Attribute{
				Optional:    true,
				Computed:    true,
				Description: "Minimum number of instances kept running",
			},
			"max_scale": schema.Int64Attribute{
				Optional:    true,
				Computed:    true,
				Description: "Maximum number of instances the function scales to",
			},
			"environment_variables": schema.MapAttribute{
				Optional:    true,
				ElementType: types.StringType,
				Description: "Environment variables injected in the function at runtime",
			},
			"secret_environment_variables": schema.MapAttribute{
				Optional:    true,
				Sensitive:   true,
				ElementType: types.StringType,
				Description: "Secret environment variables injected in the function at runtime. The API never echoes the values back",
			},
			"memory_limit": schema.Int64Attribute{
				Optional:    true,
				Computed:    true,
				Description: "Memory allocated to each instance, in MB",
			},
			"timeout": schema.StringAttribute{
				Optional:    true,
				Computed:    true,
				Description: "Maximum duration a request can take before the instance is considered hung, for example 300s",
			},
			"privacy": schema.StringAttribute{
				Optional:    true,
				Computed:    true,
				Description: "Whether the function endpoint requires authentication (public or private)",
				Validators:  validators.Privacies(),
			},
			"redeploy": schema.BoolAttribute{
				Optional:    true,
				Description: "Force a redeployment of the function on the next update",
			},
			"id": schema.StringAttribute{
				Computed:      true,
				Description:   "The ID of the function",
				PlanModifiers: []planmodifier.String{stringplanmodifier.UseStateForUnknown()},
			},
			"cpu_limit": schema.Int64Attribute{
				Computed:    true,
				Description: "CPU allocated to each instance, derived from the memory limit by the API",
			},
			"domain_name": schema.StringAttribute{
				Computed:    true,
				Description: "Domain name the function is served on",
			},
			"runtime_message": schema.StringAttribute{
				Computed:    true,
				Description: "Runtime lifecycle notice reported by the API, for example a deprecation warning",
			},
			"status": schema.StringAttribute{
				Computed:    true,
				Description: "Provider reported status of the function",
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
		Description: "A Scaleway serverless function",
	}
}

// Create creates a new Function resource. It updates the state if the
// function is successfully created.
func (r *Function) Create(ctx context.Context, req resource.CreateRequest, resp *resource.CreateResponse) {
	var model models.Function
	resp.Diagnostics.Append(req.Plan.Get(ctx, &model)...)
	if resp.Diagnostics.HasError() {
		return
	}

	fnReq, diags := GenerateFunctionRequest(ctx, model, true)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	region := model.Region.ValueString()
	fn, err := r.Client.CreateFunction(ctx, region, fnReq)
	if err != nil {
		resp.Diagnostics.AddError("failed to create function", err.Error())
		return
	}
	// write initial state so that if deployment fails, we can still track and delete it
	resp.Diagnostics.Append(resp.State.SetAttribute(ctx, path.Root("id"), fn.ID)...)
	if resp.Diagnostics.HasError() {
		return
	}

	createTimeout, diags := model.Timeouts.Create(ctx, utils.DefaultWaitTimeout)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}
	if _, err := utils.WaitForState(ctx, r.stateReader(region, fn.ID), stableStates, createTimeout, utils.DefaultPollInterval); err != nil {
		resp.Diagnostics.AddError("function did not reach a stable status while creating", err.Error())
		return
	}

	fn, err = r.Client.GetFunction(ctx, region, fn.ID)
	if err != nil {
		resp.Diagnostics.AddError(fmt.Sprintf("successfully created function %q, but failed to read it back", fn.ID), err.Error())
		return
	}
	persist, diags := generateModel(fn, model)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}
	resp.Diagnostics.Append(resp.State.Set(ctx, persist)...)
}

// Read reads Function resource's values and updates the state.
func (r *Function) Read(ctx context.Context, req resource.ReadRequest, resp *resource.ReadResponse) {
	var model models.Function
	resp.Diagnostics.Append(req.State.Get(ctx, &model)...)
	if resp.Diagnostics.HasError() {
		return
	}

	fn, err := r.Client.GetFunction(ctx, model.Region.ValueString(), model.ID.ValueString())
	if err != nil {
		if utils.IsNotFound(err) {
			resp.State.RemoveResource(ctx)
			return
		}
		resp.Diagnostics.AddError(fmt.Sprintf("failed to read function %s", model.ID), err.Error())
		return
	}

	persist, diags := generateModel(fn, model)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}
	resp.Diagnostics.Append(resp.State.Set(ctx, persist)...)
}

// Update updates the Function resource, then waits for the triggered
// deployment to settle.
func (r *Function) Update(ctx context.Context, req resource.UpdateRequest, resp *resource.UpdateResponse) {
	var plan models.Function
	resp.Diagnostics.Append(req.Plan.Get(ctx, &plan)...)
	if resp.Diagnostics.HasError() {
		return
	}

	patch, diags := GenerateFunctionRequest(ctx, plan, false)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	region := plan.Region.ValueString()
	id := plan.ID.ValueString()
	if _, err := r.Client.UpdateFunction(ctx, region, id, patch); err != nil {
		resp.Diagnostics.AddError("failed to update function", err.Error())
		return
	}

	updateTimeout, diags := plan.Timeouts.Update(ctx, utils.DefaultWaitTimeout)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}
	if _, err := utils.WaitForState(ctx, r.stateReader(region, id), stableStates, updateTimeout, utils.DefaultPollInterval); err != nil {
		resp.Diagnostics.AddError("function did not reach a stable status while updating", err.Error())
		return
	}

	fn, err := r.Client.GetFunction(ctx, region, id)
	if err != nil {
		resp.Diagnostics.AddError(fmt.Sprintf("successfully updated function %q, but failed to read it back", id), err.Error())
		return
	}
	persist, diags := generateModel(fn, plan)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}
	resp.Diagnostics.Append(resp.State.Set(ctx, persist)...)
}

// Delete deletes the Function resource.
func (r *Function) Delete(ctx context.Context, req resource.DeleteRequest, resp *resource.DeleteResponse) {
	var model models.Function
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

	// let any in-flight deployment settle first; a function stuck in
	// error is still deletable
	if _, err := utils.WaitForState(ctx, r.stateReader(region, id), stableStates, deleteTimeout, utils.DefaultPollInterval); err != nil {
		tflog.Warn(ctx, "deleting function in a non stable status", map[string]any{
			"id":    id,
			"error": err.Error(),
		})
	}

	if err := r.Client.DeleteFunction(ctx, region, id); err != nil {
		if utils.IsNotFound(err) {
			resp.State.RemoveResource(ctx)
			return
		}
		resp.Diagnostics.AddError("failed to delete function", err.Error())
		return
	}

	if _, err := utils.WaitForState(ctx, r.stateReader(region, id), []string{utils.StatusAbsent}, deleteTimeout, utils.DefaultPollInterval); err != nil {
		resp.Diagnostics.AddError("function was not fully deleted within the timeout", err.Error())
	}
}

// ImportState imports and updates the state of the function resource.
func (*Function) ImportState(ctx context.Context, req resource.ImportStateRequest, resp *resource.ImportStateResponse) {
	resource.ImportStatePassthroughID(ctx, path.Root("id"), req, resp)
}

func (r *Function) stateReader(region, id string) utils.StateReader {
	return utils.StateReaderFunc(func(ctx context.Context) (string, error) {
		fn, err := r.Client.GetFunction(ctx, region, id)
		if err != nil {
			return "", err
		}
		return fn.Status, nil
	})
}

// GenerateFunctionRequest was pulled out to enable unit testing. The
// creation payload carries namespace and name; updates carry the redeploy
// flag instead, which the creation endpoint rejects.
func GenerateFunctionRequest(ctx context.Context, model models.Function, isCreate bool) (*scaleway.FunctionRequest, diag.Diagnostics) {
	var diags diag.Diagnostics

	envVars, d := utils.TypesMapToStringMap(ctx, model.EnvironmentVariables)
	diags.Append(d...)
	secretVars, d := utils.TypesMapToStringMap(ctx, model.SecretEnvironmentVariables)
	diags.Append(d...)
	if diags.HasError() {
		return nil, diags
	}

	req := &scaleway.FunctionRequest{
		Description:                utils.OptionalString(model.Description),
		MinScale:                   utils.OptionalInt64(model.MinScale),
		MaxScale:                   utils.OptionalInt64(model.MaxScale),
		EnvironmentVariables:       envVars,
		SecretEnvironmentVariables: scaleway.SecretVarsFromMap(secretVars),
		Runtime:                    utils.OptionalString(model.Runtime),
		MemoryLimit:                utils.OptionalInt64(model.MemoryLimit),
		Timeout:                    utils.OptionalString(model.Timeout),
		Handler:                    utils.OptionalString(model.Handler),
		Privacy:                    utils.OptionalString(model.Privacy),
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
func generateModel(fn *scaleway.Function, prior models.Function) (models.Function, diag.Diagnostics) {
	envVars, diags := utils.StringMapToTypesMap(fn.EnvironmentVariables)

	return models.Function{
		ID:                         types.StringValue(fn.ID),
		NamespaceID:                types.StringValue(fn.NamespaceID),
		Region:                     prior.Region,
		Name:                       types.StringValue(fn.Name),
		Description:                types.StringValue(fn.Description),
		MinScale:                   types.Int64Value(fn.MinScale),
		MaxScale:                   types.Int64Value(fn.MaxScale),
		EnvironmentVariables:       envVars,
		SecretEnvironmentVariables: prior.SecretEnvironmentVariables,
		Runtime:                    types.StringValue(fn.Runtime),
		MemoryLimit:                types.Int64Value(fn.MemoryLimit),
		Timeout:                    types.StringValue(fn.Timeout),
		Handler:                    types.StringValue(fn.Handler),
		Privacy:                    types.StringValue(fn.Privacy),
		Redeploy:                   prior.Redeploy,
		CPULimit:                   types.Int64Value(fn.CPULimit),
		DomainName:                 types.StringValue(fn.DomainName),
		RuntimeMessage:             types.StringValue(fn.RuntimeMessage),
		Status:                     types.StringValue(fn.Status),
		ErrorMessage:               types.StringValue(fn.ErrorMessage),
		Timeouts:                   prior.Timeouts,
	}, diags
}

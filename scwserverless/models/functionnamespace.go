package models

import (
	"github.com/hashicorp/terraform-plugin-framework-timeouts/resource/timeouts"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

// FunctionNamespace represents the scwserverless_function_namespace
// managed resource.
type FunctionNamespace struct {
	ID                         types.String   `tfsdk:"id"`
	ProjectID                  types.String   `tfsdk:"project_id"`
	Region                     types.String   `tfsdk:"region"`
	Name                       types.String   `tfsdk:"name"`
	Description                types.String   `tfsdk:"description"`
	EnvironmentVariables       types.Map      `tfsdk:"environment_variables"`
	SecretEnvironmentVariables types.Map      `tfsdk:"secret_environment_variables"`
	OrganizationID             types.String   `tfsdk:"organization_id"`
	RegistryEndpoint           types.String   `tfsdk:"registry_endpoint"`
	RegistryNamespaceID        types.String   `tfsdk:"registry_namespace_id"`
	Status                     types.String   `tfsdk:"status"`
	ErrorMessage               types.String   `tfsdk:"error_message"`
	Timeouts                   timeouts.Value `tfsdk:"timeouts"`
}

// FunctionNamespaceData represents the scwserverless_function_namespace
// data source.
type FunctionNamespaceData struct {
	ID                   types.String `tfsdk:"id"`
	ProjectID            types.String `tfsdk:"project_id"`
	Region               types.String `tfsdk:"region"`
	Name                 types.String `tfsdk:"name"`
	Description          types.String `tfsdk:"description"`
	EnvironmentVariables types.Map    `tfsdk:"environment_variables"`
	OrganizationID       types.String `tfsdk:"organization_id"`
	RegistryEndpoint     types.String `tfsdk:"registry_endpoint"`
	RegistryNamespaceID  types.String `tfsdk:"registry_namespace_id"`
	Status               types.String `tfsdk:"status"`
	ErrorMessage         types.String `tfsdk:"error_message"`
}

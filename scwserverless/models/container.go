package models

import (
	"github.com/hashicorp/terraform-plugin-framework-timeouts/resource/timeouts"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

// Container represents the scwserverless_container managed resource.
type Container struct {
	ID                         types.String   `tfsdk:"id"`
	NamespaceID                types.String   `tfsdk:"namespace_id"`
	Region                     types.String   `tfsdk:"region"`
	Name                       types.String   `tfsdk:"name"`
	Description                types.String   `tfsdk:"description"`
	MinScale                   types.Int64    `tfsdk:"min_scale"`
	MaxScale                   types.Int64    `tfsdk:"max_scale"`
	EnvironmentVariables       types.Map      `tfsdk:"environment_variables"`
	SecretEnvironmentVariables types.Map      `tfsdk:"secret_environment_variables"`
	MemoryLimit                types.Int64    `tfsdk:"memory_limit"`
	Timeout                    types.String   `tfsdk:"timeout"`
	Privacy                    types.String   `tfsdk:"privacy"`
	RegistryImage              types.String   `tfsdk:"registry_image"`
	MaxConcurrency             types.Int64    `tfsdk:"max_concurrency"`
	Protocol                   types.String   `tfsdk:"protocol"`
	Port                       types.Int64    `tfsdk:"port"`
	Redeploy                   types.Bool     `tfsdk:"redeploy"`
	CPULimit                   types.Int64    `tfsdk:"cpu_limit"`
	DomainName                 types.String   `tfsdk:"domain_name"`
	Status                     types.String   `tfsdk:"status"`
	ErrorMessage               types.String   `tfsdk:"error_message"`
	Timeouts                   timeouts.Value `tfsdk:"timeouts"`
}

// ContainerData represents the scwserverless_container data source.
type ContainerData struct {
	ID                   types.String `tfsdk:"id"`
	NamespaceID          types.String `tfsdk:"namespace_id"`
	Region               types.String `tfsdk:"region"`
	Name                 types.String `tfsdk:"name"`
	Description          types.String `tfsdk:"description"`
	MinScale             types.Int64  `tfsdk:"min_scale"`
	MaxScale             types.Int64  `tfsdk:"max_scale"`
	EnvironmentVariables types.Map    `tfsdk:"environment_variables"`
	MemoryLimit          types.Int64  `tfsdk:"memory_limit"`
	Timeout              types.String `tfsdk:"timeout"`
	Privacy              types.String `tfsdk:"privacy"`
	RegistryImage        types.String `tfsdk:"registry_image"`
	MaxConcurrency       types.Int64  `tfsdk:"max_concurrency"`
	Protocol             types.String `tfsdk:"protocol"`
	Port                 types.Int64  `tfsdk:"port"`
	CPULimit             types.Int64  `tfsdk:"cpu_limit"`
	DomainName           types.String `tfsdk:"domain_name"`
	Status               types.String `tfsdk:"status"`
	ErrorMessage         types.String `tfsdk:"error_message"`
}

package models

import (
	"github.com/hashicorp/terraform-plugin-framework-timeouts/resource/timeouts"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

// Function represents the scwserverless_function managed resource.
type Function struct {
	ID                         types.String   `tfsdk:"id"`
	NamespaceID                types.String   `tfsdk:"namespace_id"`
	Region                     types.String   `tfsdk:"region"`
	Name                       types.String   `tfsdk:"name"`
	Description                types.String   `tfsdk:"description"`
	MinScale                   types.Int64    `tfsdk:"min_scale"`
	MaxScale                   types.Int64    `tfsdk:"max_scale"`
	EnvironmentVariables       types.Map      `tfsdk:"environment_variables"`
	SecretEnvironmentVariables types.Map      `tfsdk:"secret_environment_variables"`
	Runtime                    types.String   `tfsdk:"runtime"`
	MemoryLimit                types.Int64    `tfsdk:"memory_limit"`
	Timeout                    types.String   `tfsdk:"timeout"`
	Handler                    types.String   `tfsdk:"handler"`
	Privacy                    types.String   `tfsdk:"privacy"`
	Redeploy                   types.Bool     `tfsdk:"redeploy"`
	CPULimit                   types.Int64    `tfsdk:"cpu_limit"`
	DomainName                 types.String   `tfsdk:"domain_name"`
	RuntimeMessage             types.String   `tfsdk:"runtime_message"`
	Status                     types.String   `tfsdk:"status"`
	ErrorMessage               types.String   `tfsdk:"error_message"`
	Timeouts                   timeouts.Value `tfsdk:"timeouts"`
}

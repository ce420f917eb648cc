// Package models contains the tfsdk models for the provider's resources
// and data sources.
package models

import "github.com/hashicorp/terraform-plugin-framework/types"

// ScwServerless represents the provider configuration.
type ScwServerless struct {
	SecretKey types.String `tfsdk:"secret_key"`
	AccessKey types.String `tfsdk:"access_key"`
	ProjectID types.String `tfsdk:"project_id"`
	APIURL    types.String `tfsdk:"api_url"`
}

package models

import "github.com/hashicorp/terraform-plugin-framework/types"

// ContainerRegistry represents the scwserverless_container_registry data
// source. The registry namespace is provisioned server side; the provider
// only reads it.
type ContainerRegistry struct {
	ID             types.String `tfsdk:"id"`
	ProjectID      types.String `tfsdk:"project_id"`
	Region         types.String `tfsdk:"region"`
	Name           types.String `tfsdk:"name"`
	Description    types.String `tfsdk:"description"`
	Endpoint       types.String `tfsdk:"endpoint"`
	IsPublic       types.Bool   `tfsdk:"is_public"`
	Size           types.Int64  `tfsdk:"size"`
	ImageCount     types.Int64  `tfsdk:"image_count"`
	OrganizationID types.String `tfsdk:"organization_id"`
	Status         types.String `tfsdk:"status"`
	StatusMessage  types.String `tfsdk:"status_message"`
	CreatedAt      types.String `tfsdk:"created_at"`
	UpdatedAt      types.String `tfsdk:"updated_at"`
}

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

// Package scwserverless contains the implementation of the Terraform
// Provider framework interface for the Scaleway serverless products.
package scwserverless

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/provider"
	"github.com/hashicorp/terraform-plugin-framework/provider/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/config"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/models"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/resources/container"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/resources/containernamespace"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/resources/function"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/resources/functionnamespace"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/resources/registry"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/scaleway"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/validators"
)

// Ensure provider defined types fully satisfy framework interfaces.
var _ provider.Provider = &ScwServerless{}

// ScwServerless represents the Scaleway serverless Terraform provider.
type ScwServerless struct {
	// apiURL is the Scaleway API endpoint the provider points to.
	apiURL string
	// version is the provider version.
	version string
	// client is the shared REST client for the serverless APIs.
	client *scaleway.Client
}

const (
	// SecretKeyEnv is the secret key used to authenticate to the Scaleway API.
	SecretKeyEnv = "SCW_SECRET_KEY"
	// AccessKeyEnv is the access key paired with the secret key.
	AccessKeyEnv = "SCW_ACCESS_KEY"
	// ProjectIDEnv is the default project for resources that don't set one.
	ProjectIDEnv = "SCW_DEFAULT_PROJECT_ID"
)

// New spawns a basic provider struct, no client. Configure must be called
// for a working client.
func New(_ context.Context, apiURL, version string) func() provider.Provider {
	return func() provider.Provider {
		return &ScwServerless{
			apiURL:  apiURL,
			version: version,
		}
	}
}

func providerSchema() schema.Schema {
	return schema.Schema{
		Attributes: map[string]schema.Attribute{
			"secret_key": schema.StringAttribute{
				Optional:  true,
				Sensitive: true,
				MarkdownDescription: fmt.Sprintf("Scaleway secret key used to authenticate against the API. "+
					"Can also be set with the `%v` environment variable.", SecretKeyEnv),
				Validators: []validator.String{
					validators.NotUnknown(),
				},
			},
			"access_key": schema.StringAttribute{
				Optional:  true,
				Sensitive: true,
				MarkdownDescription: fmt.Sprintf("Scaleway access key paired with the secret key. Only kept for "+
					"tooling parity, the serverless APIs authenticate with the secret key alone. Can also be set "+
					"with the `%v` environment variable.", AccessKeyEnv),
				Validators: []validator.String{
					stringvalidator.AlsoRequires(path.MatchRoot("secret_key")),
					validators.NotUnknown(),
				},
			},
			"project_id": schema.StringAttribute{
				Optional: true,
				MarkdownDescription: fmt.Sprintf("Default project for resources that don't set their own. Can "+
					"also be set with the `%v` environment variable.", ProjectIDEnv),
			},
			"api_url": schema.StringAttribute{
				Optional:    true,
				Description: "Scaleway API endpoint. Defaults to https://api.scaleway.com.",
			},
		},
		Description:         "Scaleway serverless terraform provider",
		MarkdownDescription: "Provider configuration",
	}
}

type credentials struct {
	SecretKey string
	ProjectID string
	APIURL    string
}

// getCredentials reads authentication configuration from multiple sources
// and returns the secret key to use against the Scaleway API.
func getCredentials(ctx context.Context, apiURL string, conf models.ScwServerless) (credentials, diag.Diagnostics) {
	// Like other Terraform providers, this provider (1) can pick up
	// authentication configuration from multiple sources, and (2) gives
	// precedence to direct configuration over environment variables.

	creds := credentials{APIURL: apiURL}
	diags := diag.Diagnostics{}

	if !conf.APIURL.IsNull() {
		creds.APIURL = conf.APIURL.ValueString()
	}

	// Check provider configuration
	if !conf.SecretKey.IsNull() {
		tflog.Info(ctx, "using authentication configuration found in provider configuration")
		creds.SecretKey = conf.SecretKey.ValueString()
		creds.ProjectID = conf.ProjectID.ValueString()
		if creds.ProjectID == "" {
			creds.ProjectID = os.Getenv(ProjectIDEnv)
		}
		return creds, diags
	}

	// Check environment variable configuration
	if key := os.Getenv(SecretKeyEnv); key != "" {
		tflog.Info(ctx, "using authentication configuration found in environment variables")
		creds.SecretKey = key
		creds.ProjectID = conf.ProjectID.ValueString()
		if creds.ProjectID == "" {
			creds.ProjectID = os.Getenv(ProjectIDEnv)
		}
		return creds, diags
	}

	// No authentication configuration found
	diags.AddError("Client configuration missing",
		fmt.Sprintf("no secret key found, please set secret_key in the provider configuration or the %v environment variable", SecretKeyEnv),
	)
	return creds, diags
}

// Configure is the primary entrypoint for terraform and properly
// initializes the client.
func (s *ScwServerless) Configure(ctx context.Context, request provider.ConfigureRequest, response *provider.ConfigureResponse) {
	var conf models.ScwServerless
	response.Diagnostics.Append(request.Config.Get(ctx, &conf)...)
	if response.Diagnostics.HasError() {
		return
	}

	// The client is passed through to downstream resources through the
	// response struct.
	creds, diags := getCredentials(ctx, s.apiURL, conf)
	response.Diagnostics.Append(diags...)
	if response.Diagnostics.HasError() {
		return
	}
	if s.client == nil {
		s.client = scaleway.NewClient(creds.APIURL, creds.SecretKey)
	}

	response.ResourceData = config.Resource{
		Client:    s.client,
		ProjectID: creds.ProjectID,
	}
	response.DataSourceData = config.Datasource{
		Client:    s.client,
		ProjectID: creds.ProjectID,
	}
}

// Metadata returns the provider metadata.
func (s *ScwServerless) Metadata(_ context.Context, _ provider.MetadataRequest, response *provider.MetadataResponse) {
	response.TypeName = "scwserverless"
	response.Version = s.version
}

// Schema returns the provider schema.
func (*ScwServerless) Schema(_ context.Context, _ provider.SchemaRequest, response *provider.SchemaResponse) {
	response.Schema = providerSchema()
}

// DataSources returns a slice of functions to instantiate each DataSource.
func (*ScwServerless) DataSources(_ context.Context) []func() datasource.DataSource {
	return []func() datasource.DataSource{
		func() datasource.DataSource {
			return &container.DataSourceContainer{}
		},
		func() datasource.DataSource {
			return &functionnamespace.DataSourceFunctionNamespace{}
		},
		func() datasource.DataSource {
			return &registry.DataSourceContainerRegistry{}
		},
	}
}

// Resources returns a slice of functions to instantiate each resource.
func (*ScwServerless) Resources(_ context.Context) []func() resource.Resource {
	return []func() resource.Resource{
		func() resource.Resource {
			return &containernamespace.ContainerNamespace{}
		},
		func() resource.Resource {
			return &container.Container{}
		},
		func() resource.Resource {
			return &functionnamespace.FunctionNamespace{}
		},
		func() resource.Resource {
			return &function.Function{}
		},
	}
}

package scwserverless

import (
	"context"
	"testing"

	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderSchema(t *testing.T) {
	if d := providerSchema().ValidateImplementation(context.Background()); d.HasError() {
		t.Fatalf("unexpected error in provider schema: %s", d)
	}
}

func TestGetCredentials(t *testing.T) {
	testCases := []struct {
		name          string
		conf          models.ScwServerless
		env           map[string]string
		wantSecretKey string
		wantProjectID string
		wantAPIURL    string
		wantErr       bool
	}{
		{
			name: "provider configuration wins over environment",
			conf: models.ScwServerless{
				SecretKey: types.StringValue("config-secret"),
				ProjectID: types.StringValue("config-project"),
			},
			env: map[string]string{
				SecretKeyEnv: "env-secret",
				ProjectIDEnv: "env-project",
			},
			wantSecretKey: "config-secret",
			wantProjectID: "config-project",
			wantAPIURL:    "https://api.scaleway.com",
		},
		{
			name: "environment fallback",
			conf: models.ScwServerless{
				SecretKey: types.StringNull(),
				ProjectID: types.StringNull(),
			},
			env: map[string]string{
				SecretKeyEnv: "env-secret",
				ProjectIDEnv: "env-project",
			},
			wantSecretKey: "env-secret",
			wantProjectID: "env-project",
			wantAPIURL:    "https://api.scaleway.com",
		},
		{
			name: "configured key with project from environment",
			conf: models.ScwServerless{
				SecretKey: types.StringValue("config-secret"),
				ProjectID: types.StringNull(),
			},
			env: map[string]string{
				ProjectIDEnv: "env-project",
			},
			wantSecretKey: "config-secret",
			wantProjectID: "env-project",
			wantAPIURL:    "https://api.scaleway.com",
		},
		{
			name: "api url override",
			conf: models.ScwServerless{
				SecretKey: types.StringValue("config-secret"),
				APIURL:    types.StringValue("http://localhost:8080"),
			},
			wantSecretKey: "config-secret",
			wantAPIURL:    "http://localhost:8080",
		},
		{
			name: "no credentials anywhere",
			conf: models.ScwServerless{
				SecretKey: types.StringNull(),
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// t.Setenv also isolates the test from ambient SCW_* variables
			t.Setenv(SecretKeyEnv, "")
			t.Setenv(ProjectIDEnv, "")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			creds, diags := getCredentials(context.Background(), "https://api.scaleway.com", tc.conf)
			if tc.wantErr {
				require.True(t, diags.HasError(), "expected diagnostics, got none")
				return
			}
			require.False(t, diags.HasError(), "unexpected diagnostics: %s", diags)
			assert.Equal(t, tc.wantSecretKey, creds.SecretKey)
			assert.Equal(t, tc.wantProjectID, creds.ProjectID)
			assert.Equal(t, tc.wantAPIURL, creds.APIURL)
		})
	}
}

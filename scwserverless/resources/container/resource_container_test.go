package container

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/terraform-plugin-framework/attr"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/models"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/scaleway"
)

func TestResourceContainerSchema(t *testing.T) {
	ctx := context.Background()
	if d := resourceContainerSchema(ctx).ValidateImplementation(ctx); d.HasError() {
		t.Errorf("Unexpected error in schema: %s", d)
	}
}

func TestDatasourceContainerSchema(t *testing.T) {
	if d := datasourceContainerSchema().ValidateImplementation(context.Background()); d.HasError() {
		t.Errorf("Unexpected error in schema: %s", d)
	}
}

func TestGenerateContainerRequest(t *testing.T) {
	image := "rg.fr-par.scw.cloud/demo/app:latest"
	minScale := int64(1)
	maxScale := int64(5)
	memory := int64(256)
	privacy := "private"
	redeploy := true

	type args struct {
		model    models.Container
		isCreate bool
	}
	tests := []struct {
		name string
		args args
		want *scaleway.ContainerRequest
	}{
		{
			name: "create carries namespace and name, never redeploy",
			args: args{
				model: models.Container{
					Name:          types.StringValue("app"),
					NamespaceID:   types.StringValue("ns-1"),
					Region:        types.StringValue("fr-par"),
					RegistryImage: types.StringValue(image),
					MinScale:      types.Int64Value(1),
					MaxScale:      types.Int64Value(5),
					MemoryLimit:   types.Int64Value(256),
					Privacy:       types.StringValue("private"),
					Redeploy:      types.BoolValue(true),
					EnvironmentVariables: types.MapValueMust(types.StringType, map[string]attr.Value{
						"MODE": types.StringValue("production"),
					}),
				},
				isCreate: true,
			},
			want: &scaleway.ContainerRequest{
				NamespaceID:          "ns-1",
				Name:                 "app",
				MinScale:             &minScale,
				MaxScale:             &maxScale,
				EnvironmentVariables: map[string]string{"MODE": "production"},
				MemoryLimit:          &memory,
				Privacy:              &privacy,
				RegistryImage:        &image,
			},
		},
		{
			name: "update drops identity and honors redeploy",
			args: args{
				model: models.Container{
					Name:          types.StringValue("app"),
					NamespaceID:   types.StringValue("ns-1"),
					Region:        types.StringValue("fr-par"),
					RegistryImage: types.StringValue(image),
					Redeploy:      types.BoolValue(true),
				},
			},
			want: &scaleway.ContainerRequest{
				RegistryImage: &image,
				Redeploy:      &redeploy,
			},
		},
		{
			name: "unset optionals stay nil",
			args: args{
				model: models.Container{
					Name:          types.StringValue("app"),
					NamespaceID:   types.StringValue("ns-1"),
					Region:        types.StringValue("fr-par"),
					RegistryImage: types.StringValue(image),
				},
				isCreate: true,
			},
			want: &scaleway.ContainerRequest{
				NamespaceID:   "ns-1",
				Name:          "app",
				RegistryImage: &image,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, diags := GenerateContainerRequest(context.Background(), tt.args.model, tt.args.isCreate)
			if diags.HasError() {
				t.Fatalf("unexpected diagnostics: %s", diags)
			}
			if !reflect.DeepEqual(got, tt.want) {
				fmt.Println("got")
				spew.Dump(got)
				fmt.Println("want")
				spew.Dump(tt.want)
				t.Errorf("GenerateContainerRequest() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerateModelKeepsSecretsFromPrior(t *testing.T) {
	prior := models.Container{
		Region:   types.StringValue("fr-par"),
		Redeploy: types.BoolValue(false),
		SecretEnvironmentVariables: types.MapValueMust(types.StringType, map[string]attr.Value{
			"TOKEN": types.StringValue("hunter2"),
		}),
	}
	cn := &scaleway.Container{
		ID:          "cn-1",
		NamespaceID: "ns-1",
		Name:        "app",
		Status:      "ready",
	}

	got, diags := generateModel(cn, prior)
	if diags.HasError() {
		t.Fatalf("unexpected diagnostics: %s", diags)
	}
	if !got.SecretEnvironmentVariables.Equal(prior.SecretEnvironmentVariables) {
		t.Error("Expected secret environment variables to be carried over from the prior state")
	}
	if got.Region != prior.Region {
		t.Errorf("Expected region %v, got %v", prior.Region, got.Region)
	}
	if got.ID.ValueString() != "cn-1" || got.Status.ValueString() != "ready" {
		t.Errorf("Unexpected model: %v", got)
	}
}

package functionnamespace

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

func TestResourceFunctionNamespaceSchema(t *testing.T) {
	ctx := context.Background()
	if d := resourceFunctionNamespaceSchema(ctx).ValidateImplementation(ctx); d.HasError() {
		t.Errorf("Unexpected error in schema: %s", d)
	}
}

func TestDatasourceFunctionNamespaceSchema(t *testing.T) {
	if d := datasourceFunctionNamespaceSchema().ValidateImplementation(context.Background()); d.HasError() {
		t.Errorf("Unexpected error in schema: %s", d)
	}
}

func TestGenerateNamespaceRequest(t *testing.T) {
	description := "demo namespace"
	type args struct {
		model            models.FunctionNamespace
		defaultProjectID string
	}
	tests := []struct {
		name    string
		args    args
		want    *scaleway.NamespaceRequest
		wantErr bool
	}{
		{
			name: "explicit project",
			args: args{
				model: models.FunctionNamespace{
					Name:        types.StringValue("demo"),
					ProjectID:   types.StringValue("proj-1"),
					Region:      types.StringValue("fr-par"),
					Description: types.StringValue("demo namespace"),
				},
			},
			want: &scaleway.NamespaceRequest{
				ProjectID:   "proj-1",
				Name:        "demo",
				Description: &description,
			},
		},
		{
			name: "falls back to provider project",
			args: args{
				model: models.FunctionNamespace{
					Name:   types.StringValue("demo"),
					Region: types.StringValue("fr-par"),
				},
				defaultProjectID: "default-proj",
			},
			want: &scaleway.NamespaceRequest{
				ProjectID: "default-proj",
				Name:      "demo",
			},
		},
		{
			name: "no project anywhere",
			args: args{
				model: models.FunctionNamespace{
					Name:   types.StringValue("demo"),
					Region: types.StringValue("fr-par"),
				},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, diags := GenerateNamespaceRequest(context.Background(), tt.args.model, tt.args.defaultProjectID)
			if diags.HasError() != tt.wantErr {
				t.Fatalf("GenerateNamespaceRequest() diagnostics = %v, wantErr %v", diags, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				fmt.Println("got")
				spew.Dump(got)
				fmt.Println("want")
				spew.Dump(tt.want)
				t.Errorf("GenerateNamespaceRequest() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerateNamespaceUpdateRequest(t *testing.T) {
	description := "updated"
	plan := models.FunctionNamespace{
		ID:          types.StringValue("ns-1"),
		Name:        types.StringValue("demo"),
		ProjectID:   types.StringValue("proj-1"),
		Region:      types.StringValue("fr-par"),
		Description: types.StringValue("updated"),
		EnvironmentVariables: types.MapValueMust(types.StringType, map[string]attr.Value{
			"MODE": types.StringValue("production"),
		}),
		SecretEnvironmentVariables: types.MapValueMust(types.StringType, map[string]attr.Value{
			"TOKEN": types.StringValue("hunter2"),
		}),
	}

	got, diags := GenerateNamespaceUpdateRequest(context.Background(), plan)
	if diags.HasError() {
		t.Fatalf("unexpected diagnostics: %s", diags)
	}
	want := &scaleway.NamespaceRequest{
		Description:                &description,
		EnvironmentVariables:       map[string]string{"MODE": "production"},
		SecretEnvironmentVariables: []scaleway.SecretVar{{Key: "TOKEN", Value: "hunter2"}},
	}
	if !reflect.DeepEqual(got, want) {
		fmt.Println("got")
		spew.Dump(got)
		fmt.Println("want")
		spew.Dump(want)
		t.Errorf("GenerateNamespaceUpdateRequest() = %v, want %v", got, want)
	}
}

package containernamespace

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/models"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/scaleway"
)

func TestResourceContainerNamespaceSchema(t *testing.T) {
	ctx := context.Background()
	if d := resourceContainerNamespaceSchema(ctx).ValidateImplementation(ctx); d.HasError() {
		t.Errorf("Unexpected error in schema: %s", d)
	}
}

func TestGenerateNamespaceRequest(t *testing.T) {
	type args struct {
		model            models.ContainerNamespace
		defaultProjectID string
	}
	tests := []struct {
		name    string
		args    args
		want    *scaleway.NamespaceRequest
		wantErr bool
	}{
		{
			name: "validate_schema",
			args: args{
				model: models.ContainerNamespace{
					Name:      types.StringValue("demo"),
					ProjectID: types.StringValue("proj-1"),
					Region:    types.StringValue("pl-waw"),
				},
			},
			want: &scaleway.NamespaceRequest{
				ProjectID: "proj-1",
				Name:      "demo",
			},
		},
		{
			name: "provider project fallback",
			args: args{
				model: models.ContainerNamespace{
					Name:   types.StringValue("demo"),
					Region: types.StringValue("pl-waw"),
				},
				defaultProjectID: "default-proj",
			},
			want: &scaleway.NamespaceRequest{
				ProjectID: "default-proj",
				Name:      "demo",
			},
		},
		{
			name: "missing project",
			args: args{
				model: models.ContainerNamespace{
					Name:   types.StringValue("demo"),
					Region: types.StringValue("pl-waw"),
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

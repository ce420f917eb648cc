package function

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

func TestResourceFunctionSchema(t *testing.T) {
	ctx := context.Background()
	if d := resourceFunctionSchema(ctx).ValidateImplementation(ctx); d.HasError() {
		t.Errorf("Unexpected error in schema: %s", d)
	}
}

func TestGenerateFunctionRequest(t *testing.T) {
	runtime := "go121"
	handler := "Handle"
	redeploy := true

	type args struct {
		model    models.Function
		isCreate bool
	}
	tests := []struct {
		name string
		args args
		want *scaleway.FunctionRequest
	}{
		{
			name: "create carries namespace and name, never redeploy",
			args: args{
				model: models.Function{
					Name:        types.StringValue("handler"),
					NamespaceID: types.StringValue("ns-1"),
					Region:      types.StringValue("fr-par"),
					Runtime:     types.StringValue("go121"),
					Handler:     types.StringValue("Handle"),
					Redeploy:    types.BoolValue(true),
				},
				isCreate: true,
			},
			want: &scaleway.FunctionRequest{
				NamespaceID: "ns-1",
				Name:        "handler",
				Runtime:     &runtime,
				Handler:     &handler,
			},
		},
		{
			name: "update drops identity and honors redeploy",
			args: args{
				model: models.Function{
					Name:        types.StringValue("handler"),
					NamespaceID: types.StringValue("ns-1"),
					Region:      types.StringValue("fr-par"),
					Runtime:     types.StringValue("go121"),
					Redeploy:    types.BoolValue(true),
				},
			},
			want: &scaleway.FunctionRequest{
				Runtime:  &runtime,
				Redeploy: &redeploy,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, diags := GenerateFunctionRequest(context.Background(), tt.args.model, tt.args.isCreate)
			if diags.HasError() {
				t.Fatalf("unexpected diagnostics: %s", diags)
			}
			if !reflect.DeepEqual(got, tt.want) {
				fmt.Println("got")
				spew.Dump(got)
				fmt.Println("want")
				spew.Dump(tt.want)
				t.Errorf("GenerateFunctionRequest() = %v, want %v", got, tt.want)
			}
		})
	}
}

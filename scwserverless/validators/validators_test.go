package validators

import (
	"context"
	"testing"

	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

func TestNotUnknown(t *testing.T) {
	testCases := []struct {
		name      string
		value     types.String
		wantError bool
	}{
		{
			name:  "known value passes",
			value: types.StringValue("fr-par"),
		},
		{
			name:  "null value passes",
			value: types.StringNull(),
		},
		{
			name:      "unknown value fails",
			value:     types.StringUnknown(),
			wantError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validator.StringRequest{
				Path:        path.Root("secret_key"),
				ConfigValue: tc.value,
			}
			resp := &validator.StringResponse{}
			NotUnknown().ValidateString(context.Background(), req, resp)
			if got := resp.Diagnostics.HasError(); got != tc.wantError {
				t.Errorf("HasError() = %v, want %v", got, tc.wantError)
			}
		})
	}
}

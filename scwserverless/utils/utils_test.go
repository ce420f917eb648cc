package utils

import (
	"context"
	"reflect"
	"testing"

	"github.com/hashicorp/terraform-plugin-framework/attr"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/pkg/errors"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/scaleway"
)

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "api 404", err: &scaleway.APIError{StatusCode: 404, Message: "no such namespace"}, want: true},
		{name: "wrapped api 404", err: errors.Wrap(&scaleway.APIError{StatusCode: 404}, "reading"), want: true},
		{name: "api 500", err: &scaleway.APIError{StatusCode: 500, Message: "boom"}, want: false},
		{name: "not found text", err: errors.New(`container "x" not found in namespace "ns"`), want: true},
		{name: "unrelated", err: errors.New("connection refused"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.want {
				t.Errorf("IsNotFound(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestTypesMapToStringMap(t *testing.T) {
	tests := []struct {
		name string
		in   types.Map
		want map[string]string
	}{
		{name: "null", in: types.MapNull(types.StringType), want: nil},
		{name: "unknown", in: types.MapUnknown(types.StringType), want: nil},
		{
			name: "values",
			in: types.MapValueMust(types.StringType, map[string]attr.Value{
				"A": types.StringValue("1"),
				"B": types.StringValue("2"),
			}),
			want: map[string]string{"A": "1", "B": "2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, diags := TypesMapToStringMap(context.Background(), tt.in)
			if diags.HasError() {
				t.Fatalf("unexpected diagnostics: %s", diags)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TypesMapToStringMap() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStringMapToTypesMap(t *testing.T) {
	got, diags := StringMapToTypesMap(nil)
	if diags.HasError() {
		t.Fatalf("unexpected diagnostics: %s", diags)
	}
	if !got.IsNull() {
		t.Errorf("Expected nil map to convert to a null types.Map, got %v", got)
	}

	got, diags = StringMapToTypesMap(map[string]string{"A": "1"})
	if diags.HasError() {
		t.Fatalf("unexpected diagnostics: %s", diags)
	}
	want := types.MapValueMust(types.StringType, map[string]attr.Value{"A": types.StringValue("1")})
	if !got.Equal(want) {
		t.Errorf("StringMapToTypesMap() = %v, want %v", got, want)
	}
}

func TestOptionalHelpers(t *testing.T) {
	if OptionalString(types.StringNull()) != nil {
		t.Error("Expected nil for a null string")
	}
	if got := OptionalString(types.StringValue("x")); got == nil || *got != "x" {
		t.Errorf("OptionalString() = %v, want x", got)
	}
	if OptionalInt64(types.Int64Unknown()) != nil {
		t.Error("Expected nil for an unknown int64")
	}
	if got := OptionalInt64(types.Int64Value(7)); got == nil || *got != 7 {
		t.Errorf("OptionalInt64() = %v, want 7", got)
	}
	if OptionalBool(types.BoolNull()) != nil {
		t.Error("Expected nil for a null bool")
	}
	if got := OptionalBool(types.BoolValue(true)); got == nil || !*got {
		t.Errorf("OptionalBool() = %v, want true", got)
	}
}

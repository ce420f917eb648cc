package registry

import (
	"context"
	"testing"
)

func TestDatasourceContainerRegistrySchema(t *testing.T) {
	if d := datasourceContainerRegistrySchema().ValidateImplementation(context.Background()); d.HasError() {
		t.Errorf("Unexpected error in schema: %s", d)
	}
}

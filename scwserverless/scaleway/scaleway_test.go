package scaleway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientAuthHeader(t *testing.T) {
	var gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Auth-Token")
		fmt.Fprint(w, `{"id":"11111111-1111-1111-1111-111111111111"}`)
	}))
	defer srv.Close()

	cl := NewClient(srv.URL, "test-secret-key")
	_, err := cl.GetContainer(context.Background(), "fr-par", "11111111-1111-1111-1111-111111111111")
	require.NoError(t, err)
	assert.Equal(t, "test-secret-key", gotToken)
}

func TestClientAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"resource is not found"}`)
	}))
	defer srv.Close()

	cl := NewClient(srv.URL, "key")
	_, err := cl.GetFunction(context.Background(), "fr-par", "missing")
	require.Error(t, err)
	apiErr, ok := err.(*APIError)
	require.True(t, ok, "expected *APIError, got %T", err)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "scaleway api error [404: resource is not found]", apiErr.Error())
}

func TestListContainersPaginates(t *testing.T) {
	// two full pages followed by a short one
	pages := map[string]int{"1": pageSize, "2": pageSize, "3": 7}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/containers/v1beta1/regions/fr-par/containers", r.URL.Path)
		assert.Equal(t, "ns-1", r.URL.Query().Get("namespace_id"))

		page := r.URL.Query().Get("page")
		count, ok := pages[page]
		require.True(t, ok, "unexpected page %q requested", page)
		containers := make([]Container, count)
		for i := range containers {
			containers[i] = Container{ID: fmt.Sprintf("cn-%s-%d", page, i), Name: fmt.Sprintf("app-%s-%d", page, i)}
		}
		_ = json.NewEncoder(w).Encode(map[string][]Container{"containers": containers})
	}))
	defer srv.Close()

	cl := NewClient(srv.URL, "key")
	list, err := cl.ListContainers(context.Background(), "fr-par", "ns-1")
	require.NoError(t, err)
	assert.Len(t, list, 2*pageSize+7)
}

func TestContainerByName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string][]Container{"containers": {
			{ID: "cn-1", Name: "api"},
			{ID: "cn-2", Name: "worker"},
		}})
	}))
	defer srv.Close()

	cl := NewClient(srv.URL, "key")
	cn, err := cl.ContainerByName(context.Background(), "fr-par", "ns-1", "worker")
	require.NoError(t, err)
	assert.Equal(t, "cn-2", cn.ID)

	_, err = cl.ContainerByName(context.Background(), "fr-par", "ns-1", "missing")
	require.Error(t, err)
	assert.Equal(t, `container "missing" not found in namespace "ns-1"`, err.Error())
}

func TestCreateFunctionNamespacePayload(t *testing.T) {
	var payload map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/functions/v1beta1/regions/nl-ams/namespaces", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		fmt.Fprint(w, `{"id":"ns-new","status":"pending"}`)
	}))
	defer srv.Close()

	description := "demo"
	cl := NewClient(srv.URL, "key")
	ns, err := cl.CreateFunctionNamespace(context.Background(), "nl-ams", &NamespaceRequest{
		ProjectID:   "proj-1",
		Name:        "demo-ns",
		Description: &description,
		SecretEnvironmentVariables: []SecretVar{
			{Key: "TOKEN", Value: "hunter2"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "ns-new", ns.ID)

	assert.Equal(t, "proj-1", payload["project_id"])
	assert.Equal(t, "demo-ns", payload["name"])
	assert.Equal(t, "demo", payload["description"])
	// secrets travel as key/value pairs
	assert.Equal(t, []any{map[string]any{"key": "TOKEN", "value": "hunter2"}}, payload["secret_environment_variables"])
	// the update-only redeploy flag must never leak into creation payloads
	assert.NotContains(t, payload, "redeploy")
}

func TestDeleteContainer(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	cl := NewClient(srv.URL, "key")
	require.NoError(t, cl.DeleteContainer(context.Background(), "pl-waw", "cn-1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/containers/v1beta1/regions/pl-waw/containers/cn-1", gotPath)
}

func TestSecretVarsFromMap(t *testing.T) {
	assert.Nil(t, SecretVarsFromMap(nil))

	vars := SecretVarsFromMap(map[string]string{"B": "2", "A": "1"})
	sort.Slice(vars, func(i, j int) bool { return vars[i].Key < vars[j].Key })
	assert.Equal(t, []SecretVar{{Key: "A", Value: "1"}, {Key: "B", Value: "2"}}, vars)
}

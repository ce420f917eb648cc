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

package scaleway

import (
	"context"
	"fmt"
	"net/url"
)

const functionsAPIVersion = "functions/v1beta1"

// Function is the descriptor returned by the functions API.
type Function struct {
	ID                   string            `json:"id"`
	NamespaceID          string            `json:"namespace_id"`
	Name                 string            `json:"name"`
	Description          string            `json:"description"`
	MinScale             int64             `json:"min_scale"`
	MaxScale             int64             `json:"max_scale"`
	EnvironmentVariables map[string]string `json:"environment_variables"`
	Runtime              string            `json:"runtime"`
	RuntimeMessage       string            `json:"runtime_message"`
	MemoryLimit          int64             `json:"memory_limit"`
	CPULimit             int64             `json:"cpu_limit"`
	Timeout              string            `json:"timeout"`
	Handler              string            `json:"handler"`
	Privacy              string            `json:"privacy"`
	DomainName           string            `json:"domain_name"`
	Status               string            `json:"status"`
	ErrorMessage         string            `json:"error_message"`
	Region               string            `json:"region"`
}

// FunctionRequest is the payload for function create and update calls.
type FunctionRequest struct {
	NamespaceID                string            `json:"namespace_id,omitempty"`
	Name                       string            `json:"name,omitempty"`
	Description                *string           `json:"description,omitempty"`
	MinScale                   *int64            `json:"min_scale,omitempty"`
	MaxScale                   *int64            `json:"max_scale,omitempty"`
	EnvironmentVariables       map[string]string `json:"environment_variables,omitempty"`
	SecretEnvironmentVariables []SecretVar       `json:"secret_environment_variables,omitempty"`
	Runtime                    *string           `json:"runtime,omitempty"`
	MemoryLimit                *int64            `json:"memory_limit,omitempty"`
	Timeout                    *string           `json:"timeout,omitempty"`
	Handler                    *string           `json:"handler,omitempty"`
	Privacy                    *string           `json:"privacy,omitempty"`
	// Redeploy is only honored by update calls; creation rejects it.
	Redeploy *bool `json:"redeploy,omitempty"`
}

// FunctionNamespace is the descriptor returned by the functions namespace
// API. Same shape as ContainerNamespace, reported by a different product.
type FunctionNamespace struct {
	ID                   string            `json:"id"`
	Name                 string            `json:"name"`
	Description          string            `json:"description"`
	OrganizationID       string            `json:"organization_id"`
	ProjectID            string            `json:"project_id"`
	EnvironmentVariables map[string]string `json:"environment_variables"`
	RegistryEndpoint     string            `json:"registry_endpoint"`
	RegistryNamespaceID  string            `json:"registry_namespace_id"`
	Status               string            `json:"status"`
	ErrorMessage         string            `json:"error_message"`
	Region               string            `json:"region"`
}

func functionsPath(region, suffix string) string {
	return fmt.Sprintf("%s/regions/%s/%s", functionsAPIVersion, region, suffix)
}

// ListFunctions returns every function of a namespace.
func (c *Client) ListFunctions(ctx context.Context, region, namespaceID string) ([]Function, error) {
	var out []Function
	extra := url.Values{"namespace_id": []string{namespaceID}}
	for page := 1; ; page++ {
		var envelope struct {
			Functions []Function `json:"functions"`
		}
		if err := c.get(ctx, functionsPath(region, "functions"), pageQuery(page, extra), &envelope); err != nil {
			return nil, err
		}
		out = append(out, envelope.Functions...)
		if len(envelope.Functions) < pageSize {
			return out, nil
		}
	}
}

// FunctionByName resolves a function through a name keyed lookup over the
// namespace listing.
func (c *Client) FunctionByName(ctx context.Context, region, namespaceID, name string) (*Function, error) {
	list, err := c.ListFunctions(ctx, region, namespaceID)
	if err != nil {
		return nil, err
	}
	lookup := make(map[string]Function, len(list))
	for _, fn := range list {
		lookup[fn.Name] = fn
	}
	fn, ok := lookup[name]
	if !ok {
		return nil, fmt.Errorf("function %q not found in namespace %q", name, namespaceID)
	}
	return &fn, nil
}

// GetFunction reads one function by ID.
func (c *Client) GetFunction(ctx context.Context, region, id string) (*Function, error) {
	var fn Function
	if err := c.get(ctx, functionsPath(region, "functions/"+id), nil, &fn); err != nil {
		return nil, err
	}
	return &fn, nil
}

// CreateFunction creates a function.
func (c *Client) CreateFunction(ctx context.Context, region string, req *FunctionRequest) (*Function, error) {
	var fn Function
	if err := c.post(ctx, functionsPath(region, "functions"), req, &fn); err != nil {
		return nil, err
	}
	return &fn, nil
}

// UpdateFunction patches the mutable attributes of a function.
func (c *Client) UpdateFunction(ctx context.Context, region, id string, req *FunctionRequest) (*Function, error) {
	var fn Function
	if err := c.patch(ctx, functionsPath(region, "functions/"+id), req, &fn); err != nil {
		return nil, err
	}
	return &fn, nil
}

// DeleteFunction deletes a function.
func (c *Client) DeleteFunction(ctx context.Context, region, id string) error {
	return c.delete(ctx, functionsPath(region, "functions/"+id))
}

// ListFunctionNamespaces returns every function namespace of a project.
func (c *Client) ListFunctionNamespaces(ctx context.Context, region, projectID string) ([]FunctionNamespace, error) {
	var out []FunctionNamespace
	extra := url.Values{"project_id": []string{projectID}}
	for page := 1; ; page++ {
		var envelope struct {
			Namespaces []FunctionNamespace `json:"namespaces"`
		}
		if err := c.get(ctx, functionsPath(region, "namespaces"), pageQuery(page, extra), &envelope); err != nil {
			return nil, err
		}
		out = append(out, envelope.Namespaces...)
		if len(envelope.Namespaces) < pageSize {
			return out, nil
		}
	}
}

// FunctionNamespaceByName resolves a function namespace by name.
func (c *Client) FunctionNamespaceByName(ctx context.Context, region, projectID, name string) (*FunctionNamespace, error) {
	list, err := c.ListFunctionNamespaces(ctx, region, projectID)
	if err != nil {
		return nil, err
	}
	lookup := make(map[string]FunctionNamespace, len(list))
	for _, ns := range list {
		lookup[ns.Name] = ns
	}
	ns, ok := lookup[name]
	if !ok {
		return nil, fmt.Errorf("function namespace %q not found in project %q", name, projectID)
	}
	return &ns, nil
}

// GetFunctionNamespace reads one function namespace by ID.
func (c *Client) GetFunctionNamespace(ctx context.Context, region, id string) (*FunctionNamespace, error) {
	var ns FunctionNamespace
	if err := c.get(ctx, functionsPath(region, "namespaces/"+id), nil, &ns); err != nil {
		return nil, err
	}
	return &ns, nil
}

// CreateFunctionNamespace creates a function namespace.
func (c *Client) CreateFunctionNamespace(ctx context.Context, region string, req *NamespaceRequest) (*FunctionNamespace, error) {
	var ns FunctionNamespace
	if err := c.post(ctx, functionsPath(region, "namespaces"), req, &ns); err != nil {
		return nil, err
	}
	return &ns, nil
}

// UpdateFunctionNamespace patches the mutable attributes of a function
// namespace.
func (c *Client) UpdateFunctionNamespace(ctx context.Context, region, id string, req *NamespaceRequest) (*FunctionNamespace, error) {
	var ns FunctionNamespace
	if err := c.patch(ctx, functionsPath(region, "namespaces/"+id), req, &ns); err != nil {
		return nil, err
	}
	return &ns, nil
}

// DeleteFunctionNamespace deletes a function namespace and the functions
// it holds.
func (c *Client) DeleteFunctionNamespace(ctx context.Context, region, id string) error {
	return c.delete(ctx, functionsPath(region, "namespaces/"+id))
}

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

const containersAPIVersion = "containers/v1beta1"

// Container is the descriptor returned by the containers API. Fields are
// reported verbatim; secret environment variables are never echoed back.
type Container struct {
	ID                   string            `json:"id"`
	NamespaceID          string            `json:"namespace_id"`
	Name                 string            `json:"name"`
	Description          string            `json:"description"`
	MinScale             int64             `json:"min_scale"`
	MaxScale             int64             `json:"max_scale"`
	EnvironmentVariables map[string]string `json:"environment_variables"`
	MemoryLimit          int64             `json:"memory_limit"`
	CPULimit             int64             `json:"cpu_limit"`
	Timeout              string            `json:"timeout"`
	Privacy              string            `json:"privacy"`
	RegistryImage        string            `json:"registry_image"`
	MaxConcurrency       int64             `json:"max_concurrency"`
	DomainName           string            `json:"domain_name"`
	Protocol             string            `json:"protocol"`
	Port                 int64             `json:"port"`
	Status               string            `json:"status"`
	ErrorMessage         string            `json:"error_message"`
	Region               string            `json:"region"`
}

// ContainerRequest is the payload for container create and update calls.
// Nil fields are left out so updates only carry the attributes that should
// converge.
type ContainerRequest struct {
	NamespaceID                string            `json:"namespace_id,omitempty"`
	Name                       string            `json:"name,omitempty"`
	Description                *string           `json:"description,omitempty"`
	MinScale                   *int64            `json:"min_scale,omitempty"`
	MaxScale                   *int64            `json:"max_scale,omitempty"`
	EnvironmentVariables       map[string]string `json:"environment_variables,omitempty"`
	SecretEnvironmentVariables []SecretVar       `json:"secret_environment_variables,omitempty"`
	MemoryLimit                *int64            `json:"memory_limit,omitempty"`
	Timeout                    *string           `json:"timeout,omitempty"`
	Privacy                    *string           `json:"privacy,omitempty"`
	RegistryImage              *string           `json:"registry_image,omitempty"`
	MaxConcurrency             *int64            `json:"max_concurrency,omitempty"`
	Protocol                   *string           `json:"protocol,omitempty"`
	Port                       *int64            `json:"port,omitempty"`
	// Redeploy is only honored by update calls; creation rejects it.
	Redeploy *bool `json:"redeploy,omitempty"`
}

// ContainerNamespace is the descriptor returned by the containers
// namespace API.
type ContainerNamespace struct {
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

// NamespaceRequest is the payload for container and function namespace
// create and update calls; both products share the same attribute set.
type NamespaceRequest struct {
	ProjectID                  string            `json:"project_id,omitempty"`
	Name                       string            `json:"name,omitempty"`
	Description                *string           `json:"description,omitempty"`
	EnvironmentVariables       map[string]string `json:"environment_variables,omitempty"`
	SecretEnvironmentVariables []SecretVar       `json:"secret_environment_variables,omitempty"`
}

func containersPath(region, suffix string) string {
	return fmt.Sprintf("%s/regions/%s/%s", containersAPIVersion, region, suffix)
}

// ListContainers returns every container of a namespace, iterating the
// paginated listing to the end.
func (c *Client) ListContainers(ctx context.Context, region, namespaceID string) ([]Container, error) {
	var out []Container
	extra := url.Values{"namespace_id": []string{namespaceID}}
	for page := 1; ; page++ {
		var envelope struct {
			Containers []Container `json:"containers"`
		}
		if err := c.get(ctx, containersPath(region, "containers"), pageQuery(page, extra), &envelope); err != nil {
			return nil, err
		}
		out = append(out, envelope.Containers...)
		if len(envelope.Containers) < pageSize {
			return out, nil
		}
	}
}

// ContainerByName resolves a container through a name keyed lookup over
// the namespace listing.
func (c *Client) ContainerByName(ctx context.Context, region, namespaceID, name string) (*Container, error) {
	list, err := c.ListContainers(ctx, region, namespaceID)
	if err != nil {
		return nil, err
	}
	lookup := make(map[string]Container, len(list))
	for _, cn := range list {
		lookup[cn.Name] = cn
	}
	cn, ok := lookup[name]
	if !ok {
		return nil, fmt.Errorf("container %q not found in namespace %q", name, namespaceID)
	}
	return &cn, nil
}

// GetContainer reads one container by ID.
func (c *Client) GetContainer(ctx context.Context, region, id string) (*Container, error) {
	var cn Container
	if err := c.get(ctx, containersPath(region, "containers/"+id), nil, &cn); err != nil {
		return nil, err
	}
	return &cn, nil
}

// CreateContainer creates a container and returns the initial, usually
// still pending, descriptor.
func (c *Client) CreateContainer(ctx context.Context, region string, req *ContainerRequest) (*Container, error) {
	var cn Container
	if err := c.post(ctx, containersPath(region, "containers"), req, &cn); err != nil {
		return nil, err
	}
	return &cn, nil
}

// UpdateContainer patches the mutable attributes of a container.
func (c *Client) UpdateContainer(ctx context.Context, region, id string, req *ContainerRequest) (*Container, error) {
	var cn Container
	if err := c.patch(ctx, containersPath(region, "containers/"+id), req, &cn); err != nil {
		return nil, err
	}
	return &cn, nil
}

// DeleteContainer deletes a container. The API keeps reporting the
// resource in a deleting status until it is gone.
func (c *Client) DeleteContainer(ctx context.Context, region, id string) error {
	return c.delete(ctx, containersPath(region, "containers/"+id))
}

// ListContainerNamespaces returns every container namespace of a project.
func (c *Client) ListContainerNamespaces(ctx context.Context, region, projectID string) ([]ContainerNamespace, error) {
	var out []ContainerNamespace
	extra := url.Values{"project_id": []string{projectID}}
	for page := 1; ; page++ {
		var envelope struct {
			Namespaces []ContainerNamespace `json:"namespaces"`
		}
		if err := c.get(ctx, containersPath(region, "namespaces"), pageQuery(page, extra), &envelope); err != nil {
			return nil, err
		}
		out = append(out, envelope.Namespaces...)
		if len(envelope.Namespaces) < pageSize {
			return out, nil
		}
	}
}

// ContainerNamespaceByName resolves a container namespace by name.
func (c *Client) ContainerNamespaceByName(ctx context.Context, region, projectID, name string) (*ContainerNamespace, error) {
	list, err := c.ListContainerNamespaces(ctx, region, projectID)
	if err != nil {
		return nil, err
	}
	lookup := make(map[string]ContainerNamespace, len(list))
	for _, ns := range list {
		lookup[ns.Name] = ns
	}
	ns, ok := lookup[name]
	if !ok {
		return nil, fmt.Errorf("container namespace %q not found in project %q", name, projectID)
	}
	return &ns, nil
}

// GetContainerNamespace reads one container namespace by ID.
func (c *Client) GetContainerNamespace(ctx context.Context, region, id string) (*ContainerNamespace, error) {
	var ns ContainerNamespace
	if err := c.get(ctx, containersPath(region, "namespaces/"+id), nil, &ns); err != nil {
		return nil, err
	}
	return &ns, nil
}

// CreateContainerNamespace creates a container namespace.
func (c *Client) CreateContainerNamespace(ctx context.Context, region string, req *NamespaceRequest) (*ContainerNamespace, error) {
	var ns ContainerNamespace
	if err := c.post(ctx, containersPath(region, "namespaces"), req, &ns); err != nil {
		return nil, err
	}
	return &ns, nil
}

// UpdateContainerNamespace patches the mutable attributes of a container
// namespace.
func (c *Client) UpdateContainerNamespace(ctx context.Context, region, id string, req *NamespaceRequest) (*ContainerNamespace, error) {
	var ns ContainerNamespace
	if err := c.patch(ctx, containersPath(region, "namespaces/"+id), req, &ns); err != nil {
		return nil, err
	}
	return &ns, nil
}

// DeleteContainerNamespace deletes a container namespace and the
// containers it holds.
func (c *Client) DeleteContainerNamespace(ctx context.Context, region, id string) error {
	return c.delete(ctx, containersPath(region, "namespaces/"+id))
}

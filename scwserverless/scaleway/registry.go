package scaleway

import (
	"context"
	"fmt"
	"net/url"
)

const registryAPIVersion = "registry/v1"

// RegistryNamespace is the descriptor returned by the container registry
// API. The registry is read only from this provider's point of view; it is
// provisioned by Scaleway alongside serverless namespaces.
type RegistryNamespace struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	OrganizationID string `json:"organization_id"`
	ProjectID      string `json:"project_id"`
	Endpoint       string `json:"endpoint"`
	IsPublic       bool   `json:"is_public"`
	Size           int64  `json:"size"`
	ImageCount     int64  `json:"image_count"`
	Status         string `json:"status"`
	StatusMessage  string `json:"status_message"`
	Region         string `json:"region"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

func registryPath(region, suffix string) string {
	return fmt.Sprintf("%s/regions/%s/%s", registryAPIVersion, region, suffix)
}

// ListRegistryNamespaces returns every registry namespace of a project.
func (c *Client) ListRegistryNamespaces(ctx context.Context, region, projectID string) ([]RegistryNamespace, error) {
	var out []RegistryNamespace
	extra := url.Values{"project_id": []string{projectID}}
	for page := 1; ; page++ {
		var envelope struct {
			Namespaces []RegistryNamespace `json:"namespaces"`
		}
		if err := c.get(ctx, registryPath(region, "namespaces"), pageQuery(page, extra), &envelope); err != nil {
			return nil, err
		}
		out = append(out, envelope.Namespaces...)
		if len(envelope.Namespaces) < pageSize {
			return out, nil
		}
	}
}

// RegistryNamespaceByName resolves a registry namespace by name.
func (c *Client) RegistryNamespaceByName(ctx context.Context, region, projectID, name string) (*RegistryNamespace, error) {
	list, err := c.ListRegistryNamespaces(ctx, region, projectID)
	if err != nil {
		return nil, err
	}
	lookup := make(map[string]RegistryNamespace, len(list))
	for _, ns := range list {
		lookup[ns.Name] = ns
	}
	ns, ok := lookup[name]
	if !ok {
		return nil, fmt.Errorf("container registry %q not found in project %q", name, projectID)
	}
	return &ns, nil
}

// GetRegistryNamespace reads one registry namespace by ID.
func (c *Client) GetRegistryNamespace(ctx context.Context, region, id string) (*RegistryNamespace, error) {
	var ns RegistryNamespace
	if err := c.get(ctx, registryPath(region, "namespaces/"+id), nil, &ns); err != nil {
		return nil, err
	}
	return &ns, nil
}

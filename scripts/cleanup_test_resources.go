package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/scaleway"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/utils"
)

type stats struct {
	count, deleted, failed int
}

type resourceHandler[T any] struct {
	name       string
	pluralName string
	list       func(region string) ([]T, error)
	delete     func(region, id string) error
	getID      func(T) string
	getName    func(T) string
	display    func(T)
}

func main() {
	ctx := context.Background()

	secretKey := os.Getenv("SCW_SECRET_KEY")
	projectID := os.Getenv("SCW_DEFAULT_PROJECT_ID")
	apiURL := os.Getenv("SCW_API_URL")

	if secretKey == "" || projectID == "" {
		log.Fatal("SCW_SECRET_KEY and SCW_DEFAULT_PROJECT_ID must be set")
	}
	if apiURL == "" {
		apiURL = "https://api.scaleway.com"
	}

	client := scaleway.NewClient(apiURL, secretKey)

	// Parse arguments
	prefix := "acc-"
	dryRun := false
	statusOnly := false

	for i := 1; i < len(os.Args); i++ {
		switch arg := os.Args[i]; arg {
		case "--dry-run", "-n":
			dryRun = true
		case "--status", "-s":
			statusOnly = true
		default:
			if !strings.HasPrefix(arg, "-") {
				prefix = arg
			}
		}
	}

	switch {
	case statusOnly:
		fmt.Println("STATUS MODE: Showing current resources")
	case dryRun:
		fmt.Println("DRY RUN MODE: No resources will be deleted")
	}
	fmt.Printf("Resources with prefix: %s\n", prefix)

	containerNsHandler := resourceHandler[scaleway.ContainerNamespace]{
		name:       "container namespace",
		pluralName: "Container Namespaces",
		list: func(region string) ([]scaleway.ContainerNamespace, error) {
			all, err := client.ListContainerNamespaces(ctx, region, projectID)
			if err != nil {
				return nil, err
			}
			return filterByPrefix(all, prefix, func(ns scaleway.ContainerNamespace) string { return ns.Name }), nil
		},
		delete: func(region, id string) error {
			return client.DeleteContainerNamespace(ctx, region, id)
		},
		getID:   func(ns scaleway.ContainerNamespace) string { return ns.ID },
		getName: func(ns scaleway.ContainerNamespace) string { return ns.Name },
		display: func(ns scaleway.ContainerNamespace) {
			fmt.Printf("Container Namespace: %s\n  ID: %s\n  Status: %s\n  Region: %s\n",
				ns.Name, ns.ID, ns.Status, ns.Region)
		},
	}

	functionNsHandler := resourceHandler[scaleway.FunctionNamespace]{
		name:       "function namespace",
		pluralName: "Function Namespaces",
		list: func(region string) ([]scaleway.FunctionNamespace, error) {
			all, err := client.ListFunctionNamespaces(ctx, region, projectID)
			if err != nil {
				return nil, err
			}
			return filterByPrefix(all, prefix, func(ns scaleway.FunctionNamespace) string { return ns.Name }), nil
		},
		delete: func(region, id string) error {
			return client.DeleteFunctionNamespace(ctx, region, id)
		},
		getID:   func(ns scaleway.FunctionNamespace) string { return ns.ID },
		getName: func(ns scaleway.FunctionNamespace) string { return ns.Name },
		display: func(ns scaleway.FunctionNamespace) {
			fmt.Printf("Function Namespace: %s\n  ID: %s\n  Status: %s\n  Region: %s\n",
				ns.Name, ns.ID, ns.Status, ns.Region)
		},
	}

	containerStats, err := processResources(containerNsHandler, statusOnly, dryRun)
	if err != nil {
		log.Fatalf("Failed to process container namespaces: %v", err)
	}
	functionStats, err := processResources(functionNsHandler, statusOnly, dryRun)
	if err != nil {
		log.Fatalf("Failed to process function namespaces: %v", err)
	}

	fmt.Println("\n=== Summary ===")
	var totalDeleted, totalFailed int

	printStat := func(name string, s stats) {
		switch {
		case statusOnly:
			fmt.Printf("Total %s: %d\n", strings.ToLower(name), s.count)
		case dryRun:
			fmt.Printf("Would delete %s: %d\n", strings.ToLower(name), s.count)
		default:
			fmt.Printf("%s deleted: %d, failed: %d\n", name, s.deleted, s.failed)
			totalDeleted += s.deleted
			totalFailed += s.failed
		}
	}

	printStat(containerNsHandler.pluralName, containerStats)
	printStat(functionNsHandler.pluralName, functionStats)

	if !statusOnly && !dryRun {
		fmt.Printf("\nTotal deleted: %d, failed: %d\n", totalDeleted, totalFailed)
		if totalFailed > 0 {
			fmt.Println("\nSome resources failed to delete. Review errors above.")
		}
		if totalDeleted > 0 {
			fmt.Println("\nNote: deleted namespaces may take time to fully remove.")
		}
	}
}

func filterByPrefix[T any](items []T, prefix string, name func(T) string) []T {
	var out []T
	for _, item := range items {
		if strings.HasPrefix(name(item), prefix) {
			out = append(out, item)
		}
	}
	return out
}

func processResources[T any](h resourceHandler[T], statusOnly, dryRun bool) (stats, error) {
	var s stats

	if statusOnly {
		fmt.Printf("\n=== %s ===\n", h.pluralName)
	} else {
		fmt.Printf("\n=== Cleaning up %s ===\n", h.pluralName)
	}

	for _, region := range scaleway.Regions {
		items, err := h.list(region)
		if err != nil {
			return s, fmt.Errorf("failed to list %s in %s: %w", h.name, region, err)
		}

		for _, item := range items {
			id := h.getID(item)
			name := h.getName(item)

			switch {
			case statusOnly:
				h.display(item)
				s.count++
			case dryRun:
				fmt.Printf("Would delete %s: %s (ID: %s)\n", h.name, name, id)
				s.count++
			default:
				fmt.Printf("Deleting %s: %s (ID: %s)\n", h.name, name, id)
				if err := h.delete(region, id); err != nil {
					if utils.IsNotFound(err) {
						fmt.Println("  already deleted")
					} else {
						fmt.Printf("  error: %v\n", err)
						s.failed++
					}
				} else {
					fmt.Println("  deletion initiated")
					s.deleted++
				}
			}
		}
	}

	return s, nil
}

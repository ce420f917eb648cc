package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/hashicorp/terraform-plugin-framework/providerserver"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless"
)

// TODO: We should update this on build. Part of the release process
var version = "0.0.0-alpha"

const (
	defaultAPIURL = "https://api.scaleway.com"
	// apiURLEnv points the provider at an alternate Scaleway API endpoint.
	apiURLEnv = "SCW_API_URL"
)

func main() {
	var debug bool

	flag.BoolVar(&debug, "debug", false, "set to true to run the provider with support for debuggers like delve")
	flag.Parse()

	// handled here rather than in the provider config so it's easier to switch for tests
	apiURL := os.Getenv(apiURLEnv)
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	err := providerserver.Serve(
		context.Background(),
		scwserverless.New(context.Background(), apiURL, version),
		providerserver.ServeOpts{
			Address: "registry.terraform.io/scaleway-community/scwserverless",
			Debug:   debug,
		})
	if err != nil {
		log.Fatal(err.Error())
	}
}

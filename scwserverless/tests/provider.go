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

// Package tests includes the acceptance tests for the Scaleway serverless
// Terraform provider.
package tests

import (
	"context"
	"os"
	"testing"

	"github.com/hashicorp/terraform-plugin-framework/providerserver"
	"github.com/hashicorp/terraform-plugin-go/tfprotov6"
	"github.com/hashicorp/terraform-plugin-testing/config"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless"
)

const defaultAPIURL = "https://api.scaleway.com"

var providerCfgVars = config.Variables{
	"secret_key": config.StringVariable(os.Getenv("SCW_SECRET_KEY")),
	"project_id": config.StringVariable(os.Getenv("SCW_DEFAULT_PROJECT_ID")),
}

var testAccProtoV6ProviderFactories = map[string]func() (tfprotov6.ProviderServer, error){
	"scwserverless": providerserver.NewProtocol6WithError(scwserverless.New(context.Background(), defaultAPIURL, "ign")()),
}

// testAccPreCheck is a test helper function used to perform provider
// validation before running the provider
func testAccPreCheck(t testing.TB) {
	if v := os.Getenv("SCW_SECRET_KEY"); v == "" {
		t.Fatal("SCW_SECRET_KEY must be set for acceptance tests")
	}
	if v := os.Getenv("SCW_DEFAULT_PROJECT_ID"); v == "" {
		t.Fatal("SCW_DEFAULT_PROJECT_ID must be set for acceptance tests")
	}
}

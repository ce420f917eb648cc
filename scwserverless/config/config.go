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

// Package config contains the configuration structs used to pass the
// shared API client down to resources and data sources.
package config

import (
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/scaleway"
)

// Resource is the config used to pass data and dependencies to resource
// implementations.
type Resource struct {
	Client *scaleway.Client
	// ProjectID is the provider level default project, used when a
	// resource does not set its own.
	ProjectID string
}

// Datasource is the config used to pass data and dependencies to data
// source implementations.
type Datasource struct {
	Client    *scaleway.Client
	ProjectID string
}

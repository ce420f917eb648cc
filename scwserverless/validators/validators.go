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

// Package validators contains generally useful validation functions for the provider.
package validators

import (
	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
)

// Regions returns a list of regions in which the Scaleway serverless
// products are available.
func Regions() []validator.String {
	return []validator.String{stringvalidator.OneOf("fr-par", "nl-ams", "pl-waw")}
}

// Privacies returns the privacy policies a container or function accepts.
func Privacies() []validator.String {
	return []validator.String{stringvalidator.OneOf("public", "private")}
}

// Protocols returns the communication protocols a container accepts.
func Protocols() []validator.String {
	return []validator.String{stringvalidator.OneOf("http1", "h2c")}
}

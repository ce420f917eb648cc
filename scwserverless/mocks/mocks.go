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

//go:build generate
// +build generate

// Package mocks provides the mocked interfaces used for testing.
package mocks

//go:generate mockgen -destination=./state_reader_mock.go -package=mocks github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/utils StateReader

// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package config

// Config represents behavioral options for the analyzer.
type Config uint8

const (
	// IncludeGenerated specifies whether generated files are analyzed.
	IncludeGenerated Config = 1 << iota

	// SuggestFixes determines whether diagnostics carry suggested fixes
	// rewriting the parameter's type annotation.
	SuggestFixes

	// ExportedFuncs enables diagnostics on parameters of exported functions
	// and methods. Off by default, since applying the suggestion changes an
	// exported signature.
	ExportedFuncs
)

// Behavior is the flag set used by the analyzer pipeline.
type Behavior = BitMask[Config]

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

package gclplugin

import generalize "fillmore-labs.com/generalize/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Fixes enables suggested fixes rewriting parameter type annotations.
	Fixes *bool `json:"fixes,omitzero"`
	// Exported enables diagnostics on parameters of exported functions and methods.
	Exported *bool `json:"exported,omitzero"`
	// MaxAncestry caps the ancestry size considered per parameter.
	MaxAncestry *int `json:"max-ancestry,omitzero"`
}

// Options converts [Settings] into a list of [generalize.Option] for the generalize analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []generalize.Option {
	var opts []generalize.Option

	opts = appendOption(opts, s.Fixes, generalize.WithFixes)
	opts = appendOption(opts, s.Exported, generalize.WithExported)
	opts = appendOption(opts, s.MaxAncestry, generalize.WithMaxAncestry)

	return opts
}

// appendOption appends a non-nil setting to a [generalize.Option] list.
func appendOption[T any](opts []generalize.Option, value *T, constructor func(T) generalize.Option) []generalize.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}

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

package analyzer

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"

	"fillmore-labs.com/generalize/internal/config"
)

// runOptions represent configuration runOptions for the generalize analyzer.
type runOptions struct {
	// behavior holds behavioral options.
	behavior config.Behavior

	// maxAncestry caps the ancestry size considered per parameter;
	// a negative value means unlimited.
	maxAncestry int
}

// makeRunOptions returns a [runOptions] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	return r
}

// defaultRunOptions initializes and returns a new runOptions instance with default values.
func defaultRunOptions() *runOptions {
	return &runOptions{
		behavior:    config.NewBitMask(config.SuggestFixes),
		maxAncestry: -1,
	}
}

// applyFile overrides options from a yaml settings file.
func (r *runOptions) applyFile(f config.File) {
	if f.Generated != nil {
		r.behavior.Set(config.IncludeGenerated, *f.Generated)
	}

	if f.Fixes != nil {
		r.behavior.Set(config.SuggestFixes, *f.Fixes)
	}

	if f.Exported != nil {
		r.behavior.Set(config.ExportedFuncs, *f.Exported)
	}

	if f.MaxAncestry != nil {
		r.maxAncestry = *f.MaxAncestry
	}
}

// analyzer returns a generalize *[analysis.Analyzer] instance.
func (r *runOptions) analyzer() *analysis.Analyzer {
	a := &analysis.Analyzer{
		Name:     name,
		Doc:      doc,
		URL:      url,
		Run:      r.run,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}

	return a
}

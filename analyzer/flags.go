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
	"flag"

	"fillmore-labs.com/generalize/internal/config"
)

// registerFlags binds the analyzer's options to command line flag values.
func registerFlags(flags *flag.FlagSet, r *runOptions) {
	flags.Var(behaviorValue(r, config.IncludeGenerated), "generated", "analyze generated files")
	flags.Var(behaviorValue(r, config.SuggestFixes), "fixes", "emit suggested fixes")
	flags.Var(behaviorValue(r, config.ExportedFuncs), "exported", "report parameters of exported functions")
	flags.IntVar(&r.maxAncestry, "max-ancestry", r.maxAncestry, "maximum ancestry size per parameter, -1 for unlimited")
	flags.Var(configFileValue{r: r}, "config", "load settings from a yaml `file`")
}

// behaviorValue adapts one behavior bit to a boolean [flag.Value].
func behaviorValue(r *runOptions, value config.Config) flag.Value {
	return boolValue[config.Config, *config.Behavior]{flags: &r.behavior, value: value}
}

// configFileValue is a [flag.Value] that loads a yaml settings file when set.
type configFileValue struct {
	r *runOptions
}

// Set implements [flag.Value].
func (v configFileValue) Set(path string) error {
	f, err := config.LoadFile(path)
	if err != nil {
		return err
	}

	v.r.applyFile(f)

	return nil
}

// String implements [flag.Value].
func (v configFileValue) String() string { return "" }

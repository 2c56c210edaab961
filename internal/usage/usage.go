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

// Package usage records how a function body uses its parameters.
//
// For every call expression whose receiver is a plain reference to a
// parameter, the invoked method is recorded against that parameter. Any other
// appearance of a parameter (as a call argument, in a field access, or as an
// assignment source) disqualifies it: such usage pins the declared type in
// ways method-set reasoning cannot cover, and an uncertain suggestion must
// resolve to silence.
package usage

import (
	"context"
	"go/ast"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"
)

// Stage configures and runs the usage collection stage.
type Stage struct {
	*analysis.Pass
}

// TrackUsage collects the method calls a function body performs through each
// of its parameters. It is a single pure fold over the body; no collector
// state outlives the call.
func (us Stage) TrackUsage(ctx context.Context, body inspector.Cursor, f *ast.FuncDecl) Result {
	defer trace.StartRegion(ctx, "Usage").End()

	uc := us.newCollector(f.Type.Params)
	if len(uc.params) == 0 {
		return Result{}
	}

	uc.inspectBody(body)

	return uc.result()
}

// newCollector creates a collector for the parameters of one function.
func (us Stage) newCollector(params *ast.FieldList) collector {
	uc := collector{
		Pass:        us.Pass,
		params:      make(map[*types.Var]struct{}),
		receivers:   make(map[*ast.Ident]struct{}),
		invocations: make(map[*types.Var][]Invocation),
		escaped:     make(map[*types.Var]struct{}),
	}

	if params == nil {
		return uc
	}

	for _, field := range params.List {
		for _, name := range field.Names {
			if v, ok := us.TypesInfo.Defs[name].(*types.Var); ok {
				uc.params[v] = struct{}{}
			}
		}
	}

	return uc
}

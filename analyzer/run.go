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
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/generalize/internal/astutil"
	"fillmore-labs.com/generalize/internal/config"
	"fillmore-labs.com/generalize/internal/demote"
	"fillmore-labs.com/generalize/internal/hierarchy"
	"fillmore-labs.com/generalize/internal/report"
	"fillmore-labs.com/generalize/internal/usage"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// run executes the generalize analyzer's pipeline.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("generalize: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "Generalize")
	defer task.End()

	us := usage.Stage{Pass: p}

	// Remember the current file over all functions declared in it
	var currentFile astutil.CurrentFile

	// Loop over all function and method declarations
	root, nodeTypes := in.Root(), []ast.Node{
		(*ast.File)(nil),
		(*ast.FuncDecl)(nil),
	}

	root.Inspect(nodeTypes, func(i inspector.Cursor) bool {
		switch node := i.Node().(type) {
		case *ast.File:
			currentFile = astutil.NewCurrentFile(p.Fset, node)
			descend := r.behavior.Enabled(config.IncludeGenerated) || !currentFile.Generated()

			return descend

		case *ast.FuncDecl:
			if node.Body == nil {
				return false
			}

			if !currentFile.Valid() {
				astutil.InternalError(p, node, "Function declaration %s without file info", node.Name.Name)

				return false
			}

			// Skip functions with nolint comment
			if node.Doc != nil && astutil.CommentHasNoLint(node.Doc.List[len(node.Doc.List)-1]) {
				return false
			}

			// Changing an exported signature is a breaking change.
			if node.Name.IsExported() && !r.behavior.Enabled(config.ExportedFuncs) {
				return false
			}

			body := i.ChildAt(edge.FuncDecl_Body, -1)

			// Stage 1: Record method calls dispatched through parameters
			records := us.TrackUsage(ctx, body, node)

			if records.HasInvocations() {
				// Stage 2: Compute admissible replacement types per parameter
				suggestions := r.analyzeParams(ctx, p, node, records)

				// Stage 3: Generate diagnostics with suggested fixes
				report.ProcessSuggestions(ctx, p, currentFile, suggestions, r.behavior)
			}

			return false

		default:
			astutil.InternalError(p, node, "Unexpected node type: %T", node)

			return false
		}
	})

	return nil, nil
}

// analyzeParams runs the demotion analysis once per parameter with recorded
// invocations, in declaration order.
func (r *runOptions) analyzeParams(ctx context.Context, p *analysis.Pass,
	f *ast.FuncDecl, records usage.Result,
) []report.Suggestion {
	defer trace.StartRegion(ctx, "Demote").End()

	var suggestions []report.Suggestion

	for _, field := range f.Type.Params.List {
		for _, ident := range field.Names {
			v, ok := p.TypesInfo.Defs[ident].(*types.Var)
			if !ok {
				continue
			}

			calls := records.Invocations(v)
			if len(calls) == 0 {
				continue
			}

			declared := hierarchy.NamedOf(v.Type())
			if declared == nil {
				continue
			}

			g := hierarchy.New(declared, r.maxAncestry)

			candidates := demote.Admissible(g, calls)
			if len(candidates) == 0 {
				continue
			}

			suggestions = append(suggestions, report.Suggestion{
				Ident:      ident,
				TypeExpr:   field.Type,
				Candidates: candidates,
			})
		}
	}

	return suggestions
}

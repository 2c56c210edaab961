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

package report

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/generalize/internal/astutil"
	"fillmore-labs.com/generalize/internal/config"
	"fillmore-labs.com/generalize/internal/demote"
)

// Suggestion proposes more general declarations for one parameter.
type Suggestion struct {
	// Ident is the parameter's declaring identifier.
	Ident *ast.Ident

	// TypeExpr is the declared type expression of the parameter's field.
	// Parameters sharing a field (`a, b Dog`) share the expression.
	TypeExpr ast.Expr

	// Candidates are the admissible replacement types, most general first.
	Candidates []demote.Candidate
}

// ProcessSuggestions emits one diagnostic per parameter with a non-empty
// candidate list.
//
// This is the final phase of the analyzer pipeline. The diagnostic names the
// most general candidate; further candidates appear as related information in
// rank order. When fixes are enabled and the candidate type can be rendered
// with the file's existing imports, the diagnostic carries a text edit
// replacing the parameter's type annotation.
func ProcessSuggestions(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile,
	suggestions []Suggestion, option config.Behavior,
) {
	if len(suggestions) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "Report").End()

	fixes := option.Enabled(config.SuggestFixes)

	// Short package-qualified names for messages: Animal, io.Reader.
	qualifier := func(other *types.Package) string {
		if other == p.Pkg {
			return ""
		}

		return other.Name()
	}

	// Parameters declared in one field share a type expression; a second edit
	// on the same expression would conflict with the first.
	edited := make(map[ast.Expr]struct{})

	for _, s := range suggestions {
		if currentFile.NoLintComment(s.Ident.Pos()) {
			continue
		}

		best := s.Candidates[0]
		pointer := isPointerExpr(s.TypeExpr) && !types.IsInterface(best.Type)

		rendered, renderable := renderType(currentFile.File(), p.Pkg, best.Type, pointer)

		diagnostic := analysis.Diagnostic{
			Pos:     s.Ident.Pos(),
			End:     s.Ident.End(),
			Message: createMessage(s.Ident.Name, best, pointer, qualifier),
			Related: relatedCandidates(s.Candidates[1:], qualifier),
		}

		if _, done := edited[s.TypeExpr]; fixes && renderable && !done {
			edited[s.TypeExpr] = struct{}{}

			diagnostic.SuggestedFixes = []analysis.SuggestedFix{{
				Message: diagnostic.Message,
				TextEdits: []analysis.TextEdit{
					{Pos: s.TypeExpr.Pos(), End: s.TypeExpr.End(), NewText: rendered},
				},
			}}
		}

		p.Report(diagnostic)
	}
}

// createMessage constructs the diagnostic message for the best candidate.
func createMessage(name string, best demote.Candidate, pointer bool, qualifier types.Qualifier) string {
	var star string
	if pointer {
		star = "*"
	}

	return fmt.Sprintf("Parameter '%s' can be declared as more general type '%s%s' (gn:gen)",
		name, star, types.TypeString(best.Type, qualifier))
}

// relatedCandidates lists the remaining admissible types in rank order.
func relatedCandidates(rest []demote.Candidate, qualifier types.Qualifier) []analysis.RelatedInformation {
	if len(rest) == 0 {
		return nil
	}

	related := make([]analysis.RelatedInformation, 0, len(rest))

	for _, c := range rest {
		pos := c.Type.Obj().Pos()
		related = append(related, analysis.RelatedInformation{
			Pos:     pos,
			End:     pos + token.Pos(len(c.Type.Obj().Name())),
			Message: fmt.Sprintf("'%s' is also admissible", types.TypeString(c.Type, qualifier)),
		})
	}

	return related
}

// isPointerExpr checks whether the declared type expression is `*T`.
func isPointerExpr(expr ast.Expr) bool {
	_, ok := expr.(*ast.StarExpr)

	return ok
}

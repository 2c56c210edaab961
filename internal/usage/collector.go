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

package usage

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"
)

// collector records method calls through parameter variables within one
// function body.
type collector struct {
	// Pass is an embedded [analysis.Pass] for type information.
	*analysis.Pass

	// params holds the parameter variables of the analyzed function.
	params map[*types.Var]struct{}

	// receivers marks identifiers already consumed as call receivers, so the
	// identifier walk does not treat them as an escape.
	receivers map[*ast.Ident]struct{}

	// invocations maps parameters to the calls recorded against them.
	invocations map[*types.Var][]Invocation

	// escaped marks parameters used outside a call-receiver position.
	escaped map[*types.Var]struct{}
}

// inspectBody traverses the function body once, recording call expressions
// dispatched through parameters and flagging all other parameter references.
//
// Function literals are traversed too: a call through an outer parameter
// inside a closure constrains that parameter the same way.
func (c *collector) inspectBody(body inspector.Cursor) {
	nodes := []ast.Node{
		// keep-sorted start
		(*ast.CallExpr)(nil),
		(*ast.Ident)(nil),
		// keep-sorted end
	}

	body.Inspect(nodes, func(i inspector.Cursor) bool {
		switch n := i.Node().(type) {
		case *ast.CallExpr:
			c.handleCall(n)

		case *ast.Ident:
			c.handleIdent(n)
		}

		return true
	})
}

// handleCall records an invocation when the call's receiver is a plain
// reference to a parameter and the callee resolves to a method. Calls with
// any other shape are skipped; the receiver identifier, if it refers to a
// parameter, is then picked up by handleIdent as an escape.
func (c *collector) handleCall(call *ast.CallExpr) {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return
	}

	id, ok := sel.X.(*ast.Ident)
	if !ok {
		return
	}

	v := c.paramOf(id)
	if v == nil {
		return
	}

	callee, ok := c.TypesInfo.Uses[sel.Sel].(*types.Func)
	if !ok || callee.Signature().Recv() == nil {
		// Not a method: a func-typed field or a resolution miss. The
		// identifier stays unconsumed and disqualifies the parameter.
		return
	}

	c.invocations[v] = append(c.invocations[v], Invocation{Param: v, Callee: callee})
	c.receivers[id] = struct{}{}
}

// handleIdent flags parameter references outside call-receiver positions.
func (c *collector) handleIdent(id *ast.Ident) {
	if _, ok := c.receivers[id]; ok {
		return
	}

	if v := c.paramOf(id); v != nil {
		c.escaped[v] = struct{}{}
	}
}

// paramOf resolves an identifier to a parameter variable of the analyzed
// function, or nil.
func (c *collector) paramOf(id *ast.Ident) *types.Var {
	v, ok := c.TypesInfo.Uses[id].(*types.Var)
	if !ok {
		return nil
	}

	if _, ok := c.params[v]; !ok {
		return nil
	}

	return v
}

// result returns the collected invocations, dropping disqualified parameters.
func (c *collector) result() Result {
	for v := range c.escaped {
		delete(c.invocations, v)
	}

	if len(c.invocations) == 0 {
		return Result{}
	}

	return Result{invocations: c.invocations}
}

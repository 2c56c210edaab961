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

// Package testsource provides utilities for parsing and analyzing Go source code in tests.
//
// It is designed to simplify testing of the generalize analyzer by handling
// common boilerplate for parsing and type-checking Go source fragments.
// Sources are wrapped in a `package test` clause only, since hierarchy and
// demotion tests need top-level type declarations.
package testsource

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

const testpkg = "test"

// Parse parses a Go source fragment consisting of top-level declarations.
// The package clause is added automatically.
func Parse(tb testing.TB, src string) (*token.FileSet, *ast.File) {
	tb.Helper()

	const filename = "test.go"

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, "package "+testpkg+"\n\n"+src, parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return fset, f
}

// Check performs type checking on the provided AST file.
// It creates and returns a fully type-checked *[types.Package] and *[types.Info].
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}

// FuncBody locates a function declaration by name and returns it together
// with a cursor positioned at its body.
func FuncBody(tb testing.TB, f *ast.File, name string) (*ast.FuncDecl, inspector.Cursor) {
	tb.Helper()

	root := inspector.New([]*ast.File{f}).Root()
	for c := range root.Preorder((*ast.FuncDecl)(nil)) {
		fn := c.Node().(*ast.FuncDecl)
		if fn.Name.Name == name {
			return fn, c.ChildAt(edge.FuncDecl_Body, -1)
		}
	}

	tb.Fatalf("Can't find function %s", name)

	return nil, root
}

// NamedType looks up a named type declared in the package scope.
func NamedType(tb testing.TB, pkg *types.Package, name string) *types.Named {
	tb.Helper()

	obj := pkg.Scope().Lookup(name)
	if obj == nil {
		tb.Fatalf("Can't find type %s", name)
	}

	n, ok := obj.Type().(*types.Named)
	if !ok {
		tb.Fatalf("%s is not a named type", name)
	}

	return n
}

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

package demote_test

import (
	"go/types"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/generalize/internal/demote"
	"fillmore-labs.com/generalize/internal/hierarchy"
	"fillmore-labs.com/generalize/internal/testsource"
	"fillmore-labs.com/generalize/internal/usage"
)

const animals = `
type Animal struct{}

func (Animal) Eat() {}

type Barker interface {
	Bark()
}

type Dog struct {
	Animal
}

func (Dog) Bark() {}
`

const diamond = `
type Entity interface {
	ID() string
}

type Reloader interface {
	Entity
	Reload()
}

type Persister interface {
	Entity
	Persist()
}

type Record interface {
	Reloader
	Persister
}
`

const overlapping = `
type Logger interface {
	Log(msg string)
}

type Tracer interface {
	Log(msg string)
}

type Instrumented interface {
	Logger
	Tracer
	Flush()
}
`

// world bundles a type-checked fixture for one declared type.
type world struct {
	pkg      *types.Package
	declared *types.Named
	graph    *hierarchy.Graph
}

func buildWorld(tb testing.TB, src, root string) world {
	tb.Helper()

	fset, f := testsource.Parse(tb, src)
	pkg, _ := testsource.Check(tb, fset, f)
	declared := testsource.NamedType(tb, pkg, root)

	return world{pkg: pkg, declared: declared, graph: hierarchy.New(declared, -1)}
}

// calls resolves method names against the declared type into invocations the
// way the collector would record them: promoted methods resolve to their
// declaring object.
func (w world) calls(tb testing.TB, methods ...string) []usage.Invocation {
	tb.Helper()

	var calls []usage.Invocation

	for _, name := range methods {
		recv := types.Type(w.declared)
		if !types.IsInterface(w.declared) {
			recv = types.NewPointer(w.declared)
		}

		obj, _, _ := types.LookupFieldOrMethod(recv, true, w.pkg, name)

		m, ok := obj.(*types.Func)
		if !ok {
			tb.Fatalf("Can't find method %s on %s", name, w.declared)
		}

		calls = append(calls, usage.Invocation{Callee: m})
	}

	return calls
}

func names(cs []Candidate) []string {
	ns := make([]string, 0, len(cs))
	for _, c := range cs {
		ns = append(ns, c.Type.Obj().Name())
	}

	return ns
}

func TestSingleAncestor(t *testing.T) {
	t.Parallel()

	w := buildWorld(t, animals, "Dog")

	got := Admissible(w.graph, w.calls(t, "Eat"))

	assert.Equal(t, []string{"Animal"}, names(got))
}

func TestNoCommonAncestor(t *testing.T) {
	t.Parallel()

	w := buildWorld(t, animals, "Dog")

	// Bark is Dog's own; no ancestor provides both members.
	got := Admissible(w.graph, w.calls(t, "Eat", "Bark"))

	assert.Empty(t, got)
}

func TestNoUsage(t *testing.T) {
	t.Parallel()

	w := buildWorld(t, animals, "Dog")

	assert.Empty(t, Admissible(w.graph, nil), "zero requirements must not match vacuously")
	assert.Empty(t, Admissible(nil, w.calls(t, "Eat")), "a missing graph yields silence")
}

func TestDuplicateInvocationsCollapse(t *testing.T) {
	t.Parallel()

	w := buildWorld(t, animals, "Dog")

	once := Admissible(w.graph, w.calls(t, "Eat"))
	thrice := Admissible(w.graph, w.calls(t, "Eat", "Eat", "Eat"))

	assert.Equal(t, once, thrice)
}

func TestDiamondRanking(t *testing.T) {
	t.Parallel()

	w := buildWorld(t, diamond, "Record")

	got := Admissible(w.graph, w.calls(t, "ID"))

	// Entity at depth 0 first; the depth-1 tie breaks alphabetically.
	assert.Equal(t, []string{"Entity", "Persister", "Reloader"}, names(got))

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i].Depth, got[i-1].Depth, "ordering must be monotone in depth")
	}
}

func TestDiamondNarrowing(t *testing.T) {
	t.Parallel()

	w := buildWorld(t, diamond, "Record")

	got := Admissible(w.graph, w.calls(t, "ID", "Reload"))

	assert.Equal(t, []string{"Reloader"}, names(got))
}

func TestInterfaceSubstitution(t *testing.T) {
	t.Parallel()

	w := buildWorld(t, overlapping, "Instrumented")

	got := Admissible(w.graph, w.calls(t, "Log"))

	// Logger and Tracer declare the same contract in distinct declarations;
	// whichever one the call binds to, both must be admissible.
	assert.Equal(t, []string{"Logger", "Tracer"}, names(got))
}

func TestDeclaredTypeExcluded(t *testing.T) {
	t.Parallel()

	w := buildWorld(t, diamond, "Record")

	got := Admissible(w.graph, w.calls(t, "ID"))

	assert.NotContains(t, names(got), "Record", "the declared type trivially satisfies all requirements")
}

func TestIdempotence(t *testing.T) {
	t.Parallel()

	w := buildWorld(t, diamond, "Record")
	calls := w.calls(t, "ID")

	assert.Equal(t, Admissible(w.graph, calls), Admissible(w.graph, calls))
}

// TestNoFalsePositives reconstructs the requirement set for every returned
// candidate and checks membership exhaustively.
func TestNoFalsePositives(t *testing.T) {
	t.Parallel()

	fixtures := []struct {
		name    string
		src     string
		root    string
		methods []string
	}{
		{"animals", animals, "Dog", []string{"Eat"}},
		{"diamond", diamond, "Record", []string{"ID", "Reload"}},
		{"overlapping", overlapping, "Instrumented", []string{"Log"}},
	}

	for _, tt := range fixtures {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := buildWorld(t, tt.src, tt.root)
			calls := w.calls(t, tt.methods...)

			for _, c := range Admissible(w.graph, calls) {
				members := w.graph.Members(c.Type)

				for _, call := range calls {
					ok := slices.ContainsFunc(members, func(m *types.Func) bool {
						return m == call.Callee ||
							m.Name() == call.Callee.Name() && types.Identical(m.Type(), call.Callee.Type())
					})
					require.True(t, ok, "%s lacks %s", c.Type, call.Callee.Name())
				}
			}
		})
	}
}

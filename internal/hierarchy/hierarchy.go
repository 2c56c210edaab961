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

// Package hierarchy models the declared ancestry of named Go types.
//
// The ancestry of a named type is the transitive closure of its embedded
// types: embedded interfaces for an interface type, embedded fields for a
// struct type. This is the only declared type hierarchy Go has. The closure
// is a finite DAG; diamonds through shared embedded interfaces are common.
package hierarchy

import "go/types"

// Graph holds the ancestry of one declared type, with memoized per-node data
// shared across satisfiability and ranking queries.
type Graph struct {
	root *types.Named

	// ancestry lists all reachable bases excluding the root, in BFS order.
	ancestry []*types.Named

	// bases maps every node of the graph to its direct bases.
	bases map[*types.Named][]*types.Named

	// depths memoizes inheritance depth per node, see [Graph.Depth].
	depths map[*types.Named]int

	// members memoizes flattened member sets per node, see [Graph.Members].
	members map[*types.Named][]*types.Func

	// contracts memoizes interface contracts per member, see [Graph.Contracts].
	contracts map[*types.Func][]*types.Func
}

// New builds the ancestry graph rooted at the declared type.
//
// maxAncestry caps the closure size; a negative value means unlimited.
// New returns nil when the root has no embedded bases or the cap is
// exceeded; in both cases no replacement type can be suggested.
func New(root *types.Named, maxAncestry int) *Graph {
	rootBases := directBases(root)
	if len(rootBases) == 0 {
		return nil
	}

	g := &Graph{
		root:      root,
		bases:     map[*types.Named][]*types.Named{root: rootBases},
		depths:    make(map[*types.Named]int),
		members:   make(map[*types.Named][]*types.Func),
		contracts: make(map[*types.Func][]*types.Func),
	}

	// Breadth-first closure over direct bases. The root may reappear through
	// an embedding cycle in ill-formed code; the seen set keeps it out.
	seen := map[*types.Named]bool{root: true}
	queue := rootBases

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		if seen[n] {
			continue
		}
		seen[n] = true

		g.ancestry = append(g.ancestry, n)
		if maxAncestry >= 0 && len(g.ancestry) > maxAncestry {
			return nil
		}

		nb := directBases(n)
		g.bases[n] = nb
		queue = append(queue, nb...)
	}

	return g
}

// Root returns the declared type the graph is rooted at.
func (g *Graph) Root() *types.Named {
	return g.root
}

// Ancestry returns all types reachable from the root through embedded bases,
// excluding the root itself.
func (g *Graph) Ancestry() []*types.Named {
	return g.ancestry
}

// directBases returns the declared direct bases of a named type:
// embedded interfaces for interface types, embedded fields for struct types.
func directBases(n *types.Named) []*types.Named {
	switch u := n.Underlying().(type) {
	case *types.Interface:
		bases := make([]*types.Named, 0, u.NumEmbeddeds())
		for i := range u.NumEmbeddeds() {
			// Union terms of constraint interfaces have no named base.
			if b := NamedOf(u.EmbeddedType(i)); b != nil {
				bases = append(bases, b)
			}
		}

		return bases

	case *types.Struct:
		var bases []*types.Named

		for i := range u.NumFields() {
			f := u.Field(i)
			if !f.Embedded() {
				continue
			}

			if b := NamedOf(f.Type()); b != nil {
				bases = append(bases, b)
			}
		}

		return bases
	}

	return nil
}

// NamedOf unwraps aliases and at most one level of pointer indirection and
// returns the underlying named type, or nil if there is none.
func NamedOf(t types.Type) *types.Named {
	if p, ok := types.Unalias(t).(*types.Pointer); ok {
		t = p.Elem()
	}

	n, _ := types.Unalias(t).(*types.Named)

	return n
}

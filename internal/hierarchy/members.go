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

package hierarchy

import (
	"go/types"
	"slices"
)

// Members returns the flattened member set of a type in the graph.
//
// For interface types these are all interface methods including inherited
// ones; for concrete types the method set through a pointer receiver,
// including promoted methods. Promoted and embedded-interface methods keep
// their original declaring *[types.Func] object, so object identity expresses
// "same underlying declaration" across the graph.
func (g *Graph) Members(n *types.Named) []*types.Func {
	if ms, ok := g.members[n]; ok {
		return ms
	}

	ms := flattenMembers(n)
	g.members[n] = ms

	return ms
}

func flattenMembers(n *types.Named) []*types.Func {
	if iface, ok := n.Underlying().(*types.Interface); ok {
		ms := make([]*types.Func, 0, iface.NumMethods())
		for i := range iface.NumMethods() {
			ms = append(ms, iface.Method(i))
		}

		return ms
	}

	mset := types.NewMethodSet(types.NewPointer(n))

	ms := make([]*types.Func, 0, mset.Len())

	for i := range mset.Len() {
		if f, ok := mset.At(i).Obj().(*types.Func); ok {
			ms = append(ms, f)
		}
	}

	return ms
}

// Contracts returns the interface methods in the graph declaring the same
// contract as m: the same name with an identical signature, on any interface
// type of the graph including the root. An empty result means m is matched by
// declaration identity only.
//
// With overlapping interfaces two distinct method objects can describe the
// same contract; Contracts is what lets a call bound to one of them be
// satisfied by a type that only carries the other.
func (g *Graph) Contracts(m *types.Func) []*types.Func {
	if cs, ok := g.contracts[m]; ok {
		return cs
	}

	var cs []*types.Func

	for _, n := range g.interfaces() {
		for _, im := range g.Members(n) {
			if im.Name() != m.Name() || !types.Identical(im.Type(), m.Type()) {
				continue
			}

			// Inherited methods reappear flattened in every embedding interface.
			if !slices.Contains(cs, im) {
				cs = append(cs, im)
			}
		}
	}

	g.contracts[m] = cs

	return cs
}

// interfaces returns the interface types of the graph, root included.
func (g *Graph) interfaces() []*types.Named {
	var ifaces []*types.Named

	if types.IsInterface(g.root) {
		ifaces = append(ifaces, g.root)
	}

	for _, n := range g.ancestry {
		if types.IsInterface(n) {
			ifaces = append(ifaces, n)
		}
	}

	return ifaces
}

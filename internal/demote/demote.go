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

// Package demote decides which ancestor types can replace a parameter's
// declared type without breaking any method call the body performs through it.
//
// A candidate from the declared type's embedding ancestry is admissible when
// its member set carries every invoked member, where "carries" follows
// interface-implementation identity: a call bound to an interface contract is
// matched by any member declaring the same contract, while a call bound to a
// plain method requires the exact declaring object. Admissible candidates are
// ranked most general first. Every degenerate input resolves to an empty
// result; uncertainty resolves to silence.
package demote

import (
	"go/types"
	"slices"
	"strings"

	"fillmore-labs.com/generalize/internal/hierarchy"
	"fillmore-labs.com/generalize/internal/usage"
)

// Candidate is an admissible replacement type for a parameter.
type Candidate struct {
	// Type is the ancestor type supporting every recorded invocation.
	Type *types.Named

	// Depth is the type's inheritance depth. Candidates are ordered by it
	// ascending, so the most general type comes first.
	Depth int
}

// Admissible returns the ancestor types of the graph's root that expose every
// member invoked through the parameter, ordered most general first. The
// declared type itself is never returned; an empty result means no demotion
// is possible.
//
// Admissible is a pure function of its inputs and may be called concurrently
// on independent graphs.
func Admissible(g *hierarchy.Graph, calls []usage.Invocation) []Candidate {
	if g == nil {
		return nil
	}

	needed := neededMembers(calls)
	if len(needed) == 0 {
		// Without recorded usage every ancestor would pass vacuously.
		return nil
	}

	var candidates []Candidate

	for _, c := range g.Ancestry() {
		if !satisfiesMemberRequests(g, c, needed) {
			continue
		}

		candidates = append(candidates, Candidate{Type: c, Depth: g.Depth(c)})
	}

	slices.SortFunc(candidates, compareCandidates)

	return candidates
}

// neededMembers collapses the invocation list into the distinct set of
// invoked members. Only which members are needed matters, not call counts.
func neededMembers(calls []usage.Invocation) []*types.Func {
	var needed []*types.Func

	for _, call := range calls {
		if !slices.Contains(needed, call.Callee) {
			needed = append(needed, call.Callee)
		}
	}

	return needed
}

// satisfiesMemberRequests reports whether a candidate exposes every needed
// member. Satisfiability is all-or-nothing; a single missing member rejects
// the candidate.
func satisfiesMemberRequests(g *hierarchy.Graph, c *types.Named, needed []*types.Func) bool {
	for _, m := range needed {
		if !hasCommonMemberDeclaration(g, c, m) {
			return false
		}
	}

	return true
}

// hasCommonMemberDeclaration reports whether the candidate's member set
// contains a member sharing a declaration with m.
//
// When m implements one or more interface contracts of the graph, any member
// whose own contract set intersects m's qualifies, so an interface-dispatched
// call can be matched by a different declaration of the same contract.
// Otherwise m's exact declaring object must appear in the
// candidate's member set; there is deliberately no signature-based widening
// for contract-free members.
func hasCommonMemberDeclaration(g *hierarchy.Graph, c *types.Named, m *types.Func) bool {
	contracts := g.Contracts(m)

	for _, cm := range g.Members(c) {
		if len(contracts) == 0 {
			if cm == m {
				return true
			}

			continue
		}

		if intersects(g.Contracts(cm), contracts) {
			return true
		}
	}

	return false
}

// intersects checks two contract sets for a common member declaration.
func intersects(a, b []*types.Func) bool {
	for _, f := range a {
		if slices.Contains(b, f) {
			return true
		}
	}

	return false
}

// compareCandidates orders by depth ascending (most general first), with
// deterministic name and package tie-breaks.
func compareCandidates(a, b Candidate) int {
	if a.Depth != b.Depth {
		return a.Depth - b.Depth
	}

	ao, bo := a.Type.Obj(), b.Type.Obj()
	if c := strings.Compare(ao.Name(), bo.Name()); c != 0 {
		return c
	}

	return strings.Compare(pkgPath(ao), pkgPath(bo))
}

// pkgPath tolerates universe-scoped types like error, which have no package.
func pkgPath(o *types.TypeName) string {
	if p := o.Pkg(); p != nil {
		return p.Path()
	}

	return ""
}

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

import "go/types"

// Depth returns the inheritance depth of a type in the graph: 0 for a type
// without embedded bases, otherwise one more than the deepest direct base.
//
// Depth is memoized per graph. The ancestry is a DAG, and naive recursion
// revisits shared bases exponentially on diamond-shaped hierarchies.
func (g *Graph) Depth(n *types.Named) int {
	if d, ok := g.depths[n]; ok {
		return d
	}

	depth := 0

	for _, b := range g.bases[n] {
		if d := g.Depth(b) + 1; d > depth {
			depth = d
		}
	}

	g.depths[n] = depth

	return depth
}

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
	"go/types"
	"iter"
	"maps"
)

// Invocation records one method call dispatched through a parameter variable.
type Invocation struct {
	// Param is the parameter variable the call dispatches through.
	Param *types.Var

	// Callee is the invoked method.
	Callee *types.Func
}

// Result maps parameter variables to the calls observed through them.
// Absence of a key means no constraining usage was recorded for that
// parameter, which downstream means "no suggestion".
type Result struct {
	invocations map[*types.Var][]Invocation
}

// HasInvocations checks whether any invocations were recorded at all.
func (r Result) HasInvocations() bool {
	return len(r.invocations) > 0
}

// Invocations returns the calls recorded for a parameter, in source order.
func (r Result) Invocations(v *types.Var) []Invocation {
	return r.invocations[v]
}

// AllInvocations returns an iterator over all parameters with recorded calls.
func (r Result) AllInvocations() iter.Seq2[*types.Var, []Invocation] {
	return maps.All(r.invocations)
}

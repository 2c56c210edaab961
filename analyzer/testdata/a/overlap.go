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

package a

type Logger interface {
	Log(msg string)
}

// Tracer declares the same contract as Logger in a distinct declaration.
type Tracer interface {
	Log(msg string)
}

// Instrumented embeds overlapping interfaces.
type Instrumented interface {
	Logger
	Tracer
	Flush()
}

// Both Logger and Tracer carry the Log contract; the tie at depth 0 breaks
// alphabetically and Tracer remains as a related candidate.
func emit(i Instrumented) { // want `Parameter 'i' can be declared as more general type 'Logger'`
	i.Log("emit")
}

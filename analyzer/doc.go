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

// Package analyzer implements the generalize static analysis pass.
//
// # Overview
//
// Generalize detects function and method parameters declared with a type more
// specific than their usage requires, and suggests the most general type from
// the parameter type's declared ancestry (its transitively embedded types)
// that still supports every method the body calls on the parameter.
//
// # Example
//
// Before:
//
//	type Animal struct{}
//
//	func (Animal) Eat() {}
//
//	type Dog struct{ Animal }
//
//	func (Dog) Bark() {}
//
//	func feed(d Dog) { // d only needs Animal
//	    d.Eat()
//	}
//
// After applying generalize's suggested fix:
//
//	func feed(d Animal) {
//	    d.Eat()
//	}
//
// The same applies to interface parameters: a parameter declared as a wide
// interface (say io.ReadWriteCloser) whose body only calls Read is flagged
// with the embedded io.Reader as the suggested replacement.
//
// # Scope of the analysis
//
// Candidates come only from the declared embedding ancestry; generalize never
// synthesizes new interface types. A parameter used in any position other
// than a method-call receiver is left alone, since such usage can pin the
// declared type in ways method-set reasoning does not cover. Every uncertain
// case resolves to "no diagnostic" rather than a possibly wrong suggestion.
package analyzer

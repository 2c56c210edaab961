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

package capped

type Animal struct{}

func (Animal) Eat() {}

type Dog struct {
	Animal
}

// The ancestry cap disables the analysis wholesale; with max-ancestry 0 even
// a single ancestor exceeds the cap and no suggestion may be produced.
func feed(d Dog) {
	d.Eat()
}

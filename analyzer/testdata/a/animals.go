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

type Animal struct{}

func (Animal) Eat() {}

type Barker interface {
	Bark()
}

type Dog struct {
	Animal
}

func (Dog) Bark() {}

// Only Animal's method is used.
func feed(d Dog) { // want `Parameter 'd' can be declared as more general type 'Animal'`
	d.Eat()
	d.Eat()
}

// Bark is Dog's own; no ancestor carries both members.
func play(d Dog) {
	d.Eat()
	d.Bark()
}

// The parameter escapes as a call argument, so no suggestion is made.
func board(d Dog) {
	d.Eat()
	kennel(d)
}

func kennel(Dog) {}

// No usage is recorded, so no ancestor can pass vacuously.
func observe(d Dog) {
	_ = 1
}

// Pointer parameters generalize through the element type.
func walk(d *Dog) { // want `Parameter 'd' can be declared as more general type '\*Animal'`
	d.Eat()
}

// Calls inside function literals still constrain the outer parameter.
func defer1(d Dog) { // want `Parameter 'd' can be declared as more general type 'Animal'`
	defer func() {
		d.Eat()
	}()
}

// Exported signatures are left alone by default.
func Feed(d Dog) {
	d.Eat()
}

func quiet(d Dog) { //nolint:generalize
	d.Eat()
}

//nolint:generalize
func hushed(d Dog) {
	d.Eat()
}

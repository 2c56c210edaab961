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

// Record closes a diamond over Entity.
type Record interface {
	Reloader
	Persister
}

// Entity wins over Reloader and Persister, being the most general type that
// still carries ID.
func describe(r Record) { // want `Parameter 'r' can be declared as more general type 'Entity'`
	_ = r.ID()
}

// Reload is only declared on Reloader; Entity and Persister drop out.
func refresh(r Record) { // want `Parameter 'r' can be declared as more general type 'Reloader'`
	r.Reload()
	_ = r.ID()
}

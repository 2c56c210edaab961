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

import "io"

type Source interface {
	Read(p []byte) (n int, err error)
}

type Sink interface {
	Write(p []byte) (n int, err error)
}

type Pipe interface {
	Source
	Sink
}

// Only the Source half of the pipe is exercised.
func drain(p Pipe) { // want `Parameter 'p' can be declared as more general type 'Source'`
	var buf [16]byte

	p.Read(buf[:])
}

// Both halves are exercised; neither embedded interface suffices.
func relay(p Pipe) {
	var buf [16]byte

	p.Read(buf[:])
	p.Write(buf[:])
}

// Interfaces from other packages work the same way.
func consume(rc io.ReadCloser) { // want `Parameter 'rc' can be declared as more general type 'io.Reader'`
	rc.Read(nil)
}

// A method value is not a call through the receiver; the parameter escapes.
func methodValue(p Pipe) {
	f := p.Read
	f(nil)
}

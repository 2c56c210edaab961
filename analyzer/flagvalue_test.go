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

package analyzer_test

import (
	"flag"
	"testing"

	. "fillmore-labs.com/generalize/analyzer"
)

func TestFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		flag string
		want string
	}{
		{
			name: "EnableGenerated",
			args: []string{"-generated"},
			flag: "generated",
			want: "true",
		},
		{
			name: "DisableFixes",
			args: []string{"-fixes=off"},
			flag: "fixes",
			want: "false",
		},
		{
			name: "DefaultExported",
			args: nil,
			flag: "exported",
			want: "false",
		},
		{
			name: "MaxAncestry",
			args: []string{"-max-ancestry", "16"},
			flag: "max-ancestry",
			want: "16",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := New()
			a.Flags.Init("test", flag.ContinueOnError)

			if err := a.Flags.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			f := a.Flags.Lookup(tt.flag)
			if f == nil {
				t.Fatalf("Flag %q not registered", tt.flag)
			}

			if got := f.Value.String(); got != tt.want {
				t.Errorf("Flag %q = %q, want %q", tt.flag, got, tt.want)
			}
		})
	}
}

func TestBadBoolValue(t *testing.T) {
	t.Parallel()

	a := New()
	a.Flags.Init("test", flag.ContinueOnError)
	a.Flags.SetOutput(discard{})

	if err := a.Flags.Parse([]string{"-generated=maybe"}); err == nil {
		t.Error("Expected an error for a malformed boolean value")
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

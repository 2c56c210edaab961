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

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File represents the optional yaml settings file loaded via the -config flag.
// Nil fields leave the corresponding option untouched.
type File struct {
	// Generated enables analysis of generated files.
	Generated *bool `yaml:"generated"`
	// Fixes enables suggested fixes.
	Fixes *bool `yaml:"fixes"`
	// Exported enables diagnostics on exported functions and methods.
	Exported *bool `yaml:"exported"`
	// MaxAncestry caps the ancestry size per analyzed parameter.
	MaxAncestry *int `yaml:"max-ancestry"`
}

// LoadFile reads and decodes a yaml settings file.
// Unknown keys are rejected to catch typos in option names.
func LoadFile(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("read settings: %w", err)
	}
	defer f.Close() // ignore error, read-only

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var settings File
	if err := dec.Decode(&settings); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("decode settings %s: %w", path, err)
	}

	return settings, nil
}

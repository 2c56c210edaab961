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

package report

import (
	"go/ast"
	"go/types"
	"strconv"
)

// renderType renders the replacement type annotation for a suggested fix.
//
// The type must be expressible with the file as-is: declared in the analyzed
// package, universe-scoped (error), or exported from a package the file
// already imports. Adding imports is not attempted; an unrenderable type
// still produces a diagnostic, just without a fix.
func renderType(file *ast.File, pkg *types.Package, target *types.Named, pointer bool) ([]byte, bool) {
	obj := target.Obj()

	qualifier, ok := packageQualifier(file, pkg, obj.Pkg())
	if !ok {
		return nil, false
	}

	var buf []byte

	if pointer {
		buf = append(buf, '*')
	}

	if qualifier != "" {
		buf = append(buf, qualifier...)
		buf = append(buf, '.')
	}

	buf = append(buf, obj.Name()...)

	return buf, true
}

// packageQualifier determines how the target's package is referenced in the
// file: empty for same-package and universe types, the import's local name
// otherwise. Returns ok=false for unimported packages and blank imports.
func packageQualifier(file *ast.File, pkg, targetPkg *types.Package) (string, bool) {
	if targetPkg == nil || targetPkg == pkg {
		return "", true
	}

	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil || path != targetPkg.Path() {
			continue
		}

		if spec.Name == nil {
			return targetPkg.Name(), true
		}

		switch spec.Name.Name {
		case "_":
			return "", false
		case ".":
			return "", true
		default:
			return spec.Name.Name, true
		}
	}

	return "", false
}

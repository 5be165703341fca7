// Copyright 2026 The chainlint authors. All Rights Reserved.
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

// Package fallback matches accesses on an empty-object fallback,
// `(x || {}).prop` and `(x ?? {}).prop`, which read a property that can only
// ever come from x. The chaining operator says the same thing without the
// throwaway literal.
package fallback

import "github.com/chainlint/chainlint/ast"

// Match is one detected fallback access.
type Match struct {
	// Access is the member or index node whose object is the fallback. Its
	// extent is the range the rewrite replaces.
	Access *ast.Node

	// Retained is the non-literal side of the fallback, kept verbatim in the
	// rewrite. It may need parenthesizing; see the renderer.
	Retained *ast.Node
}

// Detect reports whether n is a property or element access on an
// empty-object fallback. Nested fallbacks inside the retained expression are
// not folded in; each one is its own match, found by the caller's traversal.
func Detect(n *ast.Node) (Match, bool) {
	if n.Kind != ast.KindMember && n.Kind != ast.KindIndex {
		return Match{}, false
	}

	obj := ast.Unparen(n.Object)
	if obj == nil || obj.Kind != ast.KindLogical {
		return Match{}, false
	}

	if obj.Op != ast.OpLogicalOr && obj.Op != ast.OpNullish {
		return Match{}, false
	}

	if !isEmptyObject(obj.Right) {
		return Match{}, false
	}

	return Match{Access: n, Retained: obj.Left}, true
}

func isEmptyObject(n *ast.Node) bool {
	n = ast.Unparen(n)

	return n != nil && n.Kind == ast.KindObject && len(n.Args) == 0
}

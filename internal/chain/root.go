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

package chain

import (
	"github.com/chainlint/chainlint/ast"
	"github.com/chainlint/chainlint/internal/operand"
)

// ValidRoot reports whether a guard subject may seed a chain. `this` alone
// never seeds a chain (it cannot be null), and the subject's access spine
// must consist of simple steps: no non-null assertions and no complex element
// keys. A parenthesized subexpression is opaque and acceptable as the base of
// the spine.
func ValidRoot(n *ast.Node) bool {
	if n == nil || ast.Unparen(n).Kind == ast.KindThis {
		return false
	}

	return validSpine(n)
}

func validSpine(n *ast.Node) bool {
	if n == nil {
		return false
	}

	switch n.Kind {
	case ast.KindIdent:
		return true

	case ast.KindThis:
		return true

	case ast.KindParen:
		return true

	case ast.KindMember:
		return validSpine(n.Object)

	case ast.KindIndex:
		return operand.SimpleKey(n.Key) && validSpine(n.Object)

	case ast.KindCall:
		return validSpine(n.Object)

	default:
		return false
	}
}

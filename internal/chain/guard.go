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

// Package chain scans the operand runs of `&&` and `||` expressions for
// sequences of guards that protect deeper and deeper accesses on one subject,
// the shape the chaining operator expresses directly.
package chain

import "github.com/chainlint/chainlint/ast"

// GuardStyle records how an operand tested its subject.
type GuardStyle uint8

const (
	// GuardTruthy is a plain truthiness test: `x` in an `&&` run, `!x` in an
	// `||` run.
	GuardTruthy GuardStyle = iota

	// GuardNullish is an explicit comparison against null or undefined.
	GuardNullish
)

// classifyAnd extracts the guarded subject of one operand of an `&&` run.
// Every operand is acceptable: a nullish inequality yields its compared
// subject, anything else guards its own truthiness. The subject keeps its
// parentheses so an opaque parenthesized root survives into the rewrite.
func classifyAnd(op *ast.Node) (*ast.Node, GuardStyle) {
	inner := ast.Unparen(op)

	if inner.Kind == ast.KindBinary && (inner.Op == ast.OpLooseNe || inner.Op == ast.OpStrictNe) {
		if subject, ok := nullishComparison(inner); ok {
			return subject, GuardNullish
		}
	}

	return op, GuardTruthy
}

// classifyOr extracts the guarded subject of one operand of an `||` run.
// Only the negated forms count: `!x`, or an equality comparison against null
// or undefined. Other operands report no subject.
func classifyOr(op *ast.Node) (*ast.Node, GuardStyle, bool) {
	inner := ast.Unparen(op)

	switch inner.Kind {
	case ast.KindUnary:
		if inner.Op == ast.OpNot {
			return inner.Operand, GuardTruthy, true
		}

	case ast.KindBinary:
		if inner.Op == ast.OpLooseEq || inner.Op == ast.OpStrictEq {
			if subject, ok := nullishComparison(inner); ok {
				return subject, GuardNullish, true
			}
		}
	}

	return nil, GuardTruthy, false
}

// nullishComparison returns the non-nullish side of a comparison where the
// other side is `null` or `undefined`. Both operand orders are accepted.
func nullishComparison(b *ast.Node) (*ast.Node, bool) {
	if isNullish(b.Right) {
		return b.Left, true
	}

	if isNullish(b.Left) {
		return b.Right, true
	}

	return nil, false
}

func isNullish(n *ast.Node) bool {
	n = ast.Unparen(n)
	if n == nil {
		return false
	}

	switch n.Kind {
	case ast.KindLiteral:
		return n.Lit == ast.LitNull
	case ast.KindIdent:
		return n.Name == "undefined"
	default:
		return false
	}
}

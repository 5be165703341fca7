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

// Package render builds the replacement text for a detected pattern. Every
// piece of the replacement that existed in the input is copied byte-for-byte
// from the original source, so comments, string contents and key expressions
// survive the rewrite untouched.
package render

import (
	"strings"

	"github.com/chainlint/chainlint/ast"
	"github.com/chainlint/chainlint/internal/chain"
	"github.com/chainlint/chainlint/internal/fallback"
	"github.com/chainlint/chainlint/internal/operand"
)

// Chain renders a guard run as a single chained access. Guarded links use the
// chaining separator; unguarded links keep whatever separator the source
// used.
func Chain(src *ast.Source, c chain.Chain) string {
	var b strings.Builder

	if c.Negated {
		b.WriteByte('!')
	}

	b.WriteString(src.Text(c.Root))

	for _, l := range c.Links {
		optional := l.Guarded || l.Optional

		switch l.Kind {
		case operand.Property:
			if optional {
				b.WriteString("?.")
			} else {
				b.WriteByte('.')
			}

			b.WriteString(src.Slice(l.Node.NamePos, l.Node.End))

		case operand.Element:
			if optional {
				b.WriteString("?.")
			}

			b.WriteString(src.Slice(l.Node.LBrack, l.Node.RBrack+1))

		case operand.Call:
			if optional {
				b.WriteString("?.")
			}

			b.WriteString(src.Slice(l.Node.LParen, l.Node.RParen+1))
		}
	}

	return b.String()
}

// Fallback renders an empty-object fallback access as an optional access on
// the retained expression. Parentheses around the retained expression are
// dropped when it stands alone, and added when it would not bind as the base
// of an access.
func Fallback(src *ast.Source, m fallback.Match) string {
	var b strings.Builder

	retained := ast.Unparen(m.Retained)
	text := src.Text(retained)

	if NeedsParens(retained) {
		b.WriteByte('(')
		b.WriteString(text)
		b.WriteByte(')')
	} else {
		b.WriteString(text)
	}

	b.WriteString("?.")

	switch m.Access.Kind {
	case ast.KindMember:
		b.WriteString(src.Slice(m.Access.NamePos, m.Access.End))

	case ast.KindIndex:
		b.WriteString(src.Slice(m.Access.LBrack, m.Access.RBrack+1))
	}

	return b.String()
}

// NeedsParens reports whether n must be parenthesized to serve as the base of
// an access. Plain accesses, identifiers and most literals bind tightly
// already; number literals would read the dot as a decimal point, and
// anything looser than a postfix expression changes meaning unwrapped.
func NeedsParens(n *ast.Node) bool {
	if n == nil {
		return false
	}

	switch n.Kind {
	case ast.KindIdent, ast.KindThis, ast.KindMember, ast.KindIndex,
		ast.KindCall, ast.KindNonNull, ast.KindTemplate, ast.KindArray,
		ast.KindParen:
		return false

	case ast.KindLiteral:
		return n.Lit == ast.LitNumber

	default:
		return true
	}
}

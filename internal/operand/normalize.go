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

// Package operand decides whether two guard subjects refer to the same value.
//
// Equality is structural, computed over a canonical fully parenthesized text
// form: parentheses are transparent, `?.` and `.` separators are equivalent,
// and whitespace and comments never matter. Kinds the canonical form does not
// model fall back to their source text with trivia stripped, so unequal
// constructs stay unequal rather than accidentally colliding.
package operand

import (
	"strings"

	"github.com/chainlint/chainlint/ast"
)

// Normalize returns the canonical form of n. Two expressions are treated as
// the same subject exactly when their canonical forms are equal.
func Normalize(src *ast.Source, n *ast.Node) string {
	var b strings.Builder
	normalize(&b, src, n)

	return b.String()
}

func normalize(b *strings.Builder, src *ast.Source, n *ast.Node) {
	if n == nil {
		b.WriteString("<nil>")

		return
	}

	switch n.Kind {
	case ast.KindParen:
		normalize(b, src, n.Operand)

	case ast.KindIdent:
		b.WriteString(n.Name)

	case ast.KindThis:
		b.WriteString("this")

	case ast.KindLiteral:
		// A literal is a single token, there is no trivia inside it.
		b.WriteString(src.Text(n))

	case ast.KindMember:
		normalize(b, src, n.Object)
		b.WriteByte('.')
		b.WriteString(n.Name)

	case ast.KindIndex:
		normalize(b, src, n.Object)
		b.WriteByte('[')
		normalize(b, src, n.Key)
		b.WriteByte(']')

	case ast.KindCall:
		normalize(b, src, n.Object)
		normalizeList(b, src, n.Args)

	case ast.KindNew:
		b.WriteString("new ")
		normalize(b, src, n.Object)
		normalizeList(b, src, n.Args)

	case ast.KindUnary:
		b.WriteString(n.Op.Text())
		b.WriteByte('(')
		normalize(b, src, n.Operand)
		b.WriteByte(')')

	case ast.KindUpdate:
		if n.Prefix {
			b.WriteString(n.Op.Text())
		}

		b.WriteByte('(')
		normalize(b, src, n.Operand)
		b.WriteByte(')')

		if !n.Prefix {
			b.WriteString(n.Op.Text())
		}

	case ast.KindAwait:
		b.WriteString("await(")
		normalize(b, src, n.Operand)
		b.WriteByte(')')

	case ast.KindNonNull:
		b.WriteByte('(')
		normalize(b, src, n.Operand)
		b.WriteString(")!")

	case ast.KindCast:
		b.WriteByte('(')
		normalize(b, src, n.Operand)
		b.WriteString(" as ")
		b.WriteString(n.Name)
		b.WriteByte(')')

	case ast.KindSpread:
		b.WriteString("...(")
		normalize(b, src, n.Operand)
		b.WriteByte(')')

	case ast.KindBinary, ast.KindLogical, ast.KindAssign:
		b.WriteByte('(')
		normalize(b, src, n.Left)
		b.WriteString(n.Op.Text())
		normalize(b, src, n.Right)
		b.WriteByte(')')

	case ast.KindConditional:
		b.WriteByte('(')
		normalize(b, src, n.Test)
		b.WriteByte('?')
		normalize(b, src, n.Then)
		b.WriteByte(':')
		normalize(b, src, n.Else)
		b.WriteByte(')')

	case ast.KindSequence:
		b.WriteByte('(')

		for i, c := range n.Args {
			if i > 0 {
				b.WriteByte(',')
			}

			normalize(b, src, c)
		}

		b.WriteByte(')')

	default:
		// KindObject, KindArray, KindTemplate, KindFunction, KindOther:
		// compare by source text with comments and whitespace runs removed.
		b.WriteString(compactCode(src.Text(n)))
	}
}

func normalizeList(b *strings.Builder, src *ast.Source, args []*ast.Node) {
	b.WriteByte('(')

	for i, a := range args {
		if i > 0 {
			b.WriteByte(',')
		}

		normalize(b, src, a)
	}

	b.WriteByte(')')
}

// compactCode collapses whitespace runs outside string and template literals
// to a single space and drops comments entirely, leaving quoted contents
// untouched.
func compactCode(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	const (
		code = iota
		lineComment
		blockComment
		single
		double
		backtick
	)

	state := code
	space := false

	for i := 0; i < len(text); i++ {
		c := text[i]

		switch state {
		case code:
			switch {
			case c == ' ' || c == '\t' || c == '\n' || c == '\r':
				space = true

				continue

			case c == '/' && i+1 < len(text) && text[i+1] == '/':
				state = lineComment
				i++

				continue

			case c == '/' && i+1 < len(text) && text[i+1] == '*':
				state = blockComment
				i++

				continue
			}

			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}

			space = false

			switch c {
			case '\'':
				state = single
			case '"':
				state = double
			case '`':
				state = backtick
			}

			b.WriteByte(c)

		case lineComment:
			if c == '\n' {
				state = code
				space = true
			}

		case blockComment:
			if c == '*' && i+1 < len(text) && text[i+1] == '/' {
				state = code
				space = true
				i++
			}

		case single, double, backtick:
			b.WriteByte(c)

			if c == '\\' && i+1 < len(text) {
				b.WriteByte(text[i+1])
				i++

				continue
			}

			switch {
			case state == single && c == '\'',
				state == double && c == '"',
				state == backtick && c == '`':
				state = code
			}
		}
	}

	return b.String()
}

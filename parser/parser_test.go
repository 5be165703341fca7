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

package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainlint/chainlint/ast"
	"github.com/chainlint/chainlint/parser"
)

func parseExpr(t *testing.T, input string) (*ast.Source, *ast.Node) {
	t.Helper()

	src, expr, err := parser.ParseExpr("test", input)
	require.NoError(t, err)

	return src, expr
}

func TestParseExprKinds(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name  string
		input string
		kind  ast.Kind
	}{
		{"identifier", "foo", ast.KindIdent},
		{"this", "this", ast.KindThis},
		{"null", "null", ast.KindLiteral},
		{"number", "1.5e3", ast.KindLiteral},
		{"string", `'s'`, ast.KindLiteral},
		{"template", "`a ${b} c`", ast.KindTemplate},
		{"array", "[1, 2]", ast.KindArray},
		{"object", "{a: 1}", ast.KindObject},
		{"member", "a.b", ast.KindMember},
		{"index", "a[b]", ast.KindIndex},
		{"call", "f(x)", ast.KindCall},
		{"new", "new F(x)", ast.KindNew},
		{"unary", "!a", ast.KindUnary},
		{"update", "a++", ast.KindUpdate},
		{"binary", "a + b", ast.KindBinary},
		{"logical", "a && b", ast.KindLogical},
		{"nullish", "a ?? b", ast.KindLogical},
		{"conditional", "a ? b : c", ast.KindConditional},
		{"assignment", "a = b", ast.KindAssign},
		{"compound assignment", "a += b", ast.KindAssign},
		{"sequence", "a, b", ast.KindSequence},
		{"arrow", "x => x.y", ast.KindFunction},
		{"async arrow", "async x => x.y", ast.KindFunction},
		{"function literal", "function f() { return 1; }", ast.KindFunction},
		{"await", "await f()", ast.KindAwait},
		{"non-null", "a!", ast.KindNonNull},
		{"cast", "a as string", ast.KindCast},
		{"paren", "(a)", ast.KindParen},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, expr := parseExpr(t, tc.input)
			assert.Equal(t, tc.kind, expr.Kind)
		})
	}
}

func TestParsePrecedence(t *testing.T) {
	t.Parallel()

	t.Run("and binds tighter than or", func(t *testing.T) {
		t.Parallel()

		_, expr := parseExpr(t, "a || b && c")
		require.Equal(t, ast.KindLogical, expr.Kind)
		assert.Equal(t, ast.OpLogicalOr, expr.Op)
		assert.Equal(t, ast.OpLogicalAnd, expr.Right.Op)
	})

	t.Run("equality under and", func(t *testing.T) {
		t.Parallel()

		_, expr := parseExpr(t, "a !== null && a.b")
		require.Equal(t, ast.KindLogical, expr.Kind)
		assert.Equal(t, ast.OpStrictNe, expr.Left.Op)
	})

	t.Run("compound assignments keep their operator", func(t *testing.T) {
		t.Parallel()

		for _, spelling := range []string{"=", "+=", "-=", "**=", ">>>=", "&&=", "||=", "??="} {
			_, expr := parseExpr(t, "a "+spelling+" b")
			require.Equal(t, ast.KindAssign, expr.Kind)
			assert.Equal(t, spelling, expr.Op.Text())
		}
	})

	t.Run("logical runs are left associative", func(t *testing.T) {
		t.Parallel()

		src, expr := parseExpr(t, "a && b && c")
		require.Equal(t, ast.KindLogical, expr.Kind)
		assert.Equal(t, "a && b", src.Text(expr.Left))
	})

	t.Run("exponent is right associative", func(t *testing.T) {
		t.Parallel()

		src, expr := parseExpr(t, "a ** b ** c")
		require.Equal(t, ast.KindBinary, expr.Kind)
		assert.Equal(t, "b ** c", src.Text(expr.Right))
	})

	t.Run("cast binds the access chain", func(t *testing.T) {
		t.Parallel()

		_, expr := parseExpr(t, "a.b as string")
		require.Equal(t, ast.KindCast, expr.Kind)
		assert.Equal(t, "string", expr.Name)
		assert.Equal(t, ast.KindMember, expr.Operand.Kind)
	})
}

func TestParseAccess(t *testing.T) {
	t.Parallel()

	t.Run("member offsets", func(t *testing.T) {
		t.Parallel()

		src, expr := parseExpr(t, "foo . bar")
		require.Equal(t, ast.KindMember, expr.Kind)
		assert.Equal(t, "bar", expr.Name)
		assert.Equal(t, "bar", src.Slice(expr.NamePos, expr.End))
		assert.False(t, expr.Optional)
	})

	t.Run("optional member", func(t *testing.T) {
		t.Parallel()

		_, expr := parseExpr(t, "foo?.bar")
		require.Equal(t, ast.KindMember, expr.Kind)
		assert.True(t, expr.Optional)
	})

	t.Run("keyword property name", func(t *testing.T) {
		t.Parallel()

		_, expr := parseExpr(t, "a.new.for")
		require.Equal(t, ast.KindMember, expr.Kind)
		assert.Equal(t, "for", expr.Name)
	})

	t.Run("index brackets", func(t *testing.T) {
		t.Parallel()

		src, expr := parseExpr(t, "a[ k ]")
		require.Equal(t, ast.KindIndex, expr.Kind)
		assert.Equal(t, "[ k ]", src.Slice(expr.LBrack, expr.RBrack+1))
	})

	t.Run("call parens", func(t *testing.T) {
		t.Parallel()

		src, expr := parseExpr(t, "f(x, y)")
		require.Equal(t, ast.KindCall, expr.Kind)
		assert.Equal(t, "(x, y)", src.Slice(expr.LParen, expr.RParen+1))
		assert.Len(t, expr.Args, 2)
	})

	t.Run("optional call", func(t *testing.T) {
		t.Parallel()

		_, expr := parseExpr(t, "f?.(x)")
		require.Equal(t, ast.KindCall, expr.Kind)
		assert.True(t, expr.Optional)
	})

	t.Run("optional index", func(t *testing.T) {
		t.Parallel()

		_, expr := parseExpr(t, "a?.[k]")
		require.Equal(t, ast.KindIndex, expr.Kind)
		assert.True(t, expr.Optional)
	})
}

func TestParseExprErrors(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"trailing operator", "a &&"},
		{"unbalanced paren", "(a"},
		{"unbalanced bracket", "a[1"},
		{"missing colon", "a ? b"},
		{"trailing input", "a b"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := parser.ParseExpr("test", tc.input)
			assert.Error(t, err)
		})
	}
}

func TestParseProgram(t *testing.T) {
	t.Parallel()

	const input = `
var a = foo && foo.bar;
if (x && x.y) {
	f((a || {}).b);
}
function g() {
	return this.a && this.a.b;
}
for (var i = 0; i < n; i++) items[i].run();
`

	_, prog, err := parser.Parse("test", input)
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 4)

	assert.Equal(t, ast.StmtVar, prog.Stmts[0].Kind)
	assert.Equal(t, ast.StmtIf, prog.Stmts[1].Kind)
	assert.Equal(t, ast.StmtFunc, prog.Stmts[2].Kind)
	assert.Equal(t, ast.StmtFor, prog.Stmts[3].Kind)
}

func TestRoots(t *testing.T) {
	t.Parallel()

	const input = `
a && a.b;
var v = c && c.d;
f(() => { e && e.g; });
`

	src, prog, err := parser.Parse("test", input)
	require.NoError(t, err)

	var roots []string

	ast.Roots(prog, func(n *ast.Node) {
		roots = append(roots, src.Text(n))
	})

	require.Len(t, roots, 4)
	assert.Equal(t, "a && a.b", roots[0])
	assert.Equal(t, "c && c.d", roots[1])
	assert.Equal(t, "f(() => { e && e.g; })", roots[2])

	// The arrow body surfaces after the expression containing the literal.
	assert.Equal(t, "e && e.g", roots[3])
}

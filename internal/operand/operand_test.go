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

package operand_test

import (
	"testing"

	"github.com/chainlint/chainlint/ast"
	. "github.com/chainlint/chainlint/internal/operand"
	"github.com/chainlint/chainlint/parser"
)

func parse(t *testing.T, input string) (*ast.Source, *ast.Node) {
	t.Helper()

	src, expr, err := parser.ParseExpr("test", input)
	if err != nil {
		t.Fatalf("ParseExpr(%q): %v", input, err)
	}

	return src, expr
}

func TestNormalizeEqual(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name string
		a, b string
	}{
		{"whitespace", "foo . bar", "foo.bar"},
		{"comments", "foo/* note */.bar", "foo.bar"},
		{"parens", "((foo)).bar", "foo.bar"},
		{"inner parens", "(foo.bar).baz", "foo.bar.baz"},
		{"optional separator", "foo?.bar", "foo.bar"},
		{"optional call", "foo?.(1)", "foo(1)"},
		{"optional index", "foo?.[k]", "foo[k]"},
		{"call arguments", "f( a , b )", "f(a,b)"},
		{"index key", "a[ k ]", "a[k]"},
		{"this member", "this . x", "this.x"},
		{"unary", "typeof  x", "typeof(x)"},
		{"new expression", "new  Foo( a )", "new Foo(a)"},
		{"compound assignment spacing", "a += b", "a+=b"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srcA, a := parse(t, tc.a)
			srcB, b := parse(t, tc.b)

			na, nb := Normalize(srcA, a), Normalize(srcB, b)
			if na != nb {
				t.Errorf("Normalize(%q) = %q, Normalize(%q) = %q, want equal", tc.a, na, tc.b, nb)
			}
		})
	}
}

func TestNormalizeDistinct(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name string
		a, b string
	}{
		{"different names", "foo.bar", "foo.baz"},
		{"call vs member", "foo.bar", "foo.bar()"},
		{"arguments differ", "f(a)", "f(b)"},
		{"arity differs", "f(a)", "f(a,b)"},
		{"string contents", `x['a b']`, `x['a  b']`},
		{"non-null differs", "a!", "a"},
		{"object values differ", "{a: 1}", "{a: 2}"},
		{"index key differs", "a[i]", "a[j]"},
		{"plain vs compound assignment", "a = b", "a += b"},
		{"compound assignments differ", "a ||= b", "a += b"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srcA, a := parse(t, tc.a)
			srcB, b := parse(t, tc.b)

			na, nb := Normalize(srcA, a), Normalize(srcB, b)
			if na == nb {
				t.Errorf("Normalize(%q) = Normalize(%q) = %q, want distinct", tc.a, tc.b, na)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name      string
		prev      string
		candidate string
		result    Result
		links     int
	}{
		{"duplicate", "foo", "foo", Duplicate, 0},
		{"duplicate with parens", "foo.bar", "(foo.bar)", Duplicate, 0},
		{"property step", "foo", "foo.bar", Extension, 1},
		{"call step", "foo.bar", "foo.bar()", Extension, 1},
		{"element step", "foo", "foo[k]", Extension, 1},
		{"jump", "foo", "foo.bar.baz", Extension, 2},
		{"jump through call", "a", "a.b().c", Extension, 2},
		{"optional step", "foo", "foo?.bar", Extension, 1},
		{"unrelated", "foo", "bar.baz", NoMatch, 0},
		{"shorter than previous", "foo.bar.baz", "foo.bar", NoMatch, 0},
		{"non-null assertion", "foo", "foo!.bar", NoMatch, 0},
		{"complex element key", "foo", "foo[i + 1]", NoMatch, 0},
		{"cast key", "foo", "foo[bar as string]", NoMatch, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srcPrev, prev := parse(t, tc.prev)
			srcCand, cand := parse(t, tc.candidate)

			links, result := Match(srcCand, Normalize(srcPrev, prev), cand)
			if result != tc.result {
				t.Fatalf("Match(%q, %q) = %v, want %v", tc.prev, tc.candidate, result, tc.result)
			}

			if len(links) != tc.links {
				t.Errorf("Match(%q, %q) produced %d links, want %d", tc.prev, tc.candidate, len(links), tc.links)
			}

			if result == Extension && !links[0].Guarded {
				t.Errorf("Match(%q, %q): first link not guarded", tc.prev, tc.candidate)
			}
		})
	}
}

func TestSimpleKey(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name  string
		input string
		want  bool
	}{
		{"identifier", "k", true},
		{"this", "this", true},
		{"dotted", "a.b.c", true},
		{"string literal", `'k'`, true},
		{"number literal", "0", true},
		{"arithmetic", "i + 1", false},
		{"call", "f()", false},
		{"cast", "k as string", false},
		{"optional member", "a?.b", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, key := parse(t, tc.input)
			if got := SimpleKey(key); got != tc.want {
				t.Errorf("SimpleKey(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

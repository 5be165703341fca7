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

package chain_test

import (
	"testing"

	"github.com/chainlint/chainlint/ast"
	. "github.com/chainlint/chainlint/internal/chain"
	"github.com/chainlint/chainlint/parser"
)

// scan parses a logical expression and runs the walker over its top-level
// operand run.
func scan(t *testing.T, input string) (*ast.Source, []Chain) {
	t.Helper()

	src, expr, err := parser.ParseExpr("test", input)
	if err != nil {
		t.Fatalf("ParseExpr(%q): %v", input, err)
	}

	n := ast.Unparen(expr)
	if n.Kind != ast.KindLogical {
		t.Fatalf("ParseExpr(%q) is %v, want a logical expression", input, n.Kind)
	}

	return src, Scan(src, Flatten(n, n.Op), n.Op)
}

func TestScan(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name    string
		input   string
		chains  int
		root    string
		links   int
		guards  int
		jumped  bool
		negated bool
		span    string
	}{
		{
			name:  "single guard",
			input: "foo && foo.bar",
			chains: 1, root: "foo", links: 1, guards: 1,
			span: "foo && foo.bar",
		},
		{
			name:  "three operands",
			input: "foo && foo.bar && foo.bar.baz",
			chains: 1, root: "foo", links: 2, guards: 2,
			span: "foo && foo.bar && foo.bar.baz",
		},
		{
			name:  "jump",
			input: "a && a.b && a.b.c.d",
			chains: 1, root: "a", links: 3, guards: 2, jumped: true,
			span: "a && a.b && a.b.c.d",
		},
		{
			name:  "call link",
			input: "foo.bar && foo.bar()",
			chains: 1, root: "foo.bar", links: 1, guards: 1,
			span: "foo.bar && foo.bar()",
		},
		{
			name:  "element link",
			input: "a && a[k] && a[k].b",
			chains: 1, root: "a", links: 2, guards: 2,
			span: "a && a[k] && a[k].b",
		},
		{
			name:  "duplicate merged",
			input: "a && a && a.b",
			chains: 1, root: "a", links: 1, guards: 1,
			span: "a && a && a.b",
		},
		{
			name:  "trailing unrelated excluded",
			input: "foo && foo.bar && bing",
			chains: 1, root: "foo", links: 1, guards: 1,
			span: "foo && foo.bar",
		},
		{
			name:  "nullish inequality guard",
			input: "foo !== null && foo.bar",
			chains: 1, root: "foo", links: 1, guards: 1,
			span: "foo !== null && foo.bar",
		},
		{
			name:  "reversed comparison",
			input: "null != foo && foo.bar",
			chains: 1, root: "foo", links: 1, guards: 1,
			span: "null != foo && foo.bar",
		},
		{
			name:  "undefined comparison",
			input: "foo !== undefined && foo.bar",
			chains: 1, root: "foo", links: 1, guards: 1,
			span: "foo !== undefined && foo.bar",
		},
		{
			name:  "negated run",
			input: "!foo || !foo.bar",
			chains: 1, root: "foo", links: 1, guards: 1, negated: true,
			span: "!foo || !foo.bar",
		},
		{
			name:  "negated equality run",
			input: "foo == null || foo.bar == null",
			chains: 1, root: "foo", links: 1, guards: 1, negated: true,
			span: "foo == null || foo.bar == null",
		},
		{
			name:   "restart after mismatch",
			input:  "a && a.b && x && x.y",
			chains: 2, root: "a", links: 1, guards: 1,
			span: "a && a.b",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			src, chains := scan(t, tc.input)
			if len(chains) != tc.chains {
				t.Fatalf("Scan(%q) found %d chains, want %d", tc.input, len(chains), tc.chains)
			}

			c := chains[0]

			if got := src.Text(c.Root); got != tc.root {
				t.Errorf("Root = %q, want %q", got, tc.root)
			}

			if len(c.Links) != tc.links {
				t.Errorf("Got %d links, want %d", len(c.Links), tc.links)
			}

			if c.Guards != tc.guards {
				t.Errorf("Guards = %d, want %d", c.Guards, tc.guards)
			}

			if c.Jumped != tc.jumped {
				t.Errorf("Jumped = %v, want %v", c.Jumped, tc.jumped)
			}

			if c.Negated != tc.negated {
				t.Errorf("Negated = %v, want %v", c.Negated, tc.negated)
			}

			if got := src.Slice(c.Start, c.End); got != tc.span {
				t.Errorf("Span = %q, want %q", got, tc.span)
			}
		})
	}
}

func TestScanNothing(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name  string
		input string
	}{
		{"unrelated operands", "a && b"},
		{"boolean noise", "a > 1 && b < 2"},
		{"bare this root", "this && this.foo"},
		{"non-null assertion root", "a! && a!.b"},
		{"complex key in extension", "a && a[i + 1]"},
		{"positive or run", "foo || foo.bar"},
		{"mixed or operands", "!foo || foo.bar"},
		{"shrinking subject", "a.b.c && a.b"},
		{"repeated only", "a && a"},
		{"assignment operators differ", "(a += b) && (a = b).c"},
		{"logical assignment differs", "(a ||= b) && (a = b).c"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, chains := scan(t, tc.input)
			if len(chains) != 0 {
				t.Errorf("Scan(%q) found %d chains, want none", tc.input, len(chains))
			}
		})
	}
}

func TestScanSecondChain(t *testing.T) {
	t.Parallel()

	src, chains := scan(t, "a && a.b && x && x.y")
	if len(chains) != 2 {
		t.Fatalf("Got %d chains, want 2", len(chains))
	}

	second := chains[1]
	if got := src.Slice(second.Start, second.End); got != "x && x.y" {
		t.Errorf("Second span = %q, want %q", got, "x && x.y")
	}
}

func TestValidRoot(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name  string
		input string
		want  bool
	}{
		{"identifier", "foo", true},
		{"member", "foo.bar", true},
		{"call", "foo()", true},
		{"index", "foo[k]", true},
		{"this member", "this.foo", true},
		{"parenthesized", "(foo || bar)", true},
		{"bare this", "this", false},
		{"parenthesized this", "(this)", false},
		{"non-null assertion", "foo!", false},
		{"non-null inside spine", "foo!.bar", false},
		{"complex key", "foo[i + 1]", false},
		{"literal", "1", false},
		{"binary", "a + b", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, expr, err := parser.ParseExpr("test", tc.input)
			if err != nil {
				t.Fatalf("ParseExpr(%q): %v", tc.input, err)
			}

			if got := ValidRoot(expr); got != tc.want {
				t.Errorf("ValidRoot(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

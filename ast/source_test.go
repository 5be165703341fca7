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

package ast_test

import (
	"testing"

	. "github.com/chainlint/chainlint/ast"
)

func TestPosition(t *testing.T) {
	t.Parallel()

	src := NewSource("test", "ab\ncd\n\nef")

	testCases := [...]struct {
		name   string
		offset int
		line   int
		col    int
	}{
		{"start", 0, 1, 1},
		{"line end", 2, 1, 3},
		{"second line", 3, 2, 1},
		{"after empty line", 7, 4, 1},
		{"end of input", 9, 4, 3},
		{"clamped negative", -1, 1, 1},
		{"clamped overflow", 100, 4, 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			line, col := src.Position(tc.offset)
			if line != tc.line || col != tc.col {
				t.Errorf("Position(%d) = %d:%d, want %d:%d", tc.offset, line, col, tc.line, tc.col)
			}
		})
	}
}

func TestSlice(t *testing.T) {
	t.Parallel()

	src := NewSource("test", "abcdef")

	if got := src.Slice(1, 3); got != "bc" {
		t.Errorf("Slice(1, 3) = %q, want %q", got, "bc")
	}

	if got := src.Slice(-2, 100); got != "abcdef" {
		t.Errorf("Slice(-2, 100) = %q, want %q", got, "abcdef")
	}

	if got := src.Slice(4, 2); got != "" {
		t.Errorf("Slice(4, 2) = %q, want empty", got)
	}
}

func TestCompact(t *testing.T) {
	t.Parallel()

	src := NewSource("test", "foo  &&\n\tfoo.bar")
	n := &Node{Kind: KindLogical, Op: OpLogicalAnd, Pos: 0, End: len(src.Content())}

	if got := src.Compact(n); got != "foo && foo.bar" {
		t.Errorf("Compact = %q, want %q", got, "foo && foo.bar")
	}
}

func TestInspectSkipsFunctionBodies(t *testing.T) {
	t.Parallel()

	inner := &Node{Kind: KindIdent, Name: "inner"}
	fn := &Node{
		Kind: KindFunction,
		Body: &Stmt{Kind: StmtBlock, List: []*Stmt{{Kind: StmtExpr, Expr: inner}}},
	}
	call := &Node{Kind: KindCall, Object: &Node{Kind: KindIdent, Name: "f"}, Args: []*Node{fn}}

	var seen []string

	Inspect(call, func(n *Node) bool {
		if n.Kind == KindIdent {
			seen = append(seen, n.Name)
		}

		return true
	})

	if len(seen) != 1 || seen[0] != "f" {
		t.Errorf("Inspect visited %v, want only the callee", seen)
	}
}

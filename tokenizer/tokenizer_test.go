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

package tokenizer_test

import (
	"testing"

	. "github.com/chainlint/chainlint/tokenizer"
)

func types(toks []Token) []Type {
	ts := make([]Type, 0, len(toks))
	for _, t := range toks {
		ts = append(ts, t.Type)
	}

	return ts
}

func equalTypes(got, want []Type) bool {
	if len(got) != len(want) {
		return false
	}

	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}

	return true
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name  string
		input string
		want  []Type
	}{
		{"empty", "", []Type{EOF}},
		{"whitespace only", " \t\n", []Type{EOF}},
		{"identifier", "foo", []Type{Ident, EOF}},
		{"member", "foo.bar", []Type{Ident, Dot, Ident, EOF}},
		{"optional member", "foo?.bar", []Type{Ident, QuestionDot, Ident, EOF}},
		{"optional call", "foo?.()", []Type{Ident, QuestionDot, LParen, RParen, EOF}},
		{"conditional with decimal", "a ? .3 : b", []Type{Ident, Question, Number, Colon, Ident, EOF}},
		{"nullish", "a ?? b", []Type{Ident, QuestionQuestion, Ident, EOF}},
		{"guard chain", "a && a.b", []Type{Ident, AmpAmp, Ident, Dot, Ident, EOF}},
		{"negated guard", "!a || !a.b", []Type{Bang, Ident, PipePipe, Bang, Ident, Dot, Ident, EOF}},
		{"strict equality", "a !== null", []Type{Ident, NotEqEq, Null, EOF}},
		{"loose equality", "a == undefined", []Type{Ident, EqEq, Ident, EOF}},
		{"compound assign", "a ??= b", []Type{Ident, AssignOp, Ident, EOF}},
		{"logical assign", "a &&= b", []Type{Ident, AssignOp, Ident, EOF}},
		{"unsigned shift assign", "a >>>= b", []Type{Ident, AssignOp, Ident, EOF}},
		{"exponent", "a ** b", []Type{Ident, StarStar, Ident, EOF}},
		{"line comment", "a // trailing\n.b", []Type{Ident, Dot, Ident, EOF}},
		{"block comment", "a /* x */ && b", []Type{Ident, AmpAmp, Ident, EOF}},
		{"string", `'a && b'`, []Type{String, EOF}},
		{"template opaque", "`x ${a && b} y`", []Type{Template, EOF}},
		{"nested template", "`x ${`inner ${b}`} y`", []Type{Template, EOF}},
		{"numbers", "0x1f 0b10 1e3 1n .5", []Type{Number, Number, Number, Number, Number, EOF}},
		{"keywords", "this null typeof new", []Type{This, Null, Typeof, New, EOF}},
		{"contextual idents", "undefined as of", []Type{Ident, Ident, Ident, EOF}},
		{"arrow", "x => x.y", []Type{Ident, Arrow, Ident, Dot, Ident, EOF}},
		{"spread", "f(...a)", []Type{Ident, LParen, Ellipsis, Ident, RParen, EOF}},
		{"non-null", "a!.b", []Type{Ident, Bang, Dot, Ident, EOF}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			toks, err := Tokenize(tc.input)
			if err != nil {
				t.Fatalf("Tokenize(%q): %v", tc.input, err)
			}

			if got := types(toks); !equalTypes(got, tc.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestTokenizeOffsets(t *testing.T) {
	t.Parallel()

	const input = "foo && foo.bar"

	toks, err := Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", input, err)
	}

	for _, tok := range toks[:len(toks)-1] {
		if got := input[tok.Pos:tok.End]; got != tok.Text {
			t.Errorf("Token %s has text %q, offsets select %q", tok.Type, tok.Text, got)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name  string
		input string
	}{
		{"unterminated string", `'abc`},
		{"newline in string", "'ab\nc'"},
		{"unterminated template", "`abc ${x}"},
		{"unterminated block comment", "a /* b"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Tokenize(tc.input); err == nil {
				t.Errorf("Tokenize(%q) succeeded, want error", tc.input)
			}
		})
	}
}

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

// Package tokenizer scans script source into tokens with exact byte offsets.
//
// Comments and whitespace are consumed as trivia and never emitted; because
// every token keeps its offsets, any skipped range can still be recovered
// from the original text. Regular expression literals are not recognized; a
// bare `/` always lexes as division.
package tokenizer

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Error is a scan error at a byte offset.
type Error struct {
	Offset int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
}

// Tokenize scans the complete input. The returned slice always ends with an
// EOF token. On a scan error the tokens produced so far are returned together
// with the error.
func Tokenize(input string) ([]Token, error) {
	t := &tokenizer{input: input}

	var toks []Token

	for {
		tok, err := t.next()
		if err != nil {
			return toks, err
		}

		toks = append(toks, tok)
		if tok.Type == EOF {
			return toks, nil
		}
	}
}

type tokenizer struct {
	input string
	pos   int
}

func (t *tokenizer) errorf(offset int, format string, args ...any) error {
	return &Error{Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

// byteAt returns the byte at offset i, or 0 past the end.
func (t *tokenizer) byteAt(i int) byte {
	if i >= len(t.input) {
		return 0
	}

	return t.input[i]
}

func (t *tokenizer) make(typ Type, start, end int) Token {
	t.pos = end

	return Token{Type: typ, Pos: start, End: end, Text: t.input[start:end]}
}

// op emits a fixed-width operator token.
func (t *tokenizer) op(typ Type, start, width int) Token {
	return t.make(typ, start, start+width)
}

func (t *tokenizer) next() (Token, error) {
	if err := t.skipTrivia(); err != nil {
		return Token{}, err
	}

	start := t.pos
	if start >= len(t.input) {
		return Token{Type: EOF, Pos: start, End: start}, nil
	}

	c := t.input[start]

	switch {
	case isIdentStart(rune(c)) || c >= utf8.RuneSelf:
		return t.scanIdent(start)

	case c >= '0' && c <= '9':
		return t.scanNumber(start), nil

	case c == '"' || c == '\'':
		return t.scanString(start)

	case c == '`':
		return t.scanTemplate(start)
	}

	switch c {
	case '(':
		return t.op(LParen, start, 1), nil
	case ')':
		return t.op(RParen, start, 1), nil
	case '[':
		return t.op(LBrack, start, 1), nil
	case ']':
		return t.op(RBrack, start, 1), nil
	case '{':
		return t.op(LBrace, start, 1), nil
	case '}':
		return t.op(RBrace, start, 1), nil
	case ',':
		return t.op(Comma, start, 1), nil
	case ';':
		return t.op(Semi, start, 1), nil
	case ':':
		return t.op(Colon, start, 1), nil
	case '~':
		return t.op(Tilde, start, 1), nil

	case '.':
		if d := t.byteAt(start + 1); d >= '0' && d <= '9' {
			return t.scanNumber(start), nil
		}

		if t.byteAt(start+1) == '.' && t.byteAt(start+2) == '.' {
			return t.op(Ellipsis, start, 3), nil
		}

		return t.op(Dot, start, 1), nil

	case '?':
		switch t.byteAt(start + 1) {
		case '.':
			// `?.` followed by a digit is a conditional, not optional
			// chaining: `a ? .5 : b`.
			if d := t.byteAt(start + 2); d >= '0' && d <= '9' {
				return t.op(Question, start, 1), nil
			}

			return t.op(QuestionDot, start, 2), nil

		case '?':
			if t.byteAt(start+2) == '=' {
				return t.op(AssignOp, start, 3), nil
			}

			return t.op(QuestionQuestion, start, 2), nil
		}

		return t.op(Question, start, 1), nil

	case '=':
		switch {
		case t.byteAt(start+1) == '=' && t.byteAt(start+2) == '=':
			return t.op(EqEqEq, start, 3), nil
		case t.byteAt(start+1) == '=':
			return t.op(EqEq, start, 2), nil
		case t.byteAt(start+1) == '>':
			return t.op(Arrow, start, 2), nil
		}

		return t.op(Assign, start, 1), nil

	case '!':
		switch {
		case t.byteAt(start+1) == '=' && t.byteAt(start+2) == '=':
			return t.op(NotEqEq, start, 3), nil
		case t.byteAt(start+1) == '=':
			return t.op(NotEq, start, 2), nil
		}

		return t.op(Bang, start, 1), nil

	case '<':
		switch {
		case t.byteAt(start+1) == '<' && t.byteAt(start+2) == '=':
			return t.op(AssignOp, start, 3), nil
		case t.byteAt(start+1) == '<':
			return t.op(Shl, start, 2), nil
		case t.byteAt(start+1) == '=':
			return t.op(Le, start, 2), nil
		}

		return t.op(Lt, start, 1), nil

	case '>':
		switch {
		case t.byteAt(start+1) == '>' && t.byteAt(start+2) == '>' && t.byteAt(start+3) == '=':
			return t.op(AssignOp, start, 4), nil
		case t.byteAt(start+1) == '>' && t.byteAt(start+2) == '>':
			return t.op(UShr, start, 3), nil
		case t.byteAt(start+1) == '>' && t.byteAt(start+2) == '=':
			return t.op(AssignOp, start, 3), nil
		case t.byteAt(start+1) == '>':
			return t.op(Shr, start, 2), nil
		case t.byteAt(start+1) == '=':
			return t.op(Ge, start, 2), nil
		}

		return t.op(Gt, start, 1), nil

	case '&':
		switch {
		case t.byteAt(start+1) == '&' && t.byteAt(start+2) == '=':
			return t.op(AssignOp, start, 3), nil
		case t.byteAt(start+1) == '&':
			return t.op(AmpAmp, start, 2), nil
		case t.byteAt(start+1) == '=':
			return t.op(AssignOp, start, 2), nil
		}

		return t.op(Amp, start, 1), nil

	case '|':
		switch {
		case t.byteAt(start+1) == '|' && t.byteAt(start+2) == '=':
			return t.op(AssignOp, start, 3), nil
		case t.byteAt(start+1) == '|':
			return t.op(PipePipe, start, 2), nil
		case t.byteAt(start+1) == '=':
			return t.op(AssignOp, start, 2), nil
		}

		return t.op(Pipe, start, 1), nil

	case '^':
		if t.byteAt(start+1) == '=' {
			return t.op(AssignOp, start, 2), nil
		}

		return t.op(Caret, start, 1), nil

	case '+':
		switch t.byteAt(start + 1) {
		case '+':
			return t.op(Inc, start, 2), nil
		case '=':
			return t.op(AssignOp, start, 2), nil
		}

		return t.op(Plus, start, 1), nil

	case '-':
		switch t.byteAt(start + 1) {
		case '-':
			return t.op(Dec, start, 2), nil
		case '=':
			return t.op(AssignOp, start, 2), nil
		}

		return t.op(Minus, start, 1), nil

	case '*':
		switch {
		case t.byteAt(start+1) == '*' && t.byteAt(start+2) == '=':
			return t.op(AssignOp, start, 3), nil
		case t.byteAt(start+1) == '*':
			return t.op(StarStar, start, 2), nil
		case t.byteAt(start+1) == '=':
			return t.op(AssignOp, start, 2), nil
		}

		return t.op(Star, start, 1), nil

	case '/':
		if t.byteAt(start+1) == '=' {
			return t.op(AssignOp, start, 2), nil
		}

		return t.op(Slash, start, 1), nil

	case '%':
		if t.byteAt(start+1) == '=' {
			return t.op(AssignOp, start, 2), nil
		}

		return t.op(Percent, start, 1), nil
	}

	return t.op(Illegal, start, 1), t.errorf(start, "unexpected character %q", c)
}

// skipTrivia consumes whitespace and comments.
func (t *tokenizer) skipTrivia() error {
	for t.pos < len(t.input) {
		switch c := t.input[t.pos]; {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == '\v':
			t.pos++

		case c == '/' && t.byteAt(t.pos+1) == '/':
			for t.pos < len(t.input) && t.input[t.pos] != '\n' {
				t.pos++
			}

		case c == '/' && t.byteAt(t.pos+1) == '*':
			start := t.pos
			t.pos += 2

			for {
				if t.pos+1 >= len(t.input) {
					return t.errorf(start, "unterminated block comment")
				}

				if t.input[t.pos] == '*' && t.input[t.pos+1] == '/' {
					t.pos += 2

					break
				}

				t.pos++
			}

		default:
			return nil
		}
	}

	return nil
}

func (t *tokenizer) scanIdent(start int) (Token, error) {
	i := start
	for i < len(t.input) {
		r, size := utf8.DecodeRuneInString(t.input[i:])
		if !isIdentPart(r) {
			break
		}

		i += size
	}

	if i == start {
		t.pos = start + 1

		return Token{Type: Illegal, Pos: start, End: t.pos, Text: t.input[start:t.pos]},
			t.errorf(start, "unexpected character %q", t.input[start])
	}

	typ := Ident
	if kw, ok := keywords[t.input[start:i]]; ok {
		typ = kw
	}

	return t.make(typ, start, i), nil
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

func (t *tokenizer) scanNumber(start int) Token {
	i := start

	if t.byteAt(i) == '0' {
		switch t.byteAt(i + 1) {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			i += 2
			for isHexDigit(t.byteAt(i)) || t.byteAt(i) == '_' {
				i++
			}

			if t.byteAt(i) == 'n' {
				i++
			}

			return t.make(Number, start, i)
		}
	}

	for isDigit(t.byteAt(i)) || t.byteAt(i) == '_' {
		i++
	}

	if t.byteAt(i) == '.' {
		i++
		for isDigit(t.byteAt(i)) || t.byteAt(i) == '_' {
			i++
		}
	}

	if c := t.byteAt(i); c == 'e' || c == 'E' {
		j := i + 1
		if c := t.byteAt(j); c == '+' || c == '-' {
			j++
		}

		if isDigit(t.byteAt(j)) {
			i = j
			for isDigit(t.byteAt(i)) || t.byteAt(i) == '_' {
				i++
			}
		}
	}

	if t.byteAt(i) == 'n' {
		i++
	}

	return t.make(Number, start, i)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func (t *tokenizer) scanString(start int) (Token, error) {
	quote := t.input[start]

	for i := start + 1; i < len(t.input); i++ {
		switch t.input[i] {
		case '\\':
			i++

		case quote:
			return t.make(String, start, i+1), nil

		case '\n':
			return Token{}, t.errorf(start, "unterminated string literal")
		}
	}

	return Token{}, t.errorf(start, "unterminated string literal")
}

// scanTemplate consumes a complete template literal, including any nested
// substitutions, as a single opaque token.
func (t *tokenizer) scanTemplate(start int) (Token, error) {
	end, err := t.templateEnd(start)
	if err != nil {
		return Token{}, err
	}

	return t.make(Template, start, end), nil
}

// templateEnd returns the offset just past the closing backtick of the
// template starting at start.
func (t *tokenizer) templateEnd(start int) (int, error) {
	i := start + 1

	for i < len(t.input) {
		switch t.input[i] {
		case '\\':
			i += 2

		case '`':
			return i + 1, nil

		case '$':
			if t.byteAt(i+1) == '{' {
				end, err := t.substitutionEnd(i + 1)
				if err != nil {
					return 0, err
				}

				i = end

				continue
			}

			i++

		default:
			i++
		}
	}

	return 0, t.errorf(start, "unterminated template literal")
}

// substitutionEnd scans a `${}` substitution body starting at its opening
// brace, balancing braces and skipping over string and template contents.
func (t *tokenizer) substitutionEnd(open int) (int, error) {
	depth := 0
	i := open

	for i < len(t.input) {
		switch t.input[i] {
		case '{':
			depth++
			i++

		case '}':
			depth--
			i++

			if depth == 0 {
				return i, nil
			}

		case '\'', '"':
			save := t.pos

			tok, err := t.scanString(i)
			t.pos = save

			if err != nil {
				return 0, err
			}

			i = tok.End

		case '`':
			end, err := t.templateEnd(i)
			if err != nil {
				return 0, err
			}

			i = end

		case '\\':
			i += 2

		default:
			i++
		}
	}

	return 0, t.errorf(open, "unterminated template substitution")
}

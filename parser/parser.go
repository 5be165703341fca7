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

// Package parser builds the [ast] expression tree from script source.
//
// It is a Pratt parser over the token slice produced by the tokenizer, with
// one binding level per operator tier. The grammar is the expression language
// chainlint analyzes plus a small statement layer, enough to scan whole
// files. The parser is deliberately lenient about constructs it does not
// model (it wraps them in opaque nodes where possible) but reports a
// positioned error rather than guessing when it cannot make progress.
package parser

import (
	"fmt"

	"github.com/chainlint/chainlint/ast"
	"github.com/chainlint/chainlint/tokenizer"
)

// Error is a parse error at a byte offset.
type Error struct {
	Offset int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
}

// Parse parses a complete file into a program. The name is only used in
// positions reported to humans.
func Parse(name, input string) (*ast.Source, *ast.Program, error) {
	p, err := newParser(input)
	if err != nil {
		return nil, nil, err
	}

	prog := &ast.Program{}

	for !p.at(tokenizer.EOF) {
		s, err := p.parseStmt()
		if err != nil {
			return nil, nil, err
		}

		prog.Stmts = append(prog.Stmts, s)
	}

	return ast.NewSource(name, input), prog, nil
}

// ParseExpr parses a single expression and requires it to span the whole
// input.
func ParseExpr(name, input string) (*ast.Source, *ast.Node, error) {
	p, err := newParser(input)
	if err != nil {
		return nil, nil, err
	}

	e, err := p.parseExpr(ast.LLowest)
	if err != nil {
		return nil, nil, err
	}

	if !p.at(tokenizer.EOF) {
		return nil, nil, p.errorf(p.peek().Pos, "unexpected %s after expression", p.peek().Type)
	}

	return ast.NewSource(name, input), e, nil
}

type parser struct {
	src  string
	toks []tokenizer.Token
	i    int
}

func newParser(input string) (*parser, error) {
	toks, err := tokenizer.Tokenize(input)
	if err != nil {
		return nil, err
	}

	return &parser{src: input, toks: toks}, nil
}

func (p *parser) errorf(offset int, format string, args ...any) error {
	return &Error{Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) peek() tokenizer.Token { return p.toks[p.i] }

// peekAt returns the token n positions ahead, or the trailing EOF token.
func (p *parser) peekAt(n int) tokenizer.Token {
	if p.i+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}

	return p.toks[p.i+n]
}

func (p *parser) at(typ tokenizer.Type) bool { return p.peek().Type == typ }

func (p *parser) advance() tokenizer.Token {
	t := p.toks[p.i]
	if p.i < len(p.toks)-1 {
		p.i++
	}

	return t
}

// eat consumes the next token if it has the given type.
func (p *parser) eat(typ tokenizer.Type) bool {
	if p.at(typ) {
		p.advance()

		return true
	}

	return false
}

func (p *parser) expect(typ tokenizer.Type, in string) (tokenizer.Token, error) {
	if !p.at(typ) {
		t := p.peek()

		return t, p.errorf(t.Pos, "expected %s in %s, found %s", typ, in, t.Type)
	}

	return p.advance(), nil
}

// isPropertyName reports whether a token can follow `.` as a property name.
// Keywords are valid property names.
func isPropertyName(t tokenizer.Token) bool {
	return t.Type == tokenizer.Ident || (t.Type >= tokenizer.This && t.Type <= tokenizer.For)
}

// matchingParen returns the token index of the `)` matching the `(` at token
// index open, or -1. Only parentheses are counted; every other token nests
// freely inside.
func (p *parser) matchingParen(open int) int {
	depth := 0

	for j := open; j < len(p.toks); j++ {
		switch p.toks[j].Type {
		case tokenizer.LParen:
			depth++

		case tokenizer.RParen:
			depth--
			if depth == 0 {
				return j
			}

		case tokenizer.EOF:
			return -1
		}
	}

	return -1
}

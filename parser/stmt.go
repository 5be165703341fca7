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

package parser

import (
	"github.com/chainlint/chainlint/ast"
	"github.com/chainlint/chainlint/tokenizer"
)

func (p *parser) parseStmt() (*ast.Stmt, error) {
	t := p.peek()

	switch t.Type {
	case tokenizer.Semi:
		p.advance()

		return &ast.Stmt{Kind: ast.StmtEmpty, Pos: t.Pos, End: t.End}, nil

	case tokenizer.LBrace:
		return p.parseBlock()

	case tokenizer.Var, tokenizer.Let, tokenizer.Const:
		return p.parseVar()

	case tokenizer.If:
		return p.parseIf()

	case tokenizer.While:
		return p.parseWhile()

	case tokenizer.For:
		return p.parseFor()

	case tokenizer.Return:
		return p.parseReturn()

	case tokenizer.Function:
		fn, err := p.parseFunctionLiteral()
		if err != nil {
			return nil, err
		}

		return &ast.Stmt{Kind: ast.StmtFunc, Fn: fn, Pos: fn.Pos, End: fn.End}, nil
	}

	return p.parseExprStmt()
}

func (p *parser) parseExprStmt() (*ast.Stmt, error) {
	e, err := p.parseExpr(ast.LLowest)
	if err != nil {
		return nil, err
	}

	s := &ast.Stmt{Kind: ast.StmtExpr, Expr: e, Pos: e.Pos, End: e.End}
	if semi := p.peek(); semi.Type == tokenizer.Semi {
		p.advance()
		s.End = semi.End
	}

	return s, nil
}

func (p *parser) parseBlock() (*ast.Stmt, error) {
	open, err := p.expect(tokenizer.LBrace, "block")
	if err != nil {
		return nil, err
	}

	s := &ast.Stmt{Kind: ast.StmtBlock, Pos: open.Pos}

	for !p.at(tokenizer.RBrace) {
		if p.at(tokenizer.EOF) {
			return nil, p.errorf(open.Pos, "unterminated block")
		}

		c, err := p.parseStmt()
		if err != nil {
			return nil, err
		}

		s.List = append(s.List, c)
	}

	closing := p.advance()
	s.End = closing.End

	return s, nil
}

// parseVar parses a variable statement. The optional trailing semicolon is
// consumed. Destructuring declarators are kept as opaque patterns.
func (p *parser) parseVar() (*ast.Stmt, error) {
	kw := p.advance()
	s := &ast.Stmt{Kind: ast.StmtVar, Keyword: kw.Text, Pos: kw.Pos, End: kw.End}

	for {
		var d ast.VarDecl

		if t := p.peek(); t.Type == tokenizer.Ident {
			p.advance()
			d.Name = t.Text
			d.Pos = t.Pos
			s.End = t.End
		} else {
			pattern, err := p.parseExpr(ast.LAssign)
			if err != nil {
				return nil, err
			}

			d.Pattern = pattern
			d.Pos = pattern.Pos
			s.End = pattern.End
		}

		if p.eat(tokenizer.Assign) {
			init, err := p.parseExpr(ast.LComma)
			if err != nil {
				return nil, err
			}

			d.Init = init
			s.End = init.End
		}

		s.Decls = append(s.Decls, d)

		if !p.eat(tokenizer.Comma) {
			break
		}
	}

	if semi := p.peek(); semi.Type == tokenizer.Semi {
		p.advance()
		s.End = semi.End
	}

	return s, nil
}

func (p *parser) parseIf() (*ast.Stmt, error) {
	kw := p.advance()

	if _, err := p.expect(tokenizer.LParen, "if statement"); err != nil {
		return nil, err
	}

	cond, err := p.parseExpr(ast.LLowest)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(tokenizer.RParen, "if statement"); err != nil {
		return nil, err
	}

	body, err := p.parseStmt()
	if err != nil {
		return nil, err
	}

	s := &ast.Stmt{Kind: ast.StmtIf, Cond: cond, Body: body, Pos: kw.Pos, End: body.End}

	if p.eat(tokenizer.Else) {
		alt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}

		s.Else = alt
		s.End = alt.End
	}

	return s, nil
}

func (p *parser) parseWhile() (*ast.Stmt, error) {
	kw := p.advance()

	if _, err := p.expect(tokenizer.LParen, "while statement"); err != nil {
		return nil, err
	}

	cond, err := p.parseExpr(ast.LLowest)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(tokenizer.RParen, "while statement"); err != nil {
		return nil, err
	}

	body, err := p.parseStmt()
	if err != nil {
		return nil, err
	}

	return &ast.Stmt{Kind: ast.StmtWhile, Cond: cond, Body: body, Pos: kw.Pos, End: body.End}, nil
}

// parseFor parses classic, `in` and `of` for statements. The iterated
// expression of the `in`/`of` forms lands in Cond.
func (p *parser) parseFor() (*ast.Stmt, error) {
	kw := p.advance()
	s := &ast.Stmt{Kind: ast.StmtFor, Pos: kw.Pos}

	if _, err := p.expect(tokenizer.LParen, "for statement"); err != nil {
		return nil, err
	}

	if !p.at(tokenizer.Semi) {
		switch p.peek().Type {
		case tokenizer.Var, tokenizer.Let, tokenizer.Const:
			init, err := p.parseForVar()
			if err != nil {
				return nil, err
			}

			s.Init = init

		default:
			e, err := p.parseExpr(ast.LLowest)
			if err != nil {
				return nil, err
			}

			s.Init = &ast.Stmt{Kind: ast.StmtExpr, Expr: e, Pos: e.Pos, End: e.End}
		}
	}

	if p.at(tokenizer.In) || (p.at(tokenizer.Ident) && p.peek().Text == "of") {
		p.advance()

		iterated, err := p.parseExpr(ast.LLowest)
		if err != nil {
			return nil, err
		}

		s.Cond = iterated
	} else {
		if _, err := p.expect(tokenizer.Semi, "for statement"); err != nil {
			return nil, err
		}

		if !p.at(tokenizer.Semi) {
			cond, err := p.parseExpr(ast.LLowest)
			if err != nil {
				return nil, err
			}

			s.Cond = cond
		}

		if _, err := p.expect(tokenizer.Semi, "for statement"); err != nil {
			return nil, err
		}

		if !p.at(tokenizer.RParen) {
			post, err := p.parseExpr(ast.LLowest)
			if err != nil {
				return nil, err
			}

			s.Post = post
		}
	}

	if _, err := p.expect(tokenizer.RParen, "for statement"); err != nil {
		return nil, err
	}

	body, err := p.parseStmt()
	if err != nil {
		return nil, err
	}

	s.Body = body
	s.End = body.End

	return s, nil
}

// parseForVar parses the variable declaration of a for head. Unlike
// [parser.parseVar] it stops before `in`/`of` and consumes no semicolon.
func (p *parser) parseForVar() (*ast.Stmt, error) {
	kw := p.advance()
	s := &ast.Stmt{Kind: ast.StmtVar, Keyword: kw.Text, Pos: kw.Pos, End: kw.End}

	for {
		var d ast.VarDecl

		if t := p.peek(); t.Type == tokenizer.Ident {
			p.advance()
			d.Name = t.Text
			d.Pos = t.Pos
			s.End = t.End
		} else {
			pattern, err := p.parseExpr(ast.LAssign)
			if err != nil {
				return nil, err
			}

			d.Pattern = pattern
			d.Pos = pattern.Pos
			s.End = pattern.End
		}

		if p.at(tokenizer.Assign) {
			p.advance()

			init, err := p.parseExpr(ast.LComma)
			if err != nil {
				return nil, err
			}

			d.Init = init
			s.End = init.End
		}

		s.Decls = append(s.Decls, d)

		if !p.eat(tokenizer.Comma) {
			break
		}
	}

	return s, nil
}

func (p *parser) parseReturn() (*ast.Stmt, error) {
	kw := p.advance()
	s := &ast.Stmt{Kind: ast.StmtReturn, Pos: kw.Pos, End: kw.End}

	switch p.peek().Type {
	case tokenizer.Semi, tokenizer.RBrace, tokenizer.EOF:
	default:
		e, err := p.parseExpr(ast.LLowest)
		if err != nil {
			return nil, err
		}

		s.Expr = e
		s.End = e.End
	}

	if semi := p.peek(); semi.Type == tokenizer.Semi {
		p.advance()
		s.End = semi.End
	}

	return s, nil
}

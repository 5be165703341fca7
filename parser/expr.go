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

// binaryOps maps infix tokens to operators. Logical operators and the
// conditional are handled separately in parseSuffix.
var binaryOps = map[tokenizer.Type]ast.Op{
	tokenizer.EqEq:       ast.OpLooseEq,
	tokenizer.NotEq:      ast.OpLooseNe,
	tokenizer.EqEqEq:     ast.OpStrictEq,
	tokenizer.NotEqEq:    ast.OpStrictNe,
	tokenizer.Lt:         ast.OpLt,
	tokenizer.Le:         ast.OpLe,
	tokenizer.Gt:         ast.OpGt,
	tokenizer.Ge:         ast.OpGe,
	tokenizer.In:         ast.OpIn,
	tokenizer.Instanceof: ast.OpInstanceof,
	tokenizer.Plus:       ast.OpAdd,
	tokenizer.Minus:      ast.OpSub,
	tokenizer.Star:       ast.OpMul,
	tokenizer.Slash:      ast.OpDiv,
	tokenizer.Percent:    ast.OpRem,
	tokenizer.StarStar:   ast.OpPow,
	tokenizer.Shl:        ast.OpShl,
	tokenizer.Shr:        ast.OpShr,
	tokenizer.UShr:       ast.OpUShr,
	tokenizer.Amp:        ast.OpBitAnd,
	tokenizer.Pipe:       ast.OpBitOr,
	tokenizer.Caret:      ast.OpBitXor,
}

// assignOps maps compound assignment spellings to operators. Plain `=` has
// its own token type and is handled directly.
var assignOps = map[string]ast.Op{
	"+=":   ast.OpAddAssign,
	"-=":   ast.OpSubAssign,
	"*=":   ast.OpMulAssign,
	"/=":   ast.OpDivAssign,
	"%=":   ast.OpRemAssign,
	"**=":  ast.OpPowAssign,
	"<<=":  ast.OpShlAssign,
	">>=":  ast.OpShrAssign,
	">>>=": ast.OpUShrAssign,
	"&=":   ast.OpBitAndAssign,
	"^=":   ast.OpBitXorAssign,
	"|=":   ast.OpBitOrAssign,
	"&&=":  ast.OpLogicalAndAssign,
	"||=":  ast.OpLogicalOrAssign,
	"??=":  ast.OpNullishAssign,
}

var prefixOps = map[tokenizer.Type]ast.Op{
	tokenizer.Bang:   ast.OpNot,
	tokenizer.Tilde:  ast.OpBitNot,
	tokenizer.Plus:   ast.OpPos,
	tokenizer.Minus:  ast.OpNeg,
	tokenizer.Typeof: ast.OpTypeof,
	tokenizer.Void:   ast.OpVoid,
	tokenizer.Delete: ast.OpDelete,
}

func (p *parser) parseExpr(level ast.L) (*ast.Node, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	return p.parseSuffix(left, level)
}

func (p *parser) parsePrefix() (*ast.Node, error) {
	t := p.peek()

	if op, ok := prefixOps[t.Type]; ok {
		p.advance()

		operand, err := p.parseExpr(ast.LPrefix)
		if err != nil {
			return nil, err
		}

		return &ast.Node{Kind: ast.KindUnary, Op: op, Operand: operand, Pos: t.Pos, End: operand.End}, nil
	}

	switch t.Type {
	case tokenizer.Inc, tokenizer.Dec:
		p.advance()

		operand, err := p.parseExpr(ast.LPrefix)
		if err != nil {
			return nil, err
		}

		op := ast.OpInc
		if t.Type == tokenizer.Dec {
			op = ast.OpDec
		}

		return &ast.Node{Kind: ast.KindUpdate, Op: op, Operand: operand, Prefix: true, Pos: t.Pos, End: operand.End}, nil

	case tokenizer.Await:
		p.advance()

		operand, err := p.parseExpr(ast.LPrefix)
		if err != nil {
			return nil, err
		}

		return &ast.Node{Kind: ast.KindAwait, Operand: operand, Pos: t.Pos, End: operand.End}, nil

	case tokenizer.New:
		return p.parseNew()

	case tokenizer.Function:
		return p.parseFunctionLiteral()

	case tokenizer.This:
		p.advance()

		return &ast.Node{Kind: ast.KindThis, Pos: t.Pos, End: t.End}, nil

	case tokenizer.Null:
		p.advance()

		return &ast.Node{Kind: ast.KindLiteral, Lit: ast.LitNull, Pos: t.Pos, End: t.End}, nil

	case tokenizer.True, tokenizer.False:
		p.advance()

		return &ast.Node{Kind: ast.KindLiteral, Lit: ast.LitBool, Pos: t.Pos, End: t.End}, nil

	case tokenizer.Number:
		p.advance()

		return &ast.Node{Kind: ast.KindLiteral, Lit: ast.LitNumber, Pos: t.Pos, End: t.End}, nil

	case tokenizer.String:
		p.advance()

		return &ast.Node{Kind: ast.KindLiteral, Lit: ast.LitString, Pos: t.Pos, End: t.End}, nil

	case tokenizer.Template:
		p.advance()

		return &ast.Node{Kind: ast.KindTemplate, Pos: t.Pos, End: t.End}, nil

	case tokenizer.Ident:
		return p.parseIdentOrArrow(t)

	case tokenizer.LParen:
		if end := p.matchingParen(p.i); end >= 0 && p.toks[end+1].Type == tokenizer.Arrow {
			return p.parseArrow(t.Pos)
		}

		return p.parseParen()

	case tokenizer.LBrack:
		return p.parseArray()

	case tokenizer.LBrace:
		return p.parseObject()

	case tokenizer.Ellipsis:
		p.advance()

		operand, err := p.parseExpr(ast.LComma)
		if err != nil {
			return nil, err
		}

		return &ast.Node{Kind: ast.KindSpread, Operand: operand, Pos: t.Pos, End: operand.End}, nil
	}

	return nil, p.errorf(t.Pos, "unexpected %s in expression", t.Type)
}

func (p *parser) parseIdentOrArrow(t tokenizer.Token) (*ast.Node, error) {
	// `async` prefixes of function and arrow literals.
	if t.Text == "async" {
		switch next := p.peekAt(1); {
		case next.Type == tokenizer.Function:
			p.advance()

			fn, err := p.parseFunctionLiteral()
			if err != nil {
				return nil, err
			}

			fn.Pos = t.Pos

			return fn, nil

		case next.Type == tokenizer.Ident && p.peekAt(2).Type == tokenizer.Arrow:
			p.advance()

			return p.parseArrow(t.Pos)

		case next.Type == tokenizer.LParen:
			if end := p.matchingParen(p.i + 1); end >= 0 && p.toks[end+1].Type == tokenizer.Arrow {
				p.advance()

				return p.parseArrow(t.Pos)
			}
		}
	}

	if p.peekAt(1).Type == tokenizer.Arrow {
		return p.parseArrow(t.Pos)
	}

	p.advance()

	return &ast.Node{Kind: ast.KindIdent, Name: t.Text, Pos: t.Pos, End: t.End}, nil
}

// parseArrow parses an arrow literal whose parameter list starts at the
// current token (a bare identifier or a parenthesized list).
func (p *parser) parseArrow(pos int) (*ast.Node, error) {
	fn := &ast.Node{Kind: ast.KindFunction, Pos: pos}

	if t := p.peek(); t.Type == tokenizer.Ident {
		p.advance()
		fn.Params = []*ast.Node{{Kind: ast.KindIdent, Name: t.Text, Pos: t.Pos, End: t.End}}
	} else {
		if _, err := p.expect(tokenizer.LParen, "arrow parameters"); err != nil {
			return nil, err
		}

		for !p.at(tokenizer.RParen) {
			param, err := p.parseExpr(ast.LComma)
			if err != nil {
				return nil, err
			}

			fn.Params = append(fn.Params, param)

			if !p.eat(tokenizer.Comma) {
				break
			}
		}

		if _, err := p.expect(tokenizer.RParen, "arrow parameters"); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(tokenizer.Arrow, "arrow function"); err != nil {
		return nil, err
	}

	if p.at(tokenizer.LBrace) {
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}

		fn.Body = body
		fn.End = body.End

		return fn, nil
	}

	body, err := p.parseExpr(ast.LComma)
	if err != nil {
		return nil, err
	}

	fn.Operand = body
	fn.End = body.End

	return fn, nil
}

// parseFunctionLiteral parses `function name?(params) { ... }` with the
// `function` keyword as the current token.
func (p *parser) parseFunctionLiteral() (*ast.Node, error) {
	kw := p.advance()
	fn := &ast.Node{Kind: ast.KindFunction, Pos: kw.Pos}

	if t := p.peek(); t.Type == tokenizer.Ident {
		p.advance()
		fn.Name = t.Text
	}

	if _, err := p.expect(tokenizer.LParen, "function parameters"); err != nil {
		return nil, err
	}

	for !p.at(tokenizer.RParen) {
		param, err := p.parseExpr(ast.LComma)
		if err != nil {
			return nil, err
		}

		fn.Params = append(fn.Params, param)

		if !p.eat(tokenizer.Comma) {
			break
		}
	}

	if _, err := p.expect(tokenizer.RParen, "function parameters"); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	fn.Body = body
	fn.End = body.End

	return fn, nil
}

func (p *parser) parseParen() (*ast.Node, error) {
	open := p.advance()

	inner, err := p.parseExpr(ast.LLowest)
	if err != nil {
		return nil, err
	}

	closing, err := p.expect(tokenizer.RParen, "parenthesized expression")
	if err != nil {
		return nil, err
	}

	return &ast.Node{
		Kind:    ast.KindParen,
		Operand: inner,
		Pos:     open.Pos,
		End:     closing.End,
		LParen:  open.Pos,
		RParen:  closing.Pos,
	}, nil
}

func (p *parser) parseArray() (*ast.Node, error) {
	open := p.advance()
	arr := &ast.Node{Kind: ast.KindArray, Pos: open.Pos}

	for !p.at(tokenizer.RBrack) {
		if p.eat(tokenizer.Comma) { // elision
			continue
		}

		elem, err := p.parseExpr(ast.LComma)
		if err != nil {
			return nil, err
		}

		arr.Args = append(arr.Args, elem)

		if !p.eat(tokenizer.Comma) {
			break
		}
	}

	closing, err := p.expect(tokenizer.RBrack, "array literal")
	if err != nil {
		return nil, err
	}

	arr.End = closing.End

	return arr, nil
}

func (p *parser) parseObject() (*ast.Node, error) {
	open := p.advance()
	obj := &ast.Node{Kind: ast.KindObject, Pos: open.Pos}

	for !p.at(tokenizer.RBrace) {
		prop, err := p.parseProperty()
		if err != nil {
			return nil, err
		}

		obj.Args = append(obj.Args, prop)

		if !p.eat(tokenizer.Comma) {
			break
		}
	}

	closing, err := p.expect(tokenizer.RBrace, "object literal")
	if err != nil {
		return nil, err
	}

	obj.End = closing.End

	return obj, nil
}

// parseProperty parses one object literal entry and returns its value (or,
// for shorthand entries, the key identifier). Keys themselves are not
// modeled; only the values matter for analysis.
func (p *parser) parseProperty() (*ast.Node, error) {
	t := p.peek()

	switch {
	case t.Type == tokenizer.Ellipsis:
		p.advance()

		operand, err := p.parseExpr(ast.LComma)
		if err != nil {
			return nil, err
		}

		return &ast.Node{Kind: ast.KindSpread, Operand: operand, Pos: t.Pos, End: operand.End}, nil

	case t.Type == tokenizer.LBrack:
		p.advance()

		if _, err := p.parseExpr(ast.LLowest); err != nil {
			return nil, err
		}

		if _, err := p.expect(tokenizer.RBrack, "computed property key"); err != nil {
			return nil, err
		}

	case isPropertyName(t) || t.Type == tokenizer.String || t.Type == tokenizer.Number:
		p.advance()

	default:
		return nil, p.errorf(t.Pos, "unexpected %s in object literal", t.Type)
	}

	switch {
	case p.eat(tokenizer.Colon):
		return p.parseExpr(ast.LComma)

	case p.at(tokenizer.LParen): // method shorthand
		fn := &ast.Node{Kind: ast.KindFunction, Pos: t.Pos, Name: t.Text}
		p.advance()

		for !p.at(tokenizer.RParen) {
			param, err := p.parseExpr(ast.LComma)
			if err != nil {
				return nil, err
			}

			fn.Params = append(fn.Params, param)

			if !p.eat(tokenizer.Comma) {
				break
			}
		}

		if _, err := p.expect(tokenizer.RParen, "method parameters"); err != nil {
			return nil, err
		}

		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}

		fn.Body = body
		fn.End = body.End

		return fn, nil

	default: // shorthand property
		return &ast.Node{Kind: ast.KindIdent, Name: t.Text, Pos: t.Pos, End: t.End}, nil
	}
}

// parseNew parses `new Callee(args)`. The callee may only contain property
// and element accesses; a call ends the callee.
func (p *parser) parseNew() (*ast.Node, error) {
	kw := p.advance()

	callee, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		switch p.peek().Type {
		case tokenizer.Dot:
			p.advance()

			name := p.peek()
			if !isPropertyName(name) {
				return nil, p.errorf(name.Pos, "expected property name, found %s", name.Type)
			}

			p.advance()
			callee = &ast.Node{
				Kind:    ast.KindMember,
				Object:  callee,
				Name:    name.Text,
				NamePos: name.Pos,
				Pos:     callee.Pos,
				End:     name.End,
			}

		case tokenizer.LBrack:
			open := p.advance()

			key, err := p.parseExpr(ast.LLowest)
			if err != nil {
				return nil, err
			}

			closing, err := p.expect(tokenizer.RBrack, "element access")
			if err != nil {
				return nil, err
			}

			callee = &ast.Node{
				Kind:   ast.KindIndex,
				Object: callee,
				Key:    key,
				Pos:    callee.Pos,
				End:    closing.End,
				LBrack: open.Pos,
				RBrack: closing.Pos,
			}

		default:
			n := &ast.Node{Kind: ast.KindNew, Object: callee, Pos: kw.Pos, End: callee.End}

			if p.at(tokenizer.LParen) {
				openTok := p.advance()
				n.LParen = openTok.Pos

				for !p.at(tokenizer.RParen) {
					arg, err := p.parseExpr(ast.LComma)
					if err != nil {
						return nil, err
					}

					n.Args = append(n.Args, arg)

					if !p.eat(tokenizer.Comma) {
						break
					}
				}

				closing, err := p.expect(tokenizer.RParen, "new expression")
				if err != nil {
					return nil, err
				}

				n.RParen = closing.Pos
				n.End = closing.End
			}

			return n, nil
		}
	}
}

func (p *parser) parseSuffix(left *ast.Node, level ast.L) (*ast.Node, error) {
	for {
		t := p.peek()

		switch t.Type {
		case tokenizer.Dot, tokenizer.QuestionDot:
			next, err := p.parseAccess(left, t.Type == tokenizer.QuestionDot)
			if err != nil {
				return nil, err
			}

			left = next

		case tokenizer.LBrack:
			open := p.advance()

			key, err := p.parseExpr(ast.LLowest)
			if err != nil {
				return nil, err
			}

			closing, err := p.expect(tokenizer.RBrack, "element access")
			if err != nil {
				return nil, err
			}

			left = &ast.Node{
				Kind:   ast.KindIndex,
				Object: left,
				Key:    key,
				Pos:    left.Pos,
				End:    closing.End,
				LBrack: open.Pos,
				RBrack: closing.Pos,
			}

		case tokenizer.LParen:
			next, err := p.parseCall(left, false)
			if err != nil {
				return nil, err
			}

			left = next

		case tokenizer.Bang:
			p.advance()
			left = &ast.Node{Kind: ast.KindNonNull, Operand: left, Pos: left.Pos, End: t.End}

		case tokenizer.Inc, tokenizer.Dec:
			if ast.LPostfix <= level {
				return left, nil
			}

			p.advance()

			op := ast.OpInc
			if t.Type == tokenizer.Dec {
				op = ast.OpDec
			}

			left = &ast.Node{Kind: ast.KindUpdate, Op: op, Operand: left, Pos: left.Pos, End: t.End}

		case tokenizer.Ident:
			if t.Text != "as" || ast.LCompare <= level {
				return left, nil
			}

			next, err := p.parseCast(left)
			if err != nil {
				return nil, err
			}

			left = next

		case tokenizer.AmpAmp, tokenizer.PipePipe, tokenizer.QuestionQuestion:
			op := ast.OpLogicalAnd

			switch t.Type {
			case tokenizer.PipePipe:
				op = ast.OpLogicalOr
			case tokenizer.QuestionQuestion:
				op = ast.OpNullish
			}

			if op.Level() <= level {
				return left, nil
			}

			p.advance()

			right, err := p.parseExpr(op.Level())
			if err != nil {
				return nil, err
			}

			left = &ast.Node{Kind: ast.KindLogical, Op: op, Left: left, Right: right, Pos: left.Pos, End: right.End}

		case tokenizer.Question:
			if ast.LConditional <= level {
				return left, nil
			}

			p.advance()

			then, err := p.parseExpr(ast.LComma)
			if err != nil {
				return nil, err
			}

			if _, err := p.expect(tokenizer.Colon, "conditional expression"); err != nil {
				return nil, err
			}

			els, err := p.parseExpr(ast.LConditional - 1)
			if err != nil {
				return nil, err
			}

			left = &ast.Node{Kind: ast.KindConditional, Test: left, Then: then, Else: els, Pos: left.Pos, End: els.End}

		case tokenizer.Assign, tokenizer.AssignOp:
			if ast.LAssign <= level {
				return left, nil
			}

			op := ast.OpAssign

			if t.Type == tokenizer.AssignOp {
				var ok bool
				if op, ok = assignOps[t.Text]; !ok {
					return nil, p.errorf(t.Pos, "unexpected operator %q", t.Text)
				}
			}

			p.advance()

			right, err := p.parseExpr(ast.LAssign - 1)
			if err != nil {
				return nil, err
			}

			left = &ast.Node{Kind: ast.KindAssign, Op: op, Left: left, Right: right, Pos: left.Pos, End: right.End}

		case tokenizer.Comma:
			if ast.LComma <= level {
				return left, nil
			}

			p.advance()

			right, err := p.parseExpr(ast.LComma)
			if err != nil {
				return nil, err
			}

			if left.Kind == ast.KindSequence {
				left.Args = append(left.Args, right)
				left.End = right.End
			} else {
				left = &ast.Node{Kind: ast.KindSequence, Args: []*ast.Node{left, right}, Pos: left.Pos, End: right.End}
			}

		default:
			op, ok := binaryOps[t.Type]
			if !ok {
				return left, nil
			}

			lvl := op.Level()
			if lvl <= level {
				return left, nil
			}

			p.advance()

			// `**` is right-associative.
			rightLevel := lvl
			if op == ast.OpPow {
				rightLevel = lvl - 1
			}

			right, err := p.parseExpr(rightLevel)
			if err != nil {
				return nil, err
			}

			left = &ast.Node{Kind: ast.KindBinary, Op: op, Left: left, Right: right, Pos: left.Pos, End: right.End}
		}
	}
}

// parseAccess parses `.name`, `?.name`, `?.[key]` and `?.(args)` with the
// separator as the current token.
func (p *parser) parseAccess(left *ast.Node, optional bool) (*ast.Node, error) {
	p.advance()

	if optional {
		switch p.peek().Type {
		case tokenizer.LBrack:
			open := p.advance()

			key, err := p.parseExpr(ast.LLowest)
			if err != nil {
				return nil, err
			}

			closing, err := p.expect(tokenizer.RBrack, "element access")
			if err != nil {
				return nil, err
			}

			return &ast.Node{
				Kind:     ast.KindIndex,
				Object:   left,
				Key:      key,
				Optional: true,
				Pos:      left.Pos,
				End:      closing.End,
				LBrack:   open.Pos,
				RBrack:   closing.Pos,
			}, nil

		case tokenizer.LParen:
			return p.parseCall(left, true)
		}
	}

	name := p.peek()
	if !isPropertyName(name) {
		return nil, p.errorf(name.Pos, "expected property name, found %s", name.Type)
	}

	p.advance()

	return &ast.Node{
		Kind:     ast.KindMember,
		Object:   left,
		Name:     name.Text,
		NamePos:  name.Pos,
		Optional: optional,
		Pos:      left.Pos,
		End:      name.End,
	}, nil
}

// parseCall parses an argument list with `(` as the current token.
func (p *parser) parseCall(callee *ast.Node, optional bool) (*ast.Node, error) {
	open := p.advance()
	call := &ast.Node{
		Kind:     ast.KindCall,
		Object:   callee,
		Optional: optional,
		Pos:      callee.Pos,
		LParen:   open.Pos,
	}

	for !p.at(tokenizer.RParen) {
		arg, err := p.parseExpr(ast.LComma)
		if err != nil {
			return nil, err
		}

		call.Args = append(call.Args, arg)

		if !p.eat(tokenizer.Comma) {
			break
		}
	}

	closing, err := p.expect(tokenizer.RParen, "argument list")
	if err != nil {
		return nil, err
	}

	call.RParen = closing.Pos
	call.End = closing.End

	return call, nil
}

// parseCast parses a contextual `as` cast. The type is a dotted identifier
// with optional `[]` suffixes, kept as raw text.
func (p *parser) parseCast(left *ast.Node) (*ast.Node, error) {
	p.advance() // `as`

	name, err := p.expect(tokenizer.Ident, "type annotation")
	if err != nil {
		return nil, err
	}

	end := name.End

	for {
		if p.at(tokenizer.Dot) && p.peekAt(1).Type == tokenizer.Ident {
			p.advance()
			end = p.advance().End

			continue
		}

		if p.at(tokenizer.LBrack) && p.peekAt(1).Type == tokenizer.RBrack {
			p.advance()
			end = p.advance().End

			continue
		}

		break
	}

	return &ast.Node{Kind: ast.KindCast, Operand: left, Name: p.src[name.Pos:end], Pos: left.Pos, End: end}, nil
}

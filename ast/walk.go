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

package ast

// Children returns the direct expression children of n in source order. The
// block body of a function literal is not an expression and is not included;
// see [Roots] for how its expressions surface.
func Children(n *Node) []*Node {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case KindObject, KindArray, KindSequence:
		return n.Args

	case KindMember:
		return []*Node{n.Object}

	case KindIndex:
		return []*Node{n.Object, n.Key}

	case KindCall, KindNew:
		return append([]*Node{n.Object}, n.Args...)

	case KindUnary, KindUpdate, KindAwait, KindNonNull, KindCast, KindSpread, KindParen:
		return []*Node{n.Operand}

	case KindBinary, KindLogical, KindAssign:
		return []*Node{n.Left, n.Right}

	case KindConditional:
		return []*Node{n.Test, n.Then, n.Else}

	case KindFunction:
		if n.Operand != nil {
			return append(append([]*Node{}, n.Params...), n.Operand)
		}

		return n.Params

	default:
		// Leaf or opaque node.
		return nil
	}
}

// Inspect traverses one expression in depth-first pre-order. If fn returns
// false the node's children are skipped. Block bodies of nested function
// literals are not crossed; they belong to separate expression roots (see
// [Roots]).
func Inspect(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}

	for _, c := range Children(n) {
		Inspect(c, fn)
	}
}

// Roots calls fn once for every top-level expression of the program, in
// source order. Expressions inside the block bodies of function literals are
// reported as their own roots, after the expression containing the literal.
func Roots(p *Program, fn func(*Node)) {
	if p == nil {
		return
	}

	for _, s := range p.Stmts {
		rootsStmt(s, fn)
	}
}

func rootsStmt(s *Stmt, fn func(*Node)) {
	if s == nil {
		return
	}

	switch s.Kind {
	case StmtExpr, StmtReturn:
		emitRoot(s.Expr, fn)

	case StmtVar:
		for _, d := range s.Decls {
			emitRoot(d.Pattern, fn)
			emitRoot(d.Init, fn)
		}

	case StmtIf:
		emitRoot(s.Cond, fn)
		rootsStmt(s.Body, fn)
		rootsStmt(s.Else, fn)

	case StmtWhile:
		emitRoot(s.Cond, fn)
		rootsStmt(s.Body, fn)

	case StmtFor:
		rootsStmt(s.Init, fn)
		emitRoot(s.Cond, fn)
		emitRoot(s.Post, fn)
		rootsStmt(s.Body, fn)

	case StmtBlock:
		for _, c := range s.List {
			rootsStmt(c, fn)
		}

	case StmtFunc:
		emitRoot(s.Fn, fn)

	default:
		// StmtEmpty, StmtInvalid.
	}
}

// emitRoot reports e as a root, then descends into function block bodies
// nested anywhere inside it so their expressions become independent roots.
func emitRoot(e *Node, fn func(*Node)) {
	if e == nil {
		return
	}

	fn(e)

	Inspect(e, func(n *Node) bool {
		if n.Kind == KindFunction && n.Body != nil {
			rootsStmt(n.Body, fn)
		}

		return true
	})
}

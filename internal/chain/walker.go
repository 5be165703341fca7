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

package chain

import (
	"github.com/chainlint/chainlint/ast"
	"github.com/chainlint/chainlint/internal/operand"
)

// Chain is a run of operands that collapses into one chained access.
type Chain struct {
	// Root is the subject of the first guard. Its source text opens the
	// rewritten chain.
	Root *ast.Node

	// Links are the accesses appended after the root, in source order.
	Links []operand.Link

	// Negated marks chains harvested from `||` runs; the rewrite carries a
	// single leading `!`.
	Negated bool

	// Guards counts the operands that contributed a guard.
	Guards int

	// Jumped records that at least one operand extended the subject by more
	// than one access.
	Jumped bool

	// Start and End are the byte offsets of the operand run the rewrite
	// replaces, from the first operand to the last merged one.
	Start, End int
}

// Flatten expands a logical expression into its top-level operand list for
// the given operator. Parenthesized subexpressions stay single operands.
func Flatten(n *ast.Node, op ast.Op) []*ast.Node {
	if n.Kind == ast.KindLogical && n.Op == op {
		return append(Flatten(n.Left, op), Flatten(n.Right, op)...)
	}

	return []*ast.Node{n}
}

type builder struct {
	root    *ast.Node
	first   *ast.Node
	last    *ast.Node
	links   []operand.Link
	guards  int
	jumped  bool
	norm    string
	negated bool
}

func (b *builder) chain() (Chain, bool) {
	if b == nil || b.guards < 1 {
		return Chain{}, false
	}

	return Chain{
		Root:    b.root,
		Links:   b.links,
		Negated: b.negated,
		Guards:  b.guards,
		Jumped:  b.jumped,
		Start:   b.first.Pos,
		End:     b.last.End,
	}, true
}

// Scan walks the operands of one maximal `&&` or `||` run and collects every
// chain worth rewriting. An operand that repeats the current subject is
// merged without adding a link; one that extends it appends its new accesses
// with the first marked guarded. An operand that does neither closes the
// current chain and may immediately seed the next one. Chains with no guarded
// link are discarded.
func Scan(src *ast.Source, ops []*ast.Node, op ast.Op) []Chain {
	negated := op == ast.OpLogicalOr

	var (
		out []Chain
		cur *builder
	)

	flush := func() {
		if c, ok := cur.chain(); ok {
			out = append(out, c)
		}

		cur = nil
	}

	seed := func(o, subject *ast.Node) {
		if !ValidRoot(subject) {
			return
		}

		cur = &builder{
			root:    subject,
			first:   o,
			last:    o,
			norm:    operand.Normalize(src, subject),
			negated: negated,
		}
	}

	for _, o := range ops {
		var subject *ast.Node

		if negated {
			s, _, ok := classifyOr(o)
			if !ok {
				flush()

				continue
			}

			subject = s
		} else {
			subject, _ = classifyAnd(o)
		}

		if cur == nil {
			seed(o, subject)

			continue
		}

		links, res := operand.Match(src, cur.norm, subject)

		switch res {
		case operand.Duplicate:
			cur.last = o

		case operand.Extension:
			cur.links = append(cur.links, links...)
			cur.guards++
			cur.jumped = cur.jumped || len(links) > 1
			cur.norm = operand.Normalize(src, subject)
			cur.last = o

		case operand.NoMatch:
			flush()
			seed(o, subject)
		}
	}

	flush()

	return out
}

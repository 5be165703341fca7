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

// Package ast defines the expression tree chainlint operates on.
//
// Nodes are a single struct tagged with a [Kind] rather than one type per
// production. Consumers switch exhaustively over the kind; every switch keeps
// a conservative default arm so an unexpected shape is treated as opaque, not
// as an error. Nodes carry byte offsets into the original source, so any
// sub-range of the input (including comments and whitespace) can be recovered
// verbatim through [Source].
package ast

// Kind identifies the syntactic production a [Node] represents.
type Kind uint8

//go:generate go tool stringer -type Kind -trimprefix Kind
const (
	// KindInvalid is the zero value and never appears in a parsed tree.
	KindInvalid Kind = iota

	// KindIdent is an identifier reference.
	KindIdent

	// KindThis is the `this` expression.
	KindThis

	// KindLiteral is a primitive literal; see [Node.Lit] for the variant.
	KindLiteral

	// KindObject is an object literal. Property values are in Args; an empty
	// literal has len(Args) == 0.
	KindObject

	// KindArray is an array literal with elements in Args.
	KindArray

	// KindTemplate is a template literal, kept opaque including any
	// substitutions.
	KindTemplate

	// KindMember is a property access `x.name` or `x?.name`.
	KindMember

	// KindIndex is a computed element access `x[key]` or `x?.[key]`.
	KindIndex

	// KindCall is a call `f(args)` or `f?.(args)`.
	KindCall

	// KindNew is a `new` expression.
	KindNew

	// KindUnary is a prefix operator expression (`!`, `~`, `+`, `-`,
	// `typeof`, `void`, `delete`).
	KindUnary

	// KindUpdate is `++`/`--`, prefix or postfix (see [Node.Prefix]).
	KindUpdate

	// KindBinary is a binary operator expression other than `&&`/`||`/`??`.
	KindBinary

	// KindLogical is `&&`, `||` or `??`.
	KindLogical

	// KindConditional is `test ? then : else`.
	KindConditional

	// KindAssign is an assignment, including compound forms.
	KindAssign

	// KindSequence is a comma expression.
	KindSequence

	// KindFunction is a function or arrow literal. A block body is held as a
	// statement in Body; an expression-bodied arrow keeps its body in Operand.
	KindFunction

	// KindAwait is an `await` expression.
	KindAwait

	// KindNonNull is the postfix non-null assertion `x!`.
	KindNonNull

	// KindCast is a contextual `x as T` cast. The type text is in Name.
	KindCast

	// KindSpread is `...x` in an argument or element position.
	KindSpread

	// KindParen is an explicitly parenthesized expression.
	KindParen

	// KindOther is any expression the parser recognizes but does not model.
	KindOther
)

// LitKind distinguishes the primitive literal variants of [KindLiteral].
type LitKind uint8

const (
	LitNone LitKind = iota
	LitNull
	LitBool
	LitNumber
	LitString
)

// Node is one expression. Field use depends on Kind; unused fields stay zero.
// Nodes are shared by reference and never mutated after parsing.
type Node struct {
	Kind Kind

	// Pos and End are byte offsets into the original source, with End
	// exclusive, covering the node's full extent.
	Pos, End int

	// Op is set for KindUnary, KindUpdate, KindBinary, KindLogical and
	// KindAssign.
	Op Op

	// Lit is set for KindLiteral.
	Lit LitKind

	// Name is the identifier text (KindIdent), the property name
	// (KindMember), the type text (KindCast) or the function name
	// (KindFunction, may be empty).
	Name string

	// NamePos is the byte offset of the property name of a KindMember node.
	NamePos int

	// Object is the accessed object (KindMember, KindIndex) or the callee
	// (KindCall, KindNew).
	Object *Node

	// Key is the computed key of a KindIndex node.
	Key *Node

	// Args holds call/new arguments, object property values, array elements
	// or sequence members.
	Args []*Node

	// Left and Right are the operands of KindBinary, KindLogical and
	// KindAssign.
	Left, Right *Node

	// Operand is the single child of KindUnary, KindUpdate, KindAwait,
	// KindNonNull, KindCast, KindSpread and KindParen, and the expression
	// body of an arrow KindFunction.
	Operand *Node

	// Test, Then and Else are the branches of KindConditional.
	Test, Then, Else *Node

	// Params are the parameters of a KindFunction node.
	Params []*Node

	// Body is the block body of a KindFunction node, nil for
	// expression-bodied arrows.
	Body *Stmt

	// Optional marks a `?.` separator on KindMember, KindIndex and KindCall.
	Optional bool

	// Prefix distinguishes `++x` from `x++` on KindUpdate.
	Prefix bool

	// LBrack and RBrack are the bracket offsets of a KindIndex node.
	LBrack, RBrack int

	// LParen and RParen are the parenthesis offsets of KindCall, KindNew and
	// KindParen nodes.
	LParen, RParen int
}

// Unparen removes any number of enclosing KindParen wrappers.
func Unparen(n *Node) *Node {
	for n != nil && n.Kind == KindParen && n.Operand != nil {
		n = n.Operand
	}

	return n
}

// IsAccess reports whether n is a property, element or call access.
func (n *Node) IsAccess() bool {
	switch n.Kind {
	case KindMember, KindIndex, KindCall:
		return true
	default:
		return false
	}
}

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

package tokenizer

// Type identifies a token class.
type Type uint8

//go:generate go tool stringer -type Type
const (
	EOF Type = iota
	Illegal

	Ident
	Number
	String
	Template

	LParen
	RParen
	LBrack
	RBrack
	LBrace
	RBrace

	Comma
	Semi
	Colon
	Dot
	QuestionDot
	Question
	Arrow
	Ellipsis

	Bang
	Tilde
	Plus
	Minus
	Star
	Slash
	Percent
	StarStar

	Lt
	Gt
	Le
	Ge
	Shl
	Shr
	UShr

	EqEq
	NotEq
	EqEqEq
	NotEqEq

	Amp
	Pipe
	Caret
	AmpAmp
	PipePipe
	QuestionQuestion

	Assign
	AssignOp
	Inc
	Dec

	This
	Null
	True
	False
	Typeof
	Void
	Delete
	Instanceof
	In
	New
	Await
	Function
	If
	Else
	Return
	Var
	Let
	Const
	While
	For
)

// Token is one lexical token. Pos and End are byte offsets into the input,
// End exclusive. Text is the raw source slice, so offsets and text always
// agree.
type Token struct {
	Type Type
	Pos  int
	End  int
	Text string
}

var keywords = map[string]Type{
	"this":       This,
	"null":       Null,
	"true":       True,
	"false":      False,
	"typeof":     Typeof,
	"void":       Void,
	"delete":     Delete,
	"instanceof": Instanceof,
	"in":         In,
	"new":        New,
	"await":      Await,
	"function":   Function,
	"if":         If,
	"else":       Else,
	"return":     Return,
	"var":        Var,
	"let":        Let,
	"const":      Const,
	"while":      While,
	"for":        For,
}

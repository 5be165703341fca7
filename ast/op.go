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

// L is an operator precedence level. Higher binds tighter.
type L uint8

const (
	LLowest L = iota
	LComma
	LAssign
	LConditional
	LNullish
	LLogicalOr
	LLogicalAnd
	LBitOr
	LBitXor
	LBitAnd
	LEquals
	LCompare
	LShift
	LAdd
	LMultiply
	LExponent
	LPrefix
	LPostfix
	LNew
	LCall
	LMember
)

// Op identifies an operator of a [KindUnary], [KindUpdate], [KindBinary],
// [KindLogical] or [KindAssign] node.
type Op uint8

const (
	OpNone Op = iota

	// Prefix operators.
	OpNot
	OpBitNot
	OpPos
	OpNeg
	OpTypeof
	OpVoid
	OpDelete

	// Update operators.
	OpInc
	OpDec

	// Binary operators.
	OpPow
	OpMul
	OpDiv
	OpRem
	OpAdd
	OpSub
	OpShl
	OpShr
	OpUShr
	OpLt
	OpLe
	OpGt
	OpGe
	OpIn
	OpInstanceof
	OpLooseEq
	OpLooseNe
	OpStrictEq
	OpStrictNe
	OpBitAnd
	OpBitXor
	OpBitOr

	// Logical operators.
	OpLogicalAnd
	OpLogicalOr
	OpNullish

	// Assignment operators.
	OpAssign
	OpAddAssign
	OpSubAssign
	OpMulAssign
	OpDivAssign
	OpRemAssign
	OpPowAssign
	OpShlAssign
	OpShrAssign
	OpUShrAssign
	OpBitAndAssign
	OpBitXorAssign
	OpBitOrAssign
	OpLogicalAndAssign
	OpLogicalOrAssign
	OpNullishAssign
)

type opInfo struct {
	text  string
	level L
}

var opTable = [...]opInfo{
	OpNone: {"", LLowest},

	OpNot:    {"!", LPrefix},
	OpBitNot: {"~", LPrefix},
	OpPos:    {"+", LPrefix},
	OpNeg:    {"-", LPrefix},
	OpTypeof: {"typeof", LPrefix},
	OpVoid:   {"void", LPrefix},
	OpDelete: {"delete", LPrefix},

	OpInc: {"++", LPrefix},
	OpDec: {"--", LPrefix},

	OpPow:        {"**", LExponent},
	OpMul:        {"*", LMultiply},
	OpDiv:        {"/", LMultiply},
	OpRem:        {"%", LMultiply},
	OpAdd:        {"+", LAdd},
	OpSub:        {"-", LAdd},
	OpShl:        {"<<", LShift},
	OpShr:        {">>", LShift},
	OpUShr:       {">>>", LShift},
	OpLt:         {"<", LCompare},
	OpLe:         {"<=", LCompare},
	OpGt:         {">", LCompare},
	OpGe:         {">=", LCompare},
	OpIn:         {"in", LCompare},
	OpInstanceof: {"instanceof", LCompare},
	OpLooseEq:    {"==", LEquals},
	OpLooseNe:    {"!=", LEquals},
	OpStrictEq:   {"===", LEquals},
	OpStrictNe:   {"!==", LEquals},
	OpBitAnd:     {"&", LBitAnd},
	OpBitXor:     {"^", LBitXor},
	OpBitOr:      {"|", LBitOr},

	OpLogicalAnd: {"&&", LLogicalAnd},
	OpLogicalOr:  {"||", LLogicalOr},
	OpNullish:    {"??", LNullish},

	OpAssign:           {"=", LAssign},
	OpAddAssign:        {"+=", LAssign},
	OpSubAssign:        {"-=", LAssign},
	OpMulAssign:        {"*=", LAssign},
	OpDivAssign:        {"/=", LAssign},
	OpRemAssign:        {"%=", LAssign},
	OpPowAssign:        {"**=", LAssign},
	OpShlAssign:        {"<<=", LAssign},
	OpShrAssign:        {">>=", LAssign},
	OpUShrAssign:       {">>>=", LAssign},
	OpBitAndAssign:     {"&=", LAssign},
	OpBitXorAssign:     {"^=", LAssign},
	OpBitOrAssign:      {"|=", LAssign},
	OpLogicalAndAssign: {"&&=", LAssign},
	OpLogicalOrAssign:  {"||=", LAssign},
	OpNullishAssign:    {"??=", LAssign},
}

// Text returns the operator's source spelling.
func (op Op) Text() string {
	if int(op) >= len(opTable) {
		return ""
	}

	return opTable[op].text
}

// Level returns the operator's binding level.
func (op Op) Level() L {
	if int(op) >= len(opTable) {
		return LLowest
	}

	return opTable[op].level
}

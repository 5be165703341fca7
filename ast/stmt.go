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

// StmtKind identifies the statement productions the file-level front end
// understands. The analyzer itself only ever sees expressions; statements
// exist so whole files can be scanned for expression roots.
type StmtKind uint8

const (
	StmtInvalid StmtKind = iota
	StmtExpr
	StmtVar
	StmtIf
	StmtWhile
	StmtFor
	StmtReturn
	StmtBlock
	StmtFunc
	StmtEmpty
)

// VarDecl is one declarator of a variable statement. Either Name or Pattern
// is set; destructuring patterns are kept as expressions.
type VarDecl struct {
	Name    string
	Pos     int
	Pattern *Node
	Init    *Node // nil when declared without an initializer
}

// Stmt is one statement. Field use depends on Kind.
type Stmt struct {
	Kind StmtKind

	Pos, End int

	// Expr is the expression of StmtExpr and the value of StmtReturn.
	Expr *Node

	// Keyword is "var", "let" or "const" for StmtVar.
	Keyword string

	// Decls are the declarators of StmtVar.
	Decls []VarDecl

	// Cond is the condition of StmtIf, StmtWhile and StmtFor (may be nil for
	// StmtFor).
	Cond *Node

	// Init is the initializer statement of StmtFor.
	Init *Stmt

	// Post is the post expression of StmtFor.
	Post *Node

	// Body is the primary nested statement of StmtIf, StmtWhile and StmtFor.
	Body *Stmt

	// Else is the alternative of StmtIf.
	Else *Stmt

	// List holds the statements of StmtBlock.
	List []*Stmt

	// Fn is the function literal of StmtFunc.
	Fn *Node
}

// Program is a parsed file.
type Program struct {
	Stmts []*Stmt
}

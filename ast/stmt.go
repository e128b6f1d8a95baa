// Copyright 2026 The dalc authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ast

import "github.com/dal-lang/dalc/source"

// Stmt is implemented by every statement variant: *Block, *Local,
// *ExprStmt, *ReturnStmt, *If (spec.md §3).
type Stmt interface {
	Node
	stmtNode()
}

// Block is a brace-delimited sequence of statements. It is both a Stmt
// (a nested block) and the body of a function.
type Block struct {
	Stmts []Stmt
	Sp    source.Span
}

func (b *Block) Span() source.Span { return b.Sp }
func (*Block) stmtNode()           {}

// LocalKind distinguishes an uninitialized declaration from one with an
// initializer expression.
type LocalKind int

const (
	// Decl is `let [mut] name [: ty]` with no `= expr`.
	Decl LocalKind = iota
	// Init is `let [mut] name [: ty] = expr`.
	Init
)

// Local is a `let` statement. IsConst is true unless `mut` was present;
// `let` alone therefore produces an immutable binding (spec.md §4.2).
type Local struct {
	Name    string
	Ty      Ty // nil if no type annotation was given
	Kind    LocalKind
	InitVal Expr // non-nil iff Kind == Init
	IsConst bool
	Sp      source.Span
}

func (l *Local) Span() source.Span { return l.Sp }
func (*Local) stmtNode()           {}

// ExprStmt is a bare expression used as a statement (an assignment or a
// call, most commonly).
type ExprStmt struct {
	X  Expr
	Sp source.Span
}

func (e *ExprStmt) Span() source.Span { return e.Sp }
func (*ExprStmt) stmtNode()           {}

// ReturnStmt is `return` or `return expr`.
type ReturnStmt struct {
	Value Expr // nil for a bare `return`
	Sp    source.Span
}

func (r *ReturnStmt) Span() source.Span { return r.Sp }
func (*ReturnStmt) stmtNode()           {}

// ElseKind is either a plain Block or another If (an else-if chain).
type ElseKind interface {
	Node
	elseNode()
}

func (b *Block) elseNode() {}

// If is `if cond then [else els]`. Els is nil when there is no else
// clause, a *Block for a plain `else`, and an *If for `else if`.
type If struct {
	Cond Expr
	Then *Block
	Els  ElseKind
	Sp   source.Span
}

func (i *If) Span() source.Span { return i.Sp }
func (*If) stmtNode()           {}
func (*If) elseNode()           {}

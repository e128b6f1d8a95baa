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

// Expr is implemented by every expression variant: *LitExpr, *BinaryExpr,
// *UnaryExpr, *AssignExpr, *CallExpr, *IdentExpr, *CastExpr (spec.md §3).
type Expr interface {
	Node
	exprNode()
}

// BinOp enumerates every binary operator the precedence-climbing grammar
// produces (spec.md §3, §4.2 levels 2–10).
type BinOp int

const (
	Add BinOp = iota
	Sub
	Mul
	Div
	Mod
	BitAnd
	BitOr
	BitXor
	Shl
	Shr
	And
	Or
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
)

func (op BinOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Mod:
		return "%"
	case BitAnd:
		return "&"
	case BitOr:
		return "|"
	case BitXor:
		return "^"
	case Shl:
		return "<<"
	case Shr:
		return ">>"
	case And:
		return "&&"
	case Or:
		return "||"
	case Eq:
		return "=="
	case Ne:
		return "!="
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	default:
		return "?binop?"
	}
}

// UnOp enumerates the three prefix unary operators (spec.md §3, §4.2
// level 12).
type UnOp int

const (
	Neg UnOp = iota // arithmetic negation: -x
	Not              // bitwise not: ~x
	LNot             // logical not: !x
)

func (op UnOp) String() string {
	switch op {
	case Neg:
		return "-"
	case Not:
		return "~"
	case LNot:
		return "!"
	default:
		return "?unop?"
	}
}

// LitExpr wraps a literal value as an expression.
type LitExpr struct {
	Value Lit
	Sp    source.Span
}

func (e *LitExpr) Span() source.Span { return e.Sp }
func (*LitExpr) exprNode()           {}

// BinaryExpr is `l op r`.
type BinaryExpr struct {
	Op   BinOp
	L, R Expr
	Sp   source.Span
}

func (e *BinaryExpr) Span() source.Span { return e.Sp }
func (*BinaryExpr) exprNode()           {}

// UnaryExpr is `op operand`.
type UnaryExpr struct {
	Op      UnOp
	Operand Expr
	Sp      source.Span
}

func (e *UnaryExpr) Span() source.Span { return e.Sp }
func (*UnaryExpr) exprNode()           {}

// AssignExpr is `target = value`; it is right-associative and does not
// chain (spec.md §4.2 level 1).
type AssignExpr struct {
	Target Expr
	Value  Expr
	Sp     source.Span
}

func (e *AssignExpr) Span() source.Span { return e.Sp }
func (*AssignExpr) exprNode()           {}

// CallExpr is `callee(args...)`.
type CallExpr struct {
	Callee Expr
	Args   []Expr
	Sp     source.Span
}

func (e *CallExpr) Span() source.Span { return e.Sp }
func (*CallExpr) exprNode()           {}

// IdentExpr is a bare identifier reference.
type IdentExpr struct {
	Name string
	Sp   source.Span
}

func (e *IdentExpr) Span() source.Span { return e.Sp }
func (*IdentExpr) exprNode()           {}

// IndexExpr is `base[index]`, the array/pointer subscript production of
// the postfix grammar (spec.md §4.2 level 13, `post_expr`). It has no
// entry in spec.md §3's closed Expr kind list; it is added here to give
// the `"[" expr "]"` postfix production produced by the grammar an AST
// shape to parse into.
type IndexExpr struct {
	Base  Expr
	Index Expr
	Sp    source.Span
}

func (e *IndexExpr) Span() source.Span { return e.Sp }
func (*IndexExpr) exprNode()           {}

// CastExpr is `value as ty`.
type CastExpr struct {
	Value Expr
	Ty    Ty
	Sp    source.Span
}

func (e *CastExpr) Span() source.Span { return e.Sp }
func (*CastExpr) exprNode()           {}

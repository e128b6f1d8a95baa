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

package parser

import (
	"github.com/dal-lang/dalc/ast"
	"github.com/dal-lang/dalc/source"
	"github.com/dal-lang/dalc/token"
)

// parseExpr is the entry point for the 14-level precedence climb of
// spec.md §4.2 ("Expression grammar"), starting at the lowest level,
// assignment.
func (p *parser) parseExpr() (ast.Expr, error) {
	return p.parseAssignExpr()
}

// parseAssignExpr is level 1: `bool_or_expr ("=" bool_or_expr)?`.
// Assignment is right-associative and does not chain — at most one `=`
// is consumed at this level.
func (p *parser) parseAssignExpr() (ast.Expr, error) {
	lhs, err := p.parseOrExpr()
	if err != nil {
		return nil, err
	}
	if !p.check(token.Eq) {
		return lhs, nil
	}
	p.advance()
	rhs, err := p.parseOrExpr()
	if err != nil {
		return nil, err
	}
	return &ast.AssignExpr{Target: lhs, Value: rhs, Sp: source.Merge(lhs.Span(), rhs.Span())}, nil
}

// parseOrExpr is level 2: `bool_and_expr ("||" bool_and_expr)*`.
func (p *parser) parseOrExpr() (ast.Expr, error) {
	return p.parseLeftAssocLevel(p.parseAndExpr, map[token.Kind]ast.BinOp{token.OrOr: ast.Or})
}

// parseAndExpr is level 3: `cmp_expr ("&&" cmp_expr)*`.
func (p *parser) parseAndExpr() (ast.Expr, error) {
	return p.parseLeftAssocLevel(p.parseCmpExpr, map[token.Kind]ast.BinOp{token.AndAnd: ast.And})
}

// parseCmpExpr is level 4: `bit_or_expr (cmp_op bit_or_expr)?`, which is
// non-associative — at most one comparison operator is consumed here.
func (p *parser) parseCmpExpr() (ast.Expr, error) {
	lhs, err := p.parseBitOrExpr()
	if err != nil {
		return nil, err
	}
	op, ok := cmpOps[p.kind()]
	if !ok {
		return lhs, nil
	}
	p.advance()
	rhs, err := p.parseBitOrExpr()
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpr{Op: op, L: lhs, R: rhs, Sp: source.Merge(lhs.Span(), rhs.Span())}, nil
}

var cmpOps = map[token.Kind]ast.BinOp{
	token.EqEq: ast.Eq,
	token.Ne:   ast.Ne,
	token.Lt:   ast.Lt,
	token.Le:   ast.Le,
	token.Gt:   ast.Gt,
	token.Ge:   ast.Ge,
}

// parseBitOrExpr is level 5: `bit_xor_expr ("|" bit_xor_expr)*`.
func (p *parser) parseBitOrExpr() (ast.Expr, error) {
	return p.parseLeftAssocLevel(p.parseBitXorExpr, map[token.Kind]ast.BinOp{token.Pipe: ast.BitOr})
}

// parseBitXorExpr is level 6: `bit_and_expr ("^" bit_and_expr)*`.
func (p *parser) parseBitXorExpr() (ast.Expr, error) {
	return p.parseLeftAssocLevel(p.parseBitAndExpr, map[token.Kind]ast.BinOp{token.Caret: ast.BitXor})
}

// parseBitAndExpr is level 7: `shift_expr ("&" shift_expr)*`.
func (p *parser) parseBitAndExpr() (ast.Expr, error) {
	return p.parseLeftAssocLevel(p.parseShiftExpr, map[token.Kind]ast.BinOp{token.Amp: ast.BitAnd})
}

// parseShiftExpr is level 8: `add_expr (("<<" | ">>") add_expr)*`.
func (p *parser) parseShiftExpr() (ast.Expr, error) {
	return p.parseLeftAssocLevel(p.parseAddExpr, map[token.Kind]ast.BinOp{
		token.Shl: ast.Shl,
		token.Shr: ast.Shr,
	})
}

// parseAddExpr is level 9: `mul_expr (("+" | "-") mul_expr)*`.
func (p *parser) parseAddExpr() (ast.Expr, error) {
	return p.parseLeftAssocLevel(p.parseMulExpr, map[token.Kind]ast.BinOp{
		token.Plus:  ast.Add,
		token.Minus: ast.Sub,
	})
}

// parseMulExpr is level 10: `cast_expr (("*" | "/" | "%") cast_expr)*`.
func (p *parser) parseMulExpr() (ast.Expr, error) {
	return p.parseLeftAssocLevel(p.parseCastExpr, map[token.Kind]ast.BinOp{
		token.Star:    ast.Mul,
		token.Slash:   ast.Div,
		token.Percent: ast.Mod,
	})
}

// parseLeftAssocLevel folds a run of same-precedence left-associative
// binary operators, delegating atoms to next. This is the shape shared
// by grammar levels 2, 3, 5–10 (spec.md §4.2).
func (p *parser) parseLeftAssocLevel(next func() (ast.Expr, error), ops map[token.Kind]ast.BinOp) (ast.Expr, error) {
	lhs, err := next()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := ops[p.kind()]
		if !ok {
			return lhs, nil
		}
		p.advance()
		rhs, err := next()
		if err != nil {
			return nil, err
		}
		lhs = &ast.BinaryExpr{Op: op, L: lhs, R: rhs, Sp: source.Merge(lhs.Span(), rhs.Span())}
	}
}

// parseCastExpr is level 11: `unary_expr ("as" type)?`.
func (p *parser) parseCastExpr() (ast.Expr, error) {
	value, err := p.parseUnaryExpr()
	if err != nil {
		return nil, err
	}
	if !p.check(token.As) {
		return value, nil
	}
	p.advance()
	ty, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &ast.CastExpr{Value: value, Ty: ty, Sp: source.Merge(value.Span(), ty.Span())}, nil
}

var unaryOps = map[token.Kind]ast.UnOp{
	token.Bang:  ast.LNot,
	token.Minus: ast.Neg,
	token.Tilde: ast.Not,
}

// parseUnaryExpr is level 12: `("!" | "-" | "~") unary_expr | post_expr`.
func (p *parser) parseUnaryExpr() (ast.Expr, error) {
	if op, ok := unaryOps[p.kind()]; ok {
		opTok := p.advance()
		operand, err := p.parseUnaryExpr()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: op, Operand: operand, Sp: source.Merge(opTok.Span, operand.Span())}, nil
	}
	return p.parsePostExpr()
}

// parsePostExpr is level 13: `primary_expr ("(" call_args ")" | "[" expr "]")*`.
func (p *parser) parsePostExpr() (ast.Expr, error) {
	base, err := p.parsePrimaryExpr()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.check(token.LParen):
			base, err = p.parseCallTail(base)
		case p.check(token.LBracket):
			base, err = p.parseIndexTail(base)
		default:
			return base, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *parser) parseCallTail(callee ast.Expr) (ast.Expr, error) {
	p.advance() // '('
	var args []ast.Expr
	if !p.check(token.RParen) {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.check(token.Comma) {
				break
			}
			p.advance()
		}
	}
	rparen, err := p.expect(token.RParen)
	if err != nil {
		return nil, err
	}
	return &ast.CallExpr{Callee: callee, Args: args, Sp: source.Merge(callee.Span(), rparen.Span)}, nil
}

func (p *parser) parseIndexTail(base ast.Expr) (ast.Expr, error) {
	p.advance() // '['
	idx, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	rbracket, err := p.expect(token.RBracket)
	if err != nil {
		return nil, err
	}
	return &ast.IndexExpr{Base: base, Index: idx, Sp: source.Merge(base.Span(), rbracket.Span)}, nil
}

// parsePrimaryExpr is level 14: `IntLit | StrLit | "true" | "false" | IDENT | "(" expr ")"`.
func (p *parser) parsePrimaryExpr() (ast.Expr, error) {
	switch {
	case p.check(token.Int):
		t := p.advance()
		return &ast.LitExpr{Value: &ast.IntLit{Raw: p.text(t)}, Sp: t.Span}, nil
	case p.check(token.String):
		t := p.advance()
		value, offsets, err := decodeStringLiteral(p, t)
		if err != nil {
			return nil, err
		}
		return &ast.LitExpr{Value: &ast.StrLit{Value: value, Offsets: offsets}, Sp: t.Span}, nil
	case p.check(token.True):
		t := p.advance()
		return &ast.LitExpr{Value: &ast.BoolLit{Value: true}, Sp: t.Span}, nil
	case p.check(token.False):
		t := p.advance()
		return &ast.LitExpr{Value: &ast.BoolLit{Value: false}, Sp: t.Span}, nil
	case p.check(token.Ident):
		t := p.advance()
		return &ast.IdentExpr{Name: p.text(t), Sp: t.Span}, nil
	case p.check(token.LParen):
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, p.errorf("expected an expression, found %s", p.kind())
	}
}

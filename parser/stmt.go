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

// parseBlock is `"{" stmt* "}"`.
func (p *parser) parseBlock() (*ast.Block, error) {
	lbrace, err := p.expect(token.LBrace)
	if err != nil {
		return nil, err
	}

	var stmts []ast.Stmt
	for !p.check(token.RBrace) {
		if p.atEOF() {
			return nil, p.errorf("expected %s, found %s", token.RBrace, token.EOF)
		}
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	rbrace := p.advance() // '}'

	return &ast.Block{Stmts: stmts, Sp: source.Merge(lbrace.Span, rbrace.Span)}, nil
}

// parseStmt dispatches, in order, to parse_local_decl (starts with
// `let`), parse_block_expr (starts with `if` or `{`), and
// parse_non_block_expr (spec.md §4.2, "Statements in a block").
func (p *parser) parseStmt() (ast.Stmt, error) {
	switch {
	case p.check(token.Let):
		return p.parseLocal()
	case p.check(token.If):
		return p.parseIf()
	case p.check(token.LBrace):
		return p.parseBlock()
	default:
		return p.parseNonBlockExpr()
	}
}

// parseLocal is `"let" ["mut"] IDENT [":" type] ["=" expr]` (spec.md
// §4.2, "`let` grammar"). Omitting `mut` defaults to an immutable
// binding.
func (p *parser) parseLocal() (*ast.Local, error) {
	kw := p.advance() // 'let'
	isConst := true
	if p.check(token.Mut) {
		p.advance()
		isConst = false
	}

	nameTok, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}

	var ty ast.Ty
	if p.check(token.Colon) {
		p.advance()
		ty, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}

	end := nameTok.Span
	if ty != nil {
		end = ty.Span()
	}

	local := &ast.Local{Name: p.text(nameTok), Ty: ty, IsConst: isConst, Kind: ast.Decl}
	if p.check(token.Eq) {
		p.advance()
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		local.Kind = ast.Init
		local.InitVal = value
		end = value.Span()
	}
	local.Sp = source.Merge(kw.Span, end)
	return local, nil
}

// parseIf is `"if" expr block ["else" (if | block)]` (spec.md §4.2, "`if`
// grammar").
func (p *parser) parseIf() (*ast.If, error) {
	kw := p.advance() // 'if'
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	end := then.Sp
	var els ast.ElseKind
	if p.check(token.Else) {
		p.advance()
		if p.check(token.If) {
			els, err = p.parseIf()
		} else {
			els, err = p.parseBlock()
		}
		if err != nil {
			return nil, err
		}
		end = els.Span()
	}

	return &ast.If{Cond: cond, Then: then, Els: els, Sp: source.Merge(kw.Span, end)}, nil
}

// parseNonBlockExpr is a return statement, an assignment, or a bare
// expression (spec.md §4.2, "Statements in a block").
func (p *parser) parseNonBlockExpr() (ast.Stmt, error) {
	if p.check(token.Return) {
		return p.parseReturn()
	}
	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.ExprStmt{X: x, Sp: x.Span()}, nil
}

// parseReturn is `"return" [expr]` (spec.md §4.2, "Return grammar"). A
// bare `return` is legal wherever an expression would be; this implements
// that by checking whether the next token can possibly start one.
func (p *parser) parseReturn() (*ast.ReturnStmt, error) {
	kw := p.advance() // 'return'
	if !canStartExpr(p.kind()) {
		return &ast.ReturnStmt{Sp: kw.Span}, nil
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Value: value, Sp: source.Merge(kw.Span, value.Span())}, nil
}

// canStartExpr reports whether k can be the first token of an expression
// (spec.md §4.2 levels 12–14: unary prefixes and primary_expr). Used to
// tell a bare `return` apart from `return expr` without backtracking.
func canStartExpr(k token.Kind) bool {
	switch k {
	case token.Int, token.String, token.True, token.False, token.Ident, token.LParen,
		token.Bang, token.Minus, token.Tilde:
		return true
	default:
		return false
	}
}

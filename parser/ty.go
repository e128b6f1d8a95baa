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

// parseType implements spec.md §4.2's type grammar:
//
//	type := "*" ("const" | "mut") type
//	      | "[" type ";" expr "]"
//	      | IDENT
//
// Pointer mutability is mandatory and explicit; there is no bare `*T`.
func (p *parser) parseType() (ast.Ty, error) {
	switch {
	case p.check(token.Star):
		return p.parsePointerType()
	case p.check(token.LBracket):
		return p.parseArrayType()
	case p.check(token.Ident):
		nameTok := p.advance()
		return &ast.PrimitiveTy{Name: p.text(nameTok), Sp: nameTok.Span}, nil
	default:
		return nil, p.errorf("expected a type, found %s", p.kind())
	}
}

func (p *parser) parsePointerType() (ast.Ty, error) {
	star := p.advance() // '*'

	var isConst bool
	switch {
	case p.check(token.Const):
		p.advance()
		isConst = true
	case p.check(token.Mut):
		p.advance()
		isConst = false
	default:
		return nil, p.errorf("expected 'const' or 'mut', found %s", p.kind())
	}

	child, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &ast.PointerTy{Child: child, IsConst: isConst, Sp: source.Merge(star.Span, child.Span())}, nil
}

func (p *parser) parseArrayType() (ast.Ty, error) {
	lbracket := p.advance() // '['
	child, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semi); err != nil {
		return nil, err
	}
	size, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	rbracket, err := p.expect(token.RBracket)
	if err != nil {
		return nil, err
	}
	return &ast.ArrayTy{Child: child, Size: size, Sp: source.Merge(lbracket.Span, rbracket.Span)}, nil
}

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

// parseFnDef is `["pub"] "fn" name(params) ["->" ty] block` (spec.md
// §4.2, "Functions").
func (p *parser) parseFnDef() (*ast.FnDef, error) {
	proto, err := p.parseFnProto()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FnDef{Proto: proto, Body: body, Sp: source.Merge(proto.Sp, body.Sp)}, nil
}

// parseFnProto parses the header shared by a function definition and an
// extern-block prototype: `["pub"] "fn" name(params) ["->" ty]`. A
// missing arrow means a void return type (spec.md §4.2, "Functions").
func (p *parser) parseFnProto() (*ast.FnProto, error) {
	vis := ast.Private
	start := p.cur().Span
	if p.check(token.Pub) {
		p.advance()
		vis = ast.Public
	}

	if _, err := p.expect(token.Fn); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	params, err := p.parseFnParams()
	if err != nil {
		return nil, err
	}
	rparen, err := p.expect(token.RParen)
	if err != nil {
		return nil, err
	}

	end := rparen.Span
	var retTy ast.Ty
	if p.check(token.Arrow) {
		p.advance()
		retTy, err = p.parseType()
		if err != nil {
			return nil, err
		}
		end = retTy.Span()
	} else {
		retTy = &ast.PrimitiveTy{Name: ast.Void, Sp: rparen.Span}
	}

	return &ast.FnProto{
		Visibility: vis,
		Name:       p.text(nameTok),
		Params:     params,
		RetTy:      retTy,
		Sp:         source.Merge(start, end),
	}, nil
}

// parseFnParams parses a possibly empty comma-separated `name: ty` list.
func (p *parser) parseFnParams() ([]ast.FnParam, error) {
	var params []ast.FnParam
	if p.check(token.RParen) {
		return params, nil
	}
	for {
		nameTok, err := p.expect(token.Ident)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Colon); err != nil {
			return nil, err
		}
		ty, err := p.parseType()
		if err != nil {
			return nil, err
		}
		params = append(params, ast.FnParam{
			Name: p.text(nameTok),
			Ty:   ty,
			Sp:   source.Merge(nameTok.Span, ty.Span()),
		})
		if !p.check(token.Comma) {
			break
		}
		p.advance()
	}
	return params, nil
}

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

// Package parser is a recursive-descent, precedence-climbing parser: it
// turns a token.Stream into a single ast.Root, or fails on the first
// unexpected token (spec.md §4.2). There is no error-recovery mode; every
// parsing function returns a plain Go error on failure and the caller is
// expected to give up immediately, per spec.md §9 ("a language-neutral
// design returns a result type from every fallible parser entry point").
package parser

import (
	"github.com/dal-lang/dalc/ast"
	"github.com/dal-lang/dalc/report"
	"github.com/dal-lang/dalc/source"
	"github.com/dal-lang/dalc/token"
)

// parser holds the cursor over a filtered (whitespace/comment-free)
// token slice for a single file.
type parser struct {
	file *source.File
	toks []token.Token
	pos  int
}

// Parse tokenizes nothing itself: it takes the stream already lexed from
// file, keeps only its significant tokens (Stream.Significant), and
// produces a Root, or the first syntax error encountered.
func Parse(file *source.File, stream token.Stream) (*ast.Root, error) {
	p := &parser{file: file, toks: stream.Significant()}
	return p.parseRoot()
}

func (p *parser) cur() token.Token {
	return p.toks[p.pos]
}

func (p *parser) kind() token.Kind {
	return p.cur().Kind
}

func (p *parser) atEOF() bool {
	return p.kind() == token.EOF
}

// advance consumes and returns the current token.
func (p *parser) advance() token.Token {
	t := p.toks[p.pos]
	if t.Kind != token.EOF {
		p.pos++
	}
	return t
}

func (p *parser) check(k token.Kind) bool {
	return p.kind() == k
}

// expect consumes the current token if it has kind k, otherwise returns
// a syntax error naming what was expected (spec.md §4.2, "Parser failure
// semantics").
func (p *parser) expect(k token.Kind) (token.Token, error) {
	if !p.check(k) {
		return token.Token{}, p.errorf("expected %s, found %s", k, p.kind())
	}
	return p.advance(), nil
}

func (p *parser) errorf(format string, args ...any) error {
	return report.Errorf(p.file, p.cur().Span, format, args...)
}

func (p *parser) errorfAt(span source.Span, format string, args ...any) error {
	return report.Errorf(p.file, span, format, args...)
}

// text returns the raw lexeme of t.
func (p *parser) text(t token.Token) string {
	return t.Text(p.file)
}

// parseRoot implements the top-level loop of spec.md §4.2: repeatedly
// try parse_fn_def, parse_import, parse_extern in order (top-level
// comments never reach the parser — see SPEC_FULL.md's open-question
// decision on §9.3 — so parse_comment has no token to dispatch on and is
// omitted) until end-of-file.
func (p *parser) parseRoot() (*ast.Root, error) {
	start := p.cur().Span
	var items []ast.Item

	for !p.atEOF() {
		var item ast.Item
		var err error

		switch {
		case p.check(token.Fn) || p.check(token.Pub):
			item, err = p.parseFnDef()
		case p.check(token.Import):
			item, err = p.parseImport()
		case p.check(token.Extern):
			item, err = p.parseExternBlock()
		default:
			return nil, p.errorf("expected a function, import, or extern block, found %s", p.kind())
		}
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	end := p.cur().Span
	return &ast.Root{Items: items, Sp: source.Merge(start, end)}, nil
}

// parseImport is `import "path"`.
func (p *parser) parseImport() (*ast.Import, error) {
	kw := p.advance() // 'import'
	strTok, err := p.expect(token.String)
	if err != nil {
		return nil, err
	}
	value, _, err := decodeStringLiteral(p, strTok)
	if err != nil {
		return nil, err
	}
	return &ast.Import{Path: value, Sp: source.Merge(kw.Span, strTok.Span)}, nil
}

// parseExternBlock is `extern { proto* }`.
func (p *parser) parseExternBlock() (*ast.ExternBlock, error) {
	kw := p.advance() // 'extern'
	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}

	var protos []*ast.FnProto
	for !p.check(token.RBrace) {
		if p.atEOF() {
			return nil, p.errorf("expected %s, found %s", token.RBrace, token.EOF)
		}
		proto, err := p.parseFnProto()
		if err != nil {
			return nil, err
		}
		protos = append(protos, proto)
	}
	closeBrace := p.advance() // '}'

	return &ast.ExternBlock{Protos: protos, Sp: source.Merge(kw.Span, closeBrace.Span)}, nil
}

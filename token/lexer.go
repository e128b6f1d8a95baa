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

package token

import (
	"fmt"

	"github.com/dal-lang/dalc/source"
)

// LexError is the single failure mode a Lexer can report: an unexpected
// character, anchored at that character, or an unterminated string
// literal, anchored at its opening quote (spec §4.1, §7).
type LexError struct {
	Pos source.Pos
	Msg string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Col, e.Msg)
}

// Lexer is a deterministic, character-driven state machine that turns a
// source.File's text into a flat token Stream. It is restartable in the
// sense that Tokenize can be called exactly once per Lexer and always
// leaves behind the partial Stream produced before a LexError, per the
// "partial token list is preserved" contract in spec §4.1.
type Lexer struct {
	file *source.File
	data []byte
	pos  int
	line int
	col  int
}

// NewLexer creates a Lexer over file's text.
func NewLexer(file *source.File) *Lexer {
	return &Lexer{file: file, data: file.Text(), line: 1, col: 1}
}

func (l *Lexer) eof() bool { return l.pos >= len(l.data) }

func (l *Lexer) peek() byte {
	if l.eof() {
		return 0
	}
	return l.data[l.pos]
}

func (l *Lexer) peekAt(n int) byte {
	if l.pos+n >= len(l.data) {
		return 0
	}
	return l.data[l.pos+n]
}

// advance consumes one byte, updating the running line/col cursor and, on
// a newline, recording the new line's start offset in the owning file.
func (l *Lexer) advance() byte {
	c := l.data[l.pos]
	l.pos++
	if c == '\n' {
		l.line++
		l.col = 1
		l.file.AddLine(l.pos)
	} else {
		l.col++
	}
	return c
}

func (l *Lexer) here() source.Pos {
	return source.Pos{Line: l.line, Col: l.col, Offset: l.pos}
}

func (l *Lexer) spanFrom(start source.Pos) source.Span {
	end := l.here()
	return source.Span{
		StartLine: start.Line, StartCol: start.Col, StartOffset: start.Offset,
		EndLine: end.Line, EndOffset: end.Offset,
	}
}

func isAlpha(c byte) bool { return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlnum(c byte) bool { return isAlpha(c) || isDigit(c) }

// Tokenize scans l's file end to end and returns the resulting Stream. On
// a LexError, the Stream returned contains every token successfully
// produced before the error (spec §4.1: "a lexical error stops emission
// but the partial token list up to the error is preserved").
func (l *Lexer) Tokenize() (Stream, error) {
	var out Stream
	for {
		start := l.here()
		if l.eof() {
			out.Tokens = append(out.Tokens, Token{Kind: EOF, Span: source.Span{
				StartLine: start.Line, StartCol: start.Col, StartOffset: start.Offset,
				EndLine: start.Line, EndOffset: start.Offset,
			}})
			return out, nil
		}

		c := l.peek()
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			l.lexWhitespaceRun(&out)
		case c == '\n':
			l.advance()
			// The newline belongs to the line it terminates, so its token
			// does not span into the next line.
			sp := l.spanFrom(start)
			sp.EndLine = start.Line
			out.Tokens = append(out.Tokens, Token{Kind: Whitespace, Span: sp})
		case isAlpha(c):
			l.lexIdent(&out, start)
		case isDigit(c):
			l.lexNumber(&out, start)
		case c == '"':
			if err := l.lexString(&out, start); err != nil {
				return out, err
			}
		case c == '/' && l.peekAt(1) == '/':
			l.lexLineComment(&out, start)
		default:
			if err := l.lexSymbol(&out, start); err != nil {
				return out, err
			}
		}
	}
}

// lexWhitespaceRun consumes a maximal run of space/tab/'\r' that does not
// cross a newline, so that (per spec §4.1) no Whitespace token spans a
// newline.
func (l *Lexer) lexWhitespaceRun(out *Stream) {
	start := l.here()
	for !l.eof() {
		c := l.peek()
		if c != ' ' && c != '\t' && c != '\r' {
			break
		}
		l.advance()
	}
	out.Tokens = append(out.Tokens, Token{Kind: Whitespace, Span: l.spanFrom(start)})
}

func (l *Lexer) lexIdent(out *Stream, start source.Pos) {
	for !l.eof() && isAlnum(l.peek()) {
		l.advance()
	}
	lexeme := string(l.data[start.Offset:l.pos])
	kind := Ident
	if kw, ok := IsKeyword(lexeme); ok {
		kind = kw
	}
	out.Tokens = append(out.Tokens, Token{Kind: kind, Span: l.spanFrom(start)})
}

func (l *Lexer) lexNumber(out *Stream, start source.Pos) {
	for !l.eof() && isDigit(l.peek()) {
		l.advance()
	}
	out.Tokens = append(out.Tokens, Token{Kind: Int, Span: l.spanFrom(start)})
}

func (l *Lexer) lexString(out *Stream, start source.Pos) error {
	l.advance() // opening quote
	for {
		if l.eof() {
			return &LexError{Pos: start, Msg: "unterminated string literal"}
		}
		c := l.peek()
		if c == '\n' {
			return &LexError{Pos: start, Msg: "unterminated string literal"}
		}
		if c == '\\' {
			l.advance()
			if l.eof() {
				return &LexError{Pos: start, Msg: "unterminated string literal"}
			}
			l.advance() // escaped byte; the parser interprets escapes later
			continue
		}
		if c == '"' {
			l.advance()
			break
		}
		l.advance()
	}
	out.Tokens = append(out.Tokens, Token{Kind: String, Span: l.spanFrom(start)})
	return nil
}

func (l *Lexer) lexLineComment(out *Stream, start source.Pos) {
	l.advance() // first '/'
	l.advance() // second '/'
	for !l.eof() && l.peek() != '\n' {
		l.advance()
	}
	out.Tokens = append(out.Tokens, Token{Kind: Comment, Span: l.spanFrom(start)})
}

// lexSymbol handles every remaining single- and two-character operator and
// punctuation token, including the one-lookahead states spec §4.1 calls
// out by name (Eq/EqEq, Bang/Ne, Lt/Le/Shl, Gt/Ge/Shr, Amp/AndAnd,
// Pipe/OrOr, Minus/Arrow).
func (l *Lexer) lexSymbol(out *Stream, start source.Pos) error {
	c := l.advance()
	kind, ok := singleCharKind(c)
	if !ok {
		return &LexError{Pos: start, Msg: fmt.Sprintf("unexpected character %q", c)}
	}

	switch c {
	case '=':
		kind = l.twoChar('=', Eq, EqEq)
	case '!':
		kind = l.twoChar('=', Bang, Ne)
	case '<':
		switch l.peek() {
		case '=':
			l.advance()
			kind = Le
		case '<':
			l.advance()
			kind = Shl
		default:
			kind = Lt
		}
	case '>':
		switch l.peek() {
		case '=':
			l.advance()
			kind = Ge
		case '>':
			l.advance()
			kind = Shr
		default:
			kind = Gt
		}
	case '&':
		kind = l.twoChar('&', Amp, AndAnd)
	case '|':
		kind = l.twoChar('|', Pipe, OrOr)
	case '-':
		kind = l.twoChar('>', Minus, Arrow)
	case '.':
		kind = l.twoChar('.', Dot, DotDot)
	}

	out.Tokens = append(out.Tokens, Token{Kind: kind, Span: l.spanFrom(start)})
	return nil
}

// twoChar consumes `next` if it immediately follows, returning `two`;
// otherwise it returns `one` and leaves the cursor untouched.
func (l *Lexer) twoChar(next byte, one, two Kind) Kind {
	if l.peek() == next {
		l.advance()
		return two
	}
	return one
}

func singleCharKind(c byte) (Kind, bool) {
	switch c {
	case '+':
		return Plus, true
	case '-':
		return Minus, true
	case '*':
		return Star, true
	case '/':
		return Slash, true
	case '%':
		return Percent, true
	case '&':
		return Amp, true
	case '|':
		return Pipe, true
	case '^':
		return Caret, true
	case '~':
		return Tilde, true
	case '=':
		return Eq, true
	case '!':
		return Bang, true
	case '<':
		return Lt, true
	case '>':
		return Gt, true
	case '(':
		return LParen, true
	case ')':
		return RParen, true
	case '{':
		return LBrace, true
	case '}':
		return RBrace, true
	case '[':
		return LBracket, true
	case ']':
		return RBracket, true
	case ',':
		return Comma, true
	case ';':
		return Semi, true
	case ':':
		return Colon, true
	case '.':
		return Dot, true
	default:
		return Unknown, false
	}
}

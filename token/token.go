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

import "github.com/dal-lang/dalc/source"

// Token is a tagged value: a Kind plus the Span it occupies in its source
// file. Token never owns a copy of its text; callers slice it out of the
// owning source.File using the Span.
type Token struct {
	Kind Kind
	Span source.Span
}

// Text returns the raw lexeme for this token, sliced out of file.
func (t Token) Text(file *source.File) string {
	return string(file.Text()[t.Span.StartOffset:t.Span.EndOffset])
}

// Stream is the restartable, ordered sequence of tokens a Lexer produces,
// always terminated by exactly one EOF token (spec §4.1).
type Stream struct {
	Tokens []Token
}

// Significant returns the tokens of s with Whitespace and Comment filtered
// out, the shape the parser consumes (spec §4.1: "callers apply a filter
// for whitespace and comments before feeding the parser").
func (s Stream) Significant() []Token {
	out := make([]Token, 0, len(s.Tokens))
	for _, t := range s.Tokens {
		if t.Kind == Whitespace || t.Kind == Comment {
			continue
		}
		out = append(out, t)
	}
	return out
}

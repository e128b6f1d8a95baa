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

package source

// Span is a half-open source range: [StartOffset, EndOffset). Every token
// and every AST node carries one.
type Span struct {
	StartLine, StartCol int
	StartOffset         int
	EndLine             int
	EndOffset           int
}

// Merge returns the smallest span covering both a and b.
func Merge(a, b Span) Span {
	m := a
	if b.StartOffset < a.StartOffset {
		m.StartLine, m.StartCol, m.StartOffset = b.StartLine, b.StartCol, b.StartOffset
	}
	if b.EndOffset > a.EndOffset {
		m.EndLine, m.EndOffset = b.EndLine, b.EndOffset
	}
	return m
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int { return s.EndOffset - s.StartOffset }

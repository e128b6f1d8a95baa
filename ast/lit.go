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

// Lit is implemented by *IntLit, *StrLit, *BoolLit.
type Lit interface {
	litNode()
}

// IntLit stores the raw decimal lexeme; the tokenizer does not evaluate
// it, and higher bases / floats are out of the current grammar (spec.md
// §4.1).
type IntLit struct {
	Raw string
}

func (*IntLit) litNode() {}

// StrLit is a string literal after the parser has decoded its escapes
// (spec.md §4.2, "String literal interpretation"). Offsets, when non-nil,
// maps each byte of Value back to the source line/column of the
// originating input byte; it is only populated for inline-assembly
// template literals (spec.md §4.2).
type StrLit struct {
	Value   string
	Offsets []OffsetEntry
}

func (*StrLit) litNode() {}

// OffsetEntry records, for one decoded byte of a StrLit.Value, the
// source position of the input byte it came from.
type OffsetEntry struct {
	Line, Col int
}

// BoolLit is `true` or `false`.
type BoolLit struct {
	Value bool
}

func (*BoolLit) litNode() {}

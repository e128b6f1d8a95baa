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

// Package intern provides a simple string-interning table.
//
// dalc uses it to dedupe the identifier spellings that recur throughout a
// single compilation (the function and parameter names of the prototypes
// semantic pre-analysis walks) so that
// later passes can compare them by a cheap integer ID rather than by string
// content.
package intern

// ID identifies an interned string within a particular [Table].
//
// The zero ID always corresponds to the empty string.
type ID int32

// Table is an interning table.
//
// A compilation owns exactly one Table (on its [github.com/dal-lang/dalc/codegen.Context]);
// it is never accessed from more than one goroutine, so unlike a
// general-purpose interner it carries no locking.
type Table struct {
	index map[string]ID
	table []string
}

// Intern returns the ID for s, assigning it a fresh one if s has not been
// seen by this table before.
func (t *Table) Intern(s string) ID {
	if s == "" {
		return 0
	}
	if id, ok := t.index[s]; ok {
		return id
	}
	t.table = append(t.table, s)
	id := ID(len(t.table))
	if t.index == nil {
		t.index = make(map[string]ID)
	}
	t.index[s] = id
	return id
}

// Value returns the string that id was assigned by Intern.
//
// Calling Value with an ID from a different Table is undefined behavior.
func (t *Table) Value(id ID) string {
	if id == 0 {
		return ""
	}
	return t.table[int(id)-1]
}

// Len returns the number of distinct non-empty strings interned so far.
func (t *Table) Len() int {
	return len(t.table)
}

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

package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dal-lang/dalc/imports"
	"github.com/dal-lang/dalc/report"
)

func TestAnalyzeRegistersProtosAndInternsNames(t *testing.T) {
	table := imports.New(nil)
	src := `extern { pub fn write(fd: i32, buf: *const u8) -> isize }`
	_, err := table.AddCode("main", []byte(src))
	require.NoError(t, err)

	ctx := New(table)
	handler := report.NewHandler()
	ctx.Analyze(handler)

	assert.Empty(t, handler.Diagnostics())
	require.Len(t, ctx.FnProtos, 1)
	fe, ok := ctx.Global["write"]
	require.True(t, ok)
	assert.Same(t, fe, ctx.FnProtos[0])

	// Every prototype and parameter name Analyze sees is interned
	// exactly once, regardless of how many times it recurs.
	assert.Equal(t, 3, ctx.Names.Len())
	writeID := ctx.Names.Intern("write")
	fdID := ctx.Names.Intern("fd")
	bufID := ctx.Names.Intern("buf")
	assert.NotEqual(t, writeID, fdID)
	assert.NotEqual(t, fdID, bufID)
	assert.Equal(t, "write", ctx.Names.Value(writeID))
}

func TestNextNodeIDIsMonotonicAndUnique(t *testing.T) {
	ctx := New(imports.New(nil))
	a := ctx.NextNodeID()
	b := ctx.NextNodeID()
	assert.NotEqual(t, a, b)
	assert.Less(t, a, b)
}

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

package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dal-lang/dalc/imports"
	"github.com/dal-lang/dalc/internal/intern"
	"github.com/dal-lang/dalc/report"
)

func analyzeSource(t *testing.T, src string) (*TypeTable, map[string]*imports.FuncEntry, []*imports.FuncEntry, *report.Handler) {
	t.Helper()
	table := imports.New(nil)
	_, err := table.AddCode("main", []byte(src))
	require.NoError(t, err)

	types := NewTypeTable()
	global := make(map[string]*imports.FuncEntry)
	handler := report.NewHandler()
	discovered := Analyze(types, table, global, &intern.Table{}, handler)
	return types, global, discovered, handler
}

func TestAnalyzeRegistersPublicExternPrototypeGlobally(t *testing.T) {
	src := `extern { pub fn write(fd: i32, buf: *const u8, len: isize) -> isize }`
	_, global, discovered, handler := analyzeSource(t, src)

	assert.Empty(t, handler.Diagnostics())
	require.Len(t, discovered, 1)
	fe, ok := global["write"]
	require.True(t, ok)
	assert.True(t, fe.IsExtern)
	assert.Equal(t, imports.CCallConv, fe.CallConv)
}

func TestAnalyzePrivateExternPrototypeNotInGlobalTable(t *testing.T) {
	src := `extern { fn helper(x: i32) -> i32 }`
	_, global, discovered, handler := analyzeSource(t, src)

	assert.Empty(t, handler.Diagnostics())
	require.Len(t, discovered, 1)
	_, ok := global["helper"]
	assert.False(t, ok)
}

func TestAnalyzeRegistersIntoOwningEntrysPerFileTable(t *testing.T) {
	src := `extern { fn helper(x: i32) -> i32 }`
	table := imports.New(nil)
	_, err := table.AddCode("main", []byte(src))
	require.NoError(t, err)

	types := NewTypeTable()
	global := make(map[string]*imports.FuncEntry)
	handler := report.NewHandler()
	Analyze(types, table, global, &intern.Table{}, handler)

	entry, ok := table.Lookup("main")
	require.True(t, ok)
	fe, ok := entry.Funcs["helper"]
	require.True(t, ok)
	assert.Same(t, fe.Owner, entry)
}

func TestAnalyzeUnknownPrimitiveIsDiagnosed(t *testing.T) {
	src := `extern { fn f(x: u7) -> i32 }`
	_, _, _, handler := analyzeSource(t, src)

	require.Len(t, handler.Diagnostics(), 1)
	assert.Contains(t, handler.Diagnostics()[0].Message, `unknown type "u7"`)
}

func TestAnalyzeVoidParamOnlyDiagnosedWhenPublic(t *testing.T) {
	pub := `extern { pub fn f(x: void) -> i32 }`
	_, _, _, pubHandler := analyzeSource(t, pub)
	require.Len(t, pubHandler.Diagnostics(), 1)
	assert.Contains(t, pubHandler.Diagnostics()[0].Message, "void parameter")

	priv := `extern { fn f(x: void) -> i32 }`
	_, _, _, privHandler := analyzeSource(t, priv)
	assert.Empty(t, privHandler.Diagnostics())
}

func TestAnalyzeArrayParamWithIntegerLiteralSizeIsAccepted(t *testing.T) {
	src := `extern { fn f(x: [i32; 4]) -> i32 }`
	types, _, _, handler := analyzeSource(t, src)
	assert.Empty(t, handler.Diagnostics())

	i32, _ := types.Primitive(I32)
	arr := types.GetArrayType(i32, 4)
	assert.Equal(t, "[i32; 4]", arr.Name)
}

func TestAnalyzePointerParamResolvesChildAndCaches(t *testing.T) {
	src := `extern { fn f(x: *const u8) -> *mut u8 }`
	types, _, _, handler := analyzeSource(t, src)
	assert.Empty(t, handler.Diagnostics())

	u8, _ := types.Primitive(U8)
	constPtr := types.GetPointerToType(u8, true)
	mutPtr := types.GetPointerToType(u8, false)
	assert.NotSame(t, constPtr, mutPtr)
}

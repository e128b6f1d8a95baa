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

package imports

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFS lets tests hand the resolver an in-memory set of "files"
// rather than touching the real filesystem.
type fakeFS map[string][]byte

func (fs fakeFS) read(path string) ([]byte, error) {
	if data, ok := fs[path]; ok {
		return data, nil
	}
	return nil, os.ErrNotExist
}

func newTestTable(fs fakeFS, searchPaths ...string) *Table {
	r := &Resolver{SearchPaths: searchPaths, Read: fs.read}
	return New(r)
}

func TestAddCodeRejectsReVisitingAPath(t *testing.T) {
	fs := fakeFS{}
	tbl := newTestTable(fs, "/root")

	_, err := tbl.AddCode("main", []byte(`fn f() {}`))
	require.NoError(t, err)

	_, err = tbl.AddCode("main", []byte(`fn g() {}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "main")
}

func TestResolveImportIsANoOpWhenAlreadyVisited(t *testing.T) {
	fs := fakeFS{
		"/root/util.dal": []byte(`fn helper() {}`),
	}
	tbl := newTestTable(fs, "/root")

	_, err := tbl.AddCode("util", fs["/root/util.dal"])
	require.NoError(t, err)

	// A second file importing the same path must not re-visit it or
	// error: resolveImport checks Lookup before ever calling AddCode.
	_, err = tbl.AddCode("main", []byte(`import "util" fn f() {}`))
	require.NoError(t, err)

	assert.Len(t, tbl.Entries(), 2)
}

func TestImportCycleResolvesBothSidesExactlyOnce(t *testing.T) {
	fs := fakeFS{
		"/root/a.dal": []byte(`import "b" fn f() {}`),
		"/root/b.dal": []byte(`import "a" fn g() {}`),
	}
	tbl := newTestTable(fs, "/root")

	_, err := tbl.AddCode("a", fs["/root/a.dal"])
	require.NoError(t, err)

	a, ok := tbl.Lookup("a")
	require.True(t, ok)
	b, ok := tbl.Lookup("b")
	require.True(t, ok)

	assert.Len(t, tbl.Entries(), 2)
	assert.NotNil(t, a.Root)
	assert.NotNil(t, b.Root)
}

func TestImportFallsThroughToLaterSearchPath(t *testing.T) {
	fs := fakeFS{
		"/std/util.dal": []byte(`fn helper() {}`),
	}
	tbl := newTestTable(fs, "/root", "/std")

	_, err := tbl.AddCode("main", []byte(`import "util" fn f() {}`))
	require.NoError(t, err)

	_, ok := tbl.Lookup("util")
	assert.True(t, ok)
}

func TestImportNotFoundInAnySearchPathIsHardError(t *testing.T) {
	fs := fakeFS{}
	tbl := newTestTable(fs, "/root", "/std")

	_, err := tbl.AddCode("main", []byte(`import "missing" fn f() {}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestBootstrapLoadedExactlyOnceWhenPubMainSeen(t *testing.T) {
	fs := fakeFS{
		"/std/bootstrap.dal": []byte(`fn __init() {}`),
	}
	tbl := newTestTable(fs, "/root", "/std")

	_, err := tbl.AddCode("main", []byte(`pub fn main() { return }`))
	require.NoError(t, err)

	_, ok := tbl.Lookup("bootstrap")
	assert.True(t, ok, "bootstrap should be loaded when a pub fn main was seen")
	assert.True(t, tbl.bootstrapLoaded)
	assert.Len(t, tbl.Entries(), 2, "main and a single bootstrap entry")
}

func TestBootstrapNotLoadedWithoutPubMain(t *testing.T) {
	fs := fakeFS{
		"/std/bootstrap.dal": []byte(`fn __init() {}`),
	}
	tbl := newTestTable(fs, "/root", "/std")

	_, err := tbl.AddCode("main", []byte(`fn main() {}`))
	require.NoError(t, err)

	_, ok := tbl.Lookup("bootstrap")
	assert.False(t, ok)
}

func TestOtherIOErrorsAbortImmediately(t *testing.T) {
	boom := assertError("disk on fire")
	r := &Resolver{
		SearchPaths: []string{"/root"},
		Read: func(path string) ([]byte, error) {
			return nil, boom
		},
	}
	tbl := New(r)

	_, err := tbl.AddCode("main", []byte(`import "x" fn f() {}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}

type assertError string

func (e assertError) Error() string { return string(e) }

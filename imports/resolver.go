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
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileReader abstracts reading a resolved path's bytes, the same way the
// teacher's SourceResolver.Accessor lets a resolver read from something
// other than the OS filesystem (in-memory fixtures, an archive). The
// default, DefaultReader, is backed by os.ReadFile.
type FileReader func(path string) ([]byte, error)

// DefaultReader reads files directly off the OS filesystem.
func DefaultReader(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Resolver turns an import path written in source (e.g. "std" or
// "util/list") into file bytes, by trying each of SearchPaths in order
// and appending the ".dal" suffix (spec.md §4.3, "Resolution"). It is
// grounded directly on bufbuild/protocompile's resolver.go
// SourceResolver.FindFileByPath: an ordered path list, os.IsNotExist
// causing fallthrough to the next entry, and any other I/O error
// aborting immediately.
type Resolver struct {
	SearchPaths []string
	Read        FileReader
}

// NewResolver builds a Resolver whose search-path order is the root
// source directory followed by the standard-library directory
// (spec.md §4.3: "the root file's own directory is searched first,
// then the standard library directory").
func NewResolver(rootDir, stdDir string) *Resolver {
	return &Resolver{
		SearchPaths: []string{rootDir, stdDir},
		Read:        DefaultReader,
	}
}

// ErrNotFound is returned (wrapped with the attempted path, via
// errors.Is-compatible wrapping) when no search path entry has the
// requested import.
var ErrNotFound = errors.New("import not found in any search path")

// Resolve locates relPath (without its ".dal" suffix) against every
// search path in order, returning the first hit's full path and
// contents. A not-exist error on one entry falls through to the next;
// any other I/O error aborts resolution immediately, matching
// FindFileByPath's os.IsNotExist check.
func (r *Resolver) Resolve(relPath string) (fullPath string, data []byte, err error) {
	name := relPath + ".dal"
	for _, dir := range r.SearchPaths {
		candidate := filepath.Join(dir, name)
		data, err := r.Read(candidate)
		if err == nil {
			return candidate, data, nil
		}
		if os.IsNotExist(err) {
			continue
		}
		return "", nil, fmt.Errorf("reading %s: %w", candidate, err)
	}
	return "", nil, fmt.Errorf("%s: %w", relPath, ErrNotFound)
}

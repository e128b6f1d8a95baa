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
	"fmt"

	"github.com/dal-lang/dalc/ast"
	"github.com/dal-lang/dalc/parser"
	"github.com/dal-lang/dalc/report"
	"github.com/dal-lang/dalc/source"
	"github.com/dal-lang/dalc/token"
)

const bootstrapRelPath = "bootstrap"

// AddCode lexes and parses the bytes at relPath, inserts the resulting
// Entry into the table before scanning its own Import items (spec.md
// §4.3: "a path is reserved in the table before its imports are walked,
// so a cycle is detected by table membership rather than a visited
// set"), and recursively resolves each import it names. relPath is the
// source-relative path used both as the table key and as the file's
// display name in diagnostics.
//
// Calling AddCode a second time with a path already present in the
// table is an error (spec.md §4.3: "overwriting is an error: a path is
// visited once"); callers that merely want "load this import if it
// isn't already loaded" go through resolveImport, which checks Lookup
// itself before ever calling AddCode.
//
// The outermost call additionally loads the standard-library bootstrap
// file exactly once, after every import has been resolved, if and only
// if a `pub fn main` was observed anywhere in the graph (spec.md §4.3,
// "Bootstrap injection"). Re-entrant calls made while resolving nested
// imports skip this step; only the call that brought t.depth back to 0
// performs it.
func (t *Table) AddCode(relPath string, src []byte) (*Entry, error) {
	if _, ok := t.Lookup(relPath); ok {
		return nil, fmt.Errorf("imports: %q already visited", relPath)
	}

	t.depth++
	defer func() { t.depth-- }()

	e, err := t.parseAndRegister(relPath, src)
	if err != nil {
		return nil, err
	}

	for _, item := range e.Root.Items {
		imp, ok := item.(*ast.Import)
		if !ok {
			continue
		}
		if _, _, err := t.resolveImport(e.File, imp); err != nil {
			return nil, err
		}
	}

	if t.depth == 1 && t.sawPubMain && !t.bootstrapLoaded {
		if err := t.loadBootstrap(); err != nil {
			return nil, err
		}
	}

	return e, nil
}

func (t *Table) parseAndRegister(relPath string, src []byte) (*Entry, error) {
	file := source.New(relPath, relPath, src)
	stream, err := token.NewLexer(file).Tokenize()
	if err != nil {
		return nil, err
	}
	root, err := parser.Parse(file, stream)
	if err != nil {
		return nil, err
	}

	e, owner := t.insert(relPath, Entry{
		Path:  relPath,
		File:  file,
		Funcs: make(map[string]*FuncEntry),
	})
	root.Owner = owner
	e.Root = root

	if hasPubMain(root) {
		t.sawPubMain = true
	}
	return e, nil
}

func hasPubMain(root *ast.Root) bool {
	for _, item := range root.Items {
		def, ok := item.(*ast.FnDef)
		if ok && def.Proto.Visibility == ast.Public && def.Proto.Name == "main" {
			return true
		}
	}
	return false
}

// resolveImport loads the file named by imp if it has not already been
// visited. fromFile is the importing file, used only to anchor a
// resolution failure at the right diagnostic location. The returned
// bool is true when this call actually performed the load, false when
// the entry already existed.
func (t *Table) resolveImport(fromFile *source.File, imp *ast.Import) (*Entry, bool, error) {
	if e, ok := t.Lookup(imp.Path); ok {
		return e, false, nil
	}
	if t.resolver == nil {
		return nil, false, fmt.Errorf("imports: no resolver configured for %q", imp.Path)
	}
	_, data, err := t.resolver.Resolve(imp.Path)
	if err != nil {
		return nil, false, report.Errorf(fromFile, imp.Sp, "cannot resolve import %q: %v", imp.Path, err)
	}
	e, err := t.AddCode(imp.Path, data)
	return e, true, err
}

// loadBootstrap loads the standard-library bootstrap file exactly once.
// It is not gated by the table's ordinary not-found handling because a
// missing bootstrap file is always a hard configuration error, never a
// recoverable one (spec.md §4.3).
func (t *Table) loadBootstrap() error {
	t.bootstrapLoaded = true
	if t.resolver == nil {
		return fmt.Errorf("imports: no resolver configured to load bootstrap")
	}
	_, data, err := t.resolver.Resolve(bootstrapRelPath)
	if err != nil {
		return fmt.Errorf("imports: loading bootstrap: %w", err)
	}
	_, err = t.parseAndRegister(bootstrapRelPath, data)
	return err
}

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

// Package report implements the two-channel error model of the dal
// front-end: lexical and syntactic errors are fatal on first occurrence
// (spec.md §7, "Propagation"), while semantic errors accumulate in a
// Handler and are rendered together at the end of pre-analysis.
package report

import (
	"fmt"

	"github.com/dal-lang/dalc/source"
)

// Severity distinguishes a hard error from a warning. The core never
// produces warnings today, but the renderer supports both, matching
// the teacher's own reporter.WarningReporter split.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "Warning"
	}
	return "Error"
}

// Diagnostic is a single error or warning anchored at a span in a
// specific source file (spec.md §7, "User-visible behavior": "every
// error has a single file/line/column anchor").
type Diagnostic struct {
	File     *source.File
	Span     source.Span
	Severity Severity
	Message  string
}

// Error implements the error interface so a Diagnostic can be returned
// directly from any fallible parser or resolver entry point.
func (d *Diagnostic) Error() string {
	pos := d.File.Locate(d.Span.StartOffset)
	return fmt.Sprintf("%s:%d:%d: %s: %s", d.File.DisplayName(), pos.Line, pos.Col, d.Severity, d.Message)
}

// Errorf builds a Diagnostic at the given span with a formatted message.
func Errorf(file *source.File, span source.Span, format string, args ...any) *Diagnostic {
	return &Diagnostic{File: file, Span: span, Severity: SeverityError, Message: fmt.Sprintf(format, args...)}
}

// Warningf builds a warning Diagnostic at the given span.
func Warningf(file *source.File, span source.Span, format string, args ...any) *Diagnostic {
	return &Diagnostic{File: file, Span: span, Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)}
}

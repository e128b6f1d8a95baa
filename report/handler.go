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

package report

// Handler collects semantic diagnostics during pre-analysis without
// aborting the walk (spec.md §4.4, "Error accumulation"; §7,
// "Propagation"). It carries no mutex, unlike the teacher's
// reporter.Handler: the front-end runs on a single thread end to end
// (spec.md §5, "Scheduling"), so the concurrency guard would be dead
// weight here.
type Handler struct {
	diags []*Diagnostic
}

// NewHandler returns an empty Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Report records a diagnostic without aborting the current pass.
func (h *Handler) Report(d *Diagnostic) {
	h.diags = append(h.diags, d)
}

// Diagnostics returns every diagnostic reported so far, in report order.
func (h *Handler) Diagnostics() []*Diagnostic {
	return h.diags
}

// HasErrors reports whether any diagnostic of SeverityError was recorded.
func (h *Handler) HasErrors() bool {
	for _, d := range h.diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

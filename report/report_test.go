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

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dal-lang/dalc/source"
)

func TestHandlerCollectsWithoutAborting(t *testing.T) {
	h := NewHandler()
	f := source.New("a.dal", "a.dal", []byte("fn f(x: u7) {}"))
	h.Report(Errorf(f, source.Span{StartOffset: 8, EndOffset: 10}, "Unknown type %q", "u7"))
	require.True(t, h.HasErrors())
	require.Len(t, h.Diagnostics(), 1)
	assert.Contains(t, h.Diagnostics()[0].Error(), "Unknown type \"u7\"")
}

func TestHandlerNoErrorsWhenEmpty(t *testing.T) {
	h := NewHandler()
	assert.False(t, h.HasErrors())
}

func TestRenderPlainFormat(t *testing.T) {
	f := source.New("a.dal", "a.dal", []byte("let x = 1;\n"))
	d := Errorf(f, source.Span{StartLine: 1, StartCol: 9, StartOffset: 8, EndOffset: 9}, "unexpected token")

	var buf bytes.Buffer
	Renderer{Colorize: false}.Render(&buf, d)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "a.dal:1:9 Error: unexpected token", lines[0])
	assert.Equal(t, "let x = 1;", lines[1])
	assert.Equal(t, strings.Repeat(" ", 8)+"^", lines[2])
}

func TestRenderColorWrapsHeaderInAnsi(t *testing.T) {
	f := source.New("a.dal", "a.dal", []byte("x\n"))
	d := Errorf(f, source.Span{StartLine: 1, StartCol: 1, StartOffset: 0, EndOffset: 1}, "boom")

	var buf bytes.Buffer
	Renderer{Colorize: true}.Render(&buf, d)
	assert.True(t, strings.HasPrefix(buf.String(), ansiBold+ansiRed))
}

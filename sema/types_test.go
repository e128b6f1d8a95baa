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
)

func TestPrimitivesInternedAtConstruction(t *testing.T) {
	types := NewTypeTable()

	for _, name := range []string{Invalid, Void, Bool, U8, I32, ISize, F32} {
		e, ok := types.Primitive(name)
		require.True(t, ok, name)
		assert.Equal(t, name, e.Name)
	}

	i32, _ := types.Primitive(I32)
	assert.Equal(t, 32, i32.SizeBits)
	assert.Equal(t, 32, i32.AlignBits)

	isize, _ := types.Primitive(ISize)
	assert.Equal(t, types.PointerSizeBits, isize.SizeBits)
}

func TestGetPointerToTypeCachesByChildAndConstness(t *testing.T) {
	types := NewTypeTable()
	u8, _ := types.Primitive(U8)

	p1 := types.GetPointerToType(u8, true)
	p2 := types.GetPointerToType(u8, true)
	assert.Same(t, p1, p2)
	assert.Equal(t, "*const u8", p1.Name)

	mut := types.GetPointerToType(u8, false)
	assert.NotSame(t, p1, mut)
	assert.Equal(t, "*mut u8", mut.Name)
}

func TestGetArrayTypeCachesByChildAndSize(t *testing.T) {
	types := NewTypeTable()
	i32, _ := types.Primitive(I32)

	a1 := types.GetArrayType(i32, 4)
	a2 := types.GetArrayType(i32, 4)
	assert.Same(t, a1, a2)
	assert.Equal(t, "[i32; 4]", a1.Name)
	assert.Equal(t, i32.SizeBits*4, a1.SizeBits)
	assert.Equal(t, i32.AlignBits, a1.AlignBits)

	a3 := types.GetArrayType(i32, 8)
	assert.NotSame(t, a1, a3)
}

func TestPointerOverDistinctChildrenIsDistinct(t *testing.T) {
	types := NewTypeTable()
	u8, _ := types.Primitive(U8)
	i32, _ := types.Primitive(I32)

	pu8 := types.GetPointerToType(u8, true)
	pi32 := types.GetPointerToType(i32, true)
	assert.NotSame(t, pu8, pi32)
}

package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dal-lang/dalc/internal/arena"
)

func TestArenaGrowthAndLookup(t *testing.T) {
	var a arena.Arena[int]

	var ptrs []arena.Pointer[int]
	for i := 0; i < 200; i++ {
		ptrs = append(ptrs, a.New(i))
	}

	for i, p := range ptrs {
		require.False(t, p.Nil())
		assert.Equal(t, i, *p.In(&a))
	}
}

func TestNilPointer(t *testing.T) {
	var p arena.Pointer[string]
	assert.True(t, p.Nil())
}

package intern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dal-lang/dalc/internal/intern"
)

func TestInternRoundTrip(t *testing.T) {
	var tab intern.Table

	a := tab.Intern("foo")
	b := tab.Intern("bar")
	c := tab.Intern("foo")

	assert.Equal(t, a, c, "interning the same string twice must return the same ID")
	assert.NotEqual(t, a, b)

	require.Equal(t, "foo", tab.Value(a))
	require.Equal(t, "bar", tab.Value(b))
}

func TestInternEmptyString(t *testing.T) {
	var tab intern.Table
	assert.Equal(t, intern.ID(0), tab.Intern(""))
	assert.Equal(t, "", tab.Value(0))
	assert.Equal(t, 0, tab.Len())
}

package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry[string]()

	r.Register(0, "ignored")
	assert.Equal(t, 0, r.Len())

	r.Register(5, "a")
	r.Register(5, "b")
	v, ok := r.Lookup(5)
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = r.Lookup(6)
	assert.False(t, ok)

	v, ok = r.Unregister(5)
	assert.True(t, ok)
	assert.Equal(t, "b", v)
	assert.Equal(t, 0, r.Len())

	_, ok = r.Unregister(5)
	assert.False(t, ok)
}

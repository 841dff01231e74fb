package cocoa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1broseidon/winlayer/internal/window"
)

func TestRoutes_AdoptedViewReachedThroughWindow(t *testing.T) {
	r := newRoutes[string]()
	const view, win window.Handle = 0x2000, 0x1000
	r.bind(view, win, "adopted")

	got, ok := r.byWindow(win)
	require.True(t, ok, "callbacks name the NSWindow, not the view")
	assert.Equal(t, "adopted", got)

	_, ok = r.byWindow(view)
	assert.False(t, ok)

	got, ok = r.byHandle(view)
	require.True(t, ok)
	assert.Equal(t, "adopted", got)

	w, ok := r.window(view)
	require.True(t, ok)
	assert.Equal(t, win, w)
}

func TestRoutes_OwnedWindowIsItsOwnKey(t *testing.T) {
	r := newRoutes[string]()
	r.bind(0x30, 0x30, "owned")

	got, ok := r.byWindow(0x30)
	require.True(t, ok)
	assert.Equal(t, "owned", got)
}

func TestRoutes_Unbind(t *testing.T) {
	r := newRoutes[string]()
	r.bind(0x20, 0x10, "adopted")

	v, win, ok := r.unbind(0x20)
	require.True(t, ok)
	assert.Equal(t, "adopted", v)
	assert.Equal(t, window.Handle(0x10), win)

	_, ok = r.byWindow(0x10)
	assert.False(t, ok)
	_, _, ok = r.unbind(0x20)
	assert.False(t, ok)
}

func TestRoutes_ZeroHandlesIgnored(t *testing.T) {
	r := newRoutes[string]()
	r.bind(0, 0x10, "x")
	r.bind(0x10, 0, "x")
	_, ok := r.byWindow(0x10)
	assert.False(t, ok)
}

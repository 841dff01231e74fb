package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1broseidon/winlayer/internal/event"
)

func TestMatchMode(t *testing.T) {
	modes := []VideoMode{{Width: 1920, Height: 1080}, {Width: 1280, Height: 720}, {Width: 1280, Height: 720, BitsPerPixel: 16}}

	assert.Equal(t, 0, MatchMode(modes, VideoMode{Width: 1920, Height: 1080, BitsPerPixel: 32}))
	assert.Equal(t, 1, MatchMode(modes, VideoMode{Width: 1280, Height: 720}))
	assert.Equal(t, -1, MatchMode(modes, VideoMode{Width: 1281, Height: 720}))
	assert.Equal(t, -1, MatchMode(nil, VideoMode{Width: 1, Height: 1}))
}

func TestFullscreen_SecondAcquirerTakesOver(t *testing.T) {
	d := newFakeDriver()
	m := newTestManager(d)

	a := m.Create(VideoMode{Width: 1280, Height: 720}, "a", StyleFullscreen, nil)
	require.True(t, a.FullscreenOwner())

	b := m.Create(VideoMode{Width: 800, Height: 600}, "b", StyleFullscreen, nil)
	assert.True(t, b.FullscreenOwner())
	assert.False(t, a.FullscreenOwner())
	assert.Same(t, b, m.FullscreenOwner())
	assert.Equal(t, []int{1, 2}, d.switched)

	// b saved the mode a had switched to.
	b.Close()
	require.Len(t, d.restored, 1)
	assert.Equal(t, 1, d.restored[0].Index)
	assert.Nil(t, m.FullscreenOwner())

	a.Close()
	assert.Len(t, d.restored, 1, "a non-owner must not restore")
}

func TestFullscreen_NoMatchingModeStaysWindowed(t *testing.T) {
	d := newFakeDriver()
	m := newTestManager(d)

	w := m.Create(VideoMode{Width: 1024, Height: 768}, "w", StyleFullscreen, nil)
	assert.True(t, w.Valid())
	assert.False(t, w.FullscreenOwner())
	assert.Empty(t, d.switched)

	w.Close()
	assert.Empty(t, d.restored)
}

func TestFullscreen_UnavailableStaysWindowed(t *testing.T) {
	d := newFakeDriver()
	d.noModeSwitch = true
	m := newTestManager(d)

	w := m.Create(VideoMode{Width: 1280, Height: 720}, "w", StyleFullscreen, nil)
	assert.False(t, w.FullscreenOwner())
	assert.Nil(t, m.FullscreenOwner())
	assert.Empty(t, d.switched)
}

func TestFullscreen_DestroyNotificationRestores(t *testing.T) {
	d := newFakeDriver()
	m := newTestManager(d)
	q := event.NewQueue()

	w := m.Create(VideoMode{Width: 1280, Height: 720}, "w", StyleFullscreen, q)
	require.True(t, w.FullscreenOwner())

	d.queue(w.SystemHandle(), Notification{Kind: NotifyDestroy})
	w.ProcessEvents()
	assert.Nil(t, m.FullscreenOwner())
	require.Len(t, d.restored, 1)
	assert.Equal(t, 0, d.restored[0].Index)
	assert.Equal(t, 0, q.Len(), "destroy must not produce an event")

	w.Close()
	assert.Len(t, d.restored, 1)
}

func TestFullscreen_DestroyAmongGeometry(t *testing.T) {
	d := newFakeDriver()
	m := newTestManager(d)
	q := event.NewQueue()

	w := m.Create(VideoMode{Width: 1280, Height: 720}, "w", StyleFullscreen, q)
	require.True(t, w.FullscreenOwner())

	d.queue(w.SystemHandle(),
		geometry(1280, 720),
		Notification{Kind: NotifyDestroy},
		geometry(1024, 600),
	)
	w.ProcessEvents()

	assert.Nil(t, m.FullscreenOwner())
	assert.Len(t, d.restored, 1)
	assert.Equal(t, []event.Event{event.Resized{Width: 1024, Height: 600}}, q.Drain())
}

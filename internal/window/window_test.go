package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1broseidon/winlayer/internal/event"
)

func newTestManager(d *fakeDriver) *Manager {
	return NewManager(d, Options{})
}

func TestCreate_CentersAndDecorates(t *testing.T) {
	d := newFakeDriver()
	m := newTestManager(d)

	w := m.Create(VideoMode{Width: 800, Height: 600, BitsPerPixel: 32}, "events", StyleDefault, event.NewQueue())
	require.True(t, w.Valid())
	require.Len(t, d.created, 1)

	p := d.created[0]
	assert.Equal(t, Point{X: 560, Y: 240}, p.Position)
	assert.Equal(t, Size{Width: 800, Height: 600}, p.Size)
	assert.Equal(t, "events", p.Title)
	assert.False(t, p.Fullscreen)

	assert.Equal(t, 1, d.count("decorate 100 titlebar|resize|close"))
	assert.Equal(t, 1, d.count("subscribe-close 100"))
	assert.True(t, d.visible[100])
	assert.True(t, w.Owned())
	assert.Equal(t, 1, m.OwnedWindows())
}

func TestCreate_FullscreenSkipsDecorationsAndUsesOrigin(t *testing.T) {
	d := newFakeDriver()
	m := newTestManager(d)

	w := m.Create(VideoMode{Width: 1280, Height: 720}, "fs", StyleFullscreen, nil)
	require.True(t, w.Valid())
	assert.Equal(t, Point{}, d.created[0].Position)
	assert.True(t, d.created[0].Fullscreen)
	assert.Equal(t, 0, d.count("decorate 100 fullscreen"))

	// The display switch happens before the native window exists.
	require.GreaterOrEqual(t, len(d.calls), 2)
	assert.Equal(t, "switch 1", d.calls[1])
	assert.Equal(t, "create", d.calls[2])
	assert.True(t, w.FullscreenOwner())
}

func TestCreate_FailureLeavesInertWindow(t *testing.T) {
	d := newFakeDriver()
	d.failCreate = true
	m := newTestManager(d)
	q := event.NewQueue()

	w := m.Create(VideoMode{Width: 640, Height: 480}, "x", StyleDefault, q)
	assert.False(t, w.Valid())
	assert.Equal(t, Handle(0), w.SystemHandle())
	assert.Equal(t, Point{}, w.Position())
	assert.Equal(t, Size{}, w.Size())

	w.SetTitle("ignored")
	w.SetPosition(Point{X: 1, Y: 1})
	w.SetSize(Size{Width: 1, Height: 1})
	w.SetVisible(true)
	w.SetIcon(1, 1, []byte{1, 2, 3, 4})
	w.ProcessEvents()
	w.Notify(Notification{Kind: NotifyCloseRequest})
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, []string{"register-class", "create"}, d.calls)

	w.Close()
	assert.Empty(t, d.destroyed)
	assert.Equal(t, 0, m.OwnedWindows())
	assert.Equal(t, 1, d.unregister)
}

func TestSetVisible_Idempotent(t *testing.T) {
	d := newFakeDriver()
	m := newTestManager(d)
	w := m.Create(VideoMode{Width: 320, Height: 200}, "v", StyleDefault, nil)

	before := d.count("visible 100 true")
	w.SetVisible(true)
	w.SetVisible(true)
	assert.Equal(t, before, d.count("visible 100 true"))
	assert.True(t, w.Visible())

	w.SetVisible(false)
	w.SetVisible(false)
	assert.Equal(t, 1, d.count("visible 100 false"))
	assert.False(t, d.visible[100])
}

func TestControlSurface_Forwards(t *testing.T) {
	d := newFakeDriver()
	m := newTestManager(d)
	w := m.Create(VideoMode{Width: 320, Height: 200}, "v", StyleDefault, nil)

	w.SetPosition(Point{X: 5, Y: 6})
	w.SetSize(Size{Width: 300, Height: 100})
	w.SetTitle("renamed")

	assert.Equal(t, 1, d.count("move 100 5,6"))
	assert.Equal(t, 1, d.count("resize 100 300x100"))
	assert.Equal(t, 1, d.count("title 100 renamed"))
	assert.Equal(t, Point{X: 10, Y: 20}, w.Position())
	assert.Equal(t, Size{Width: 320, Height: 200}, w.Size())
}

func TestSetIcon_ConvertsAndValidates(t *testing.T) {
	d := newFakeDriver()
	m := newTestManager(d)
	w := m.Create(VideoMode{Width: 320, Height: 200}, "v", StyleDefault, nil)

	w.SetIcon(2, 1, []byte{10, 20, 30, 255, 1, 2, 3, 0})
	require.Len(t, d.icons, 1)
	assert.Equal(t, []byte{30, 20, 10, 255, 3, 2, 1, 0}, d.icons[0].BGRA)
	assert.Equal(t, []byte{0x01}, d.icons[0].Mask)

	w.SetIcon(2, 2, []byte{1, 2, 3})
	assert.Len(t, d.icons, 1, "short pixel buffers are rejected")
}

func TestAdopt_NullHandleIsInert(t *testing.T) {
	d := newFakeDriver()
	m := newTestManager(d)
	q := event.NewQueue()

	w := m.Adopt(0, q)
	assert.False(t, w.Valid())
	w.ProcessEvents()
	w.Close()
	assert.Empty(t, d.calls)
	assert.Equal(t, 0, q.Len())
}

func TestAdopt_DoesNotDestroyButDetaches(t *testing.T) {
	d := newFakeDriver()
	d.sizes[42] = Size{Width: 500, Height: 400}
	m := newTestManager(d)

	w := m.Adopt(42, nil)
	require.True(t, w.Valid())
	assert.False(t, w.Owned())
	assert.Equal(t, 0, m.OwnedWindows())
	assert.Equal(t, 0, d.registered)
	assert.Equal(t, 0, d.count("decorate 42 none"))

	w.Close()
	assert.Equal(t, []Handle{42}, d.detached)
	assert.Empty(t, d.destroyed)
	assert.Equal(t, 0, d.unregister)
}

func TestAdopt_FailureIsInert(t *testing.T) {
	d := newFakeDriver()
	d.failAdopt = true
	m := newTestManager(d)

	w := m.Adopt(42, nil)
	assert.False(t, w.Valid())
	w.Close()
	assert.Empty(t, d.detached)
}

func TestAdopt_LastSizeSuppressesUnchangedGeometry(t *testing.T) {
	d := newFakeDriver()
	d.sizes[42] = Size{Width: 500, Height: 400}
	m := newTestManager(d)
	q := event.NewQueue()

	w := m.Adopt(42, q)
	d.queue(42, Notification{Kind: NotifyGeometry, Size: Size{Width: 500, Height: 400}})
	w.ProcessEvents()
	assert.Equal(t, 0, q.Len())
}

func TestClose_OwnedOrderAndIdempotence(t *testing.T) {
	d := newFakeDriver()
	m := newTestManager(d)
	w := m.Create(VideoMode{Width: 1280, Height: 720}, "fs", StyleFullscreen, nil)
	d.calls = nil

	w.Close()
	w.Close()
	assert.Equal(t, []string{"detach 100", "restore 0", "destroy 100", "unregister-class"}, d.calls)
	assert.False(t, w.Valid())
	assert.Nil(t, m.FullscreenOwner())
}

func TestClassRegistration_TracksOwnedWindowsOnly(t *testing.T) {
	d := newFakeDriver()
	d.sizes[7] = Size{Width: 10, Height: 10}
	m := newTestManager(d)

	a := m.Create(VideoMode{Width: 100, Height: 100}, "a", StyleDefault, nil)
	b := m.Create(VideoMode{Width: 100, Height: 100}, "b", StyleDefault, nil)
	ext := m.Adopt(7, nil)
	assert.Equal(t, 1, d.registered)
	assert.Equal(t, 2, m.OwnedWindows())

	a.Close()
	ext.Close()
	assert.Equal(t, 0, d.unregister)

	b.Close()
	assert.Equal(t, 1, d.unregister)

	c := m.Create(VideoMode{Width: 100, Height: 100}, "c", StyleDefault, nil)
	assert.Equal(t, 2, d.registered)
	c.Close()
	assert.Equal(t, 2, d.unregister)
}

// offsetDriver reports a primary display that does not start at the
// desktop origin.
type offsetDriver struct {
	*fakeDriver
	origin Point
}

func (d offsetDriver) ScreenOrigin() Point { return d.origin }

func TestCreate_CentersOnOffsetPrimary(t *testing.T) {
	d := newFakeDriver()
	m := NewManager(offsetDriver{fakeDriver: d, origin: Point{X: 1920, Y: 0}}, Options{})

	w := m.Create(VideoMode{Width: 800, Height: 600}, "right", StyleDefault, nil)
	require.True(t, w.Valid())
	assert.Equal(t, Point{X: 1920 + 560, Y: 240}, d.created[0].Position)
}

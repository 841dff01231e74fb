package window

import (
	"errors"
	"fmt"
)

// fakeDriver records native calls so the shared state machine can be tested
// without a window system.
type fakeDriver struct {
	suppressDrag bool
	noModeSwitch bool
	modes        []VideoMode
	failCreate   bool
	failAdopt    bool
	screen       Size

	nextHandle Handle
	current    int
	receivers  map[Handle]Receiver
	sizes      map[Handle]Size
	pending    map[Handle][]Notification

	calls      []string
	created    []CreateParams
	destroyed  []Handle
	detached   []Handle
	icons      []Icon
	visible    map[Handle]bool
	restored   []ModeToken
	switched   []int
	registered int
	unregister int
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		screen:     Size{Width: 1920, Height: 1080},
		modes:      []VideoMode{{Width: 1920, Height: 1080, BitsPerPixel: 32}, {Width: 1280, Height: 720, BitsPerPixel: 32}, {Width: 800, Height: 600, BitsPerPixel: 32}},
		nextHandle: 100,
		receivers:  make(map[Handle]Receiver),
		sizes:      make(map[Handle]Size),
		pending:    make(map[Handle][]Notification),
		visible:    make(map[Handle]bool),
	}
}

var _ Driver = (*fakeDriver)(nil)
var _ ClassRegistrar = (*fakeDriver)(nil)

func (d *fakeDriver) record(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *fakeDriver) Name() string     { return "fake" }
func (d *fakeDriver) ScreenSize() Size { return d.screen }

func (d *fakeDriver) ApplyDecorationPolicy(h Handle, style Style, size Size) error {
	d.record("decorate %d %s", h, style)
	return nil
}

func (d *fakeDriver) EnumerateDisplayModes() ([]VideoMode, error) {
	return d.modes, nil
}

func (d *fakeDriver) SuppressDuringDrag() bool { return d.suppressDrag }

func (d *fakeDriver) ModeSwitchAvailable() bool { return !d.noModeSwitch }

func (d *fakeDriver) CurrentMode() (ModeToken, error) {
	return ModeToken{Index: d.current}, nil
}

func (d *fakeDriver) SwitchMode(index int, mode VideoMode) error {
	d.record("switch %d", index)
	d.switched = append(d.switched, index)
	d.current = index
	return nil
}

func (d *fakeDriver) RestoreMode(tok ModeToken) error {
	d.record("restore %d", tok.Index)
	d.restored = append(d.restored, tok)
	d.current = tok.Index
	return nil
}

func (d *fakeDriver) ReleaseMode(ModeToken) {}

func (d *fakeDriver) RegisterClass() error {
	d.record("register-class")
	d.registered++
	return nil
}

func (d *fakeDriver) UnregisterClass() error {
	d.record("unregister-class")
	d.unregister++
	return nil
}

func (d *fakeDriver) Create(p CreateParams, r Receiver) (Handle, error) {
	d.record("create")
	if d.failCreate {
		return 0, errors.New("no display")
	}
	h := d.nextHandle
	d.nextHandle++
	d.created = append(d.created, p)
	d.receivers[h] = r
	d.sizes[h] = p.Size
	return h, nil
}

func (d *fakeDriver) Adopt(h Handle, r Receiver) error {
	d.record("adopt %d", h)
	if d.failAdopt {
		return errors.New("bad window")
	}
	d.receivers[h] = r
	return nil
}

func (d *fakeDriver) Detach(h Handle) {
	d.record("detach %d", h)
	d.detached = append(d.detached, h)
	delete(d.receivers, h)
}

func (d *fakeDriver) Destroy(h Handle) error {
	d.record("destroy %d", h)
	d.destroyed = append(d.destroyed, h)
	return nil
}

func (d *fakeDriver) SubscribeClose(h Handle) error {
	d.record("subscribe-close %d", h)
	return nil
}

func (d *fakeDriver) Flush() {}

// Pump delivers queued notifications in order, like a poll/drain backend.
func (d *fakeDriver) Pump(h Handle) {
	queued := d.pending[h]
	delete(d.pending, h)
	r := d.receivers[h]
	for _, n := range queued {
		if r != nil {
			r.Notify(n)
		}
	}
}

func (d *fakeDriver) queue(h Handle, n ...Notification) {
	d.pending[h] = append(d.pending[h], n...)
}

func (d *fakeDriver) Position(h Handle) (Point, error) { return Point{X: 10, Y: 20}, nil }

func (d *fakeDriver) Size(h Handle) (Size, error) {
	s, ok := d.sizes[h]
	if !ok {
		return Size{}, errors.New("unknown window")
	}
	return s, nil
}

func (d *fakeDriver) Move(h Handle, p Point) error {
	d.record("move %d %d,%d", h, p.X, p.Y)
	return nil
}

func (d *fakeDriver) Resize(h Handle, s Size) error {
	d.record("resize %d %s", h, s)
	return nil
}

func (d *fakeDriver) SetTitle(h Handle, title string) error {
	d.record("title %d %s", h, title)
	return nil
}

func (d *fakeDriver) SetIcon(h Handle, icon Icon) error {
	d.record("icon %d", h)
	d.icons = append(d.icons, icon)
	return nil
}

func (d *fakeDriver) SetVisible(h Handle, visible bool) error {
	d.record("visible %d %t", h, visible)
	d.visible[h] = visible
	return nil
}

func (d *fakeDriver) count(call string) int {
	n := 0
	for _, c := range d.calls {
		if c == call {
			n++
		}
	}
	return n
}

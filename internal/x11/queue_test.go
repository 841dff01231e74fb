package x11

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQueue struct {
	entries []xgbutil.EventOrError
	fills   int
}

func (q *fakeQueue) Fill() { q.fills++ }

func (q *fakeQueue) Peek() []xgbutil.EventOrError {
	cpy := make([]xgbutil.EventOrError, len(q.entries))
	copy(cpy, q.entries)
	return cpy
}

func (q *fakeQueue) DequeueAt(i int) {
	q.entries = append(q.entries[:i], q.entries[i+1:]...)
}

func configure(win xproto.Window, w, h uint16) xgbutil.EventOrError {
	return xgbutil.EventOrError{Event: xproto.ConfigureNotifyEvent{Event: win, Window: win, Width: w, Height: h}}
}

func TestNextFor_LeavesOtherWindowsQueued(t *testing.T) {
	q := &fakeQueue{entries: []xgbutil.EventOrError{
		configure(2, 10, 10),
		configure(1, 20, 20),
		configure(2, 30, 30),
		configure(1, 40, 40),
	}}

	var got []uint16
	for {
		entry, ok := nextFor(q, 1)
		if !ok {
			break
		}
		got = append(got, entry.Event.(xproto.ConfigureNotifyEvent).Width)
	}
	assert.Equal(t, []uint16{20, 40}, got)

	require.Len(t, q.entries, 2)
	assert.Equal(t, uint16(10), q.entries[0].Event.(xproto.ConfigureNotifyEvent).Width)
	assert.Equal(t, uint16(30), q.entries[1].Event.(xproto.ConfigureNotifyEvent).Width)
}

func TestNextFor_LeavesForeignAndWindowlessEntriesQueued(t *testing.T) {
	q := &fakeQueue{entries: []xgbutil.EventOrError{
		configure(7, 10, 10),
		{Event: xproto.MappingNotifyEvent{}},
		configure(1, 20, 20),
		{Err: fakeError{id: 7}},
		{Err: fakeError{id: 1}},
	}}

	var got []xgbutil.EventOrError
	for {
		entry, ok := nextFor(q, 1)
		if !ok {
			break
		}
		got = append(got, entry)
	}
	require.Len(t, got, 2)
	assert.Equal(t, uint16(20), got[0].Event.(xproto.ConfigureNotifyEvent).Width)
	assert.Error(t, got[1].Err)

	require.Len(t, q.entries, 3, "window 7, windowless and window 7 error entries remain")
	assert.Equal(t, xproto.Window(7), q.entries[0].Event.(xproto.ConfigureNotifyEvent).Window)
	assert.IsType(t, xproto.MappingNotifyEvent{}, q.entries[1].Event)
	assert.Equal(t, fakeError{id: 7}, q.entries[2].Err)
}

func TestNextFor_Empty(t *testing.T) {
	_, ok := nextFor(&fakeQueue{}, 1)
	assert.False(t, ok)
}

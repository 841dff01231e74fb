//go:build darwin

package cocoa

import (
	"testing"

	"github.com/ebitengine/purego/objc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDelegate_RespondsToEveryNotification(t *testing.T) {
	del, err := newDelegate()
	require.NoError(t, err)
	require.NotZero(t, del)
	defer del.Send(selRelease)

	for _, d := range delegateNotifications {
		assert.True(t, respondsTo(del, objc.RegisterName(d.selector)), d.selector)
	}
	assert.True(t, respondsTo(del, selWindowShouldClose))

	// A second window reuses the registered class.
	again, err := newDelegate()
	require.NoError(t, err)
	defer again.Send(selRelease)
	selClass := objc.RegisterName("class")
	assert.Equal(t, del.Send(selClass), again.Send(selClass))
}

func TestShouldClose_UntrackedWindowCloses(t *testing.T) {
	assert.True(t, shouldClose(0, selWindowShouldClose, objc.ID(0x1234)))
}

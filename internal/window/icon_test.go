package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBGRA(t *testing.T) {
	assert.Equal(t, []byte{30, 20, 10, 255}, ToBGRA([]byte{10, 20, 30, 255}))
	assert.Empty(t, ToBGRA(nil))
}

func TestAlphaMask(t *testing.T) {
	mask := AlphaMask(2, 1, []byte{0, 0, 0, 0, 0, 0, 0, 255})
	assert.Equal(t, []byte{0x02}, mask)

	// A 9 pixel row needs two bytes.
	px := make([]byte, 9*4)
	px[8*4+3] = 1
	assert.Equal(t, []byte{0x00, 0x01}, AlphaMask(9, 1, px))
}

func TestNewIcon_Validation(t *testing.T) {
	_, err := NewIcon(0, 4, nil)
	assert.Error(t, err)

	_, err = NewIcon(2, 2, make([]byte, 15))
	assert.Error(t, err)

	icon, err := NewIcon(1, 2, []byte{1, 2, 3, 4, 5, 6, 7, 0})
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 2, 1, 4, 7, 6, 5, 0}, icon.BGRA)
	assert.Equal(t, []byte{0x01, 0x00}, icon.Mask)
	assert.Equal(t, 1, icon.MaskStride())
}

func TestPackMask(t *testing.T) {
	mask := []byte{0x05, 0x02} // 3x2: row0 = x0,x2 ; row1 = x1

	assert.Equal(t, []byte{0x05, 0x02}, PackMask(mask, 3, 2, 1, false, false))
	assert.Equal(t, []byte{0x05, 0, 0x02, 0}, PackMask(mask, 3, 2, 2, false, false))
	assert.Equal(t, []byte{0xA0, 0x40}, PackMask(mask, 3, 2, 1, false, true))
	assert.Equal(t, []byte{0x02, 0x05}, PackMask(mask, 3, 2, 1, true, false))
	assert.Equal(t, []byte{0x40, 0, 0xA0, 0}, PackMask(mask, 3, 2, 2, true, true))
}

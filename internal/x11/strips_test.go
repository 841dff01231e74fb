package x11

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageStrips_CoverEveryRowUnderLimit(t *testing.T) {
	// 256x256 BGRA against the 256 KiB default request ceiling.
	limit := requestLimit(65535)
	stride := 256 * 4

	strips, err := imageStrips(256, stride, limit)
	require.NoError(t, err)
	require.Greater(t, len(strips), 1)

	next := 0
	for _, s := range strips {
		assert.Equal(t, next, s.y)
		assert.LessOrEqual(t, putImageHeader+s.rows*stride, limit)
		next += s.rows
	}
	assert.Equal(t, 256, next)
}

func TestImageStrips_SmallImageIsOneStrip(t *testing.T) {
	strips, err := imageStrips(32, 32*4, requestLimit(65535))
	require.NoError(t, err)
	assert.Equal(t, []strip{{y: 0, rows: 32}}, strips)
}

func TestImageStrips_RowWiderThanLimit(t *testing.T) {
	_, err := imageStrips(4, 1024, 512)
	assert.Error(t, err)
}

func TestImageStrips_Empty(t *testing.T) {
	strips, err := imageStrips(0, 16, 1024)
	require.NoError(t, err)
	assert.Empty(t, strips)
}

func TestNetWMIconFits(t *testing.T) {
	limit := requestLimit(65535)
	assert.True(t, netWMIconFits(128, 128, limit))
	assert.False(t, netWMIconFits(256, 256, limit))
}

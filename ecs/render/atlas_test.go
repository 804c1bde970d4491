package render

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func TestPlaceholderLayout(t *testing.T) {
	img := Placeholder(colornames.Hotpink, 32, 48)
	assert.Equal(t, image.Rect(0, 0, 128, 432), img.Bounds())

	a, err := NewAtlas("test", img, 32, 48)
	require.NoError(t, err)
	assert.Equal(t, 36, a.Cells())

	r, ok := a.Cell(0)
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 32, 48), r)

	// walk frame 1 facing left: 1*4 + 4 + 3
	r, ok = a.Cell(11)
	require.True(t, ok)
	assert.Equal(t, image.Rect(96, 96, 128, 144), r)

	_, ok = a.Cell(36)
	assert.False(t, ok)
	_, ok = a.Cell(-1)
	assert.False(t, ok)
}

func TestPlaceholderShowsSide(t *testing.T) {
	img := Placeholder(colornames.Steelblue, 32, 48)

	count := func(col int) int {
		n := 0
		for y := 0; y < 48; y++ {
			for x := col * 32; x < (col+1)*32; x++ {
				if img.RGBAAt(x, y) == colornames.Black {
					n++
				}
			}
		}
		return n
	}

	assert.Equal(t, 8, count(0), "front shows two eyes")
	assert.Equal(t, 4, count(1))
	assert.Equal(t, 0, count(2), "back shows none")
	assert.Equal(t, 4, count(3))
}

func TestNewAtlasRejectsBadCells(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	_, err := NewAtlas("small", img, 32, 32)
	assert.Error(t, err)
	_, err = NewAtlas("zero", img, 0, 16)
	assert.Error(t, err)
	_, err = NewAtlas("nil", nil, 16, 16)
	assert.Error(t, err)
}

func TestLoadAtlasPlaceholder(t *testing.T) {
	a, err := LoadAtlas(PlaceholderPrefix+"saddlebrown", "", 32, 48)
	require.NoError(t, err)
	assert.Same(t, a, GetAtlas(PlaceholderPrefix+"saddlebrown"))

	_, err = LoadAtlas(PlaceholderPrefix+"notacolor", "", 32, 48)
	assert.ErrorIs(t, err, ErrUnknownColor)

	_, err = LoadAtlas("missing.png", t.TempDir(), 32, 48)
	assert.Error(t, err)
}

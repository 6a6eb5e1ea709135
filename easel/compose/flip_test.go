package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-easel/easel/raster"
)

// sample builds a 3x2 image with distinct pixels and a few transform codes.
func sample() *raster.Image {
	img := raster.NewImage(3, 2)
	img.Fill(0)
	copy(img.Pixels(), []uint8{1, 2, 3, 4, 5, 6})
	img.Transform()[1] = raster.TransformSkip
	img.Transform()[5] = raster.TransformShadow4
	return img
}

func TestFlip(t *testing.T) {
	tests := []struct {
		name         string
		horizontally bool
		vertically   bool
		pixels       []uint8
	}{
		{name: "none", pixels: []uint8{1, 2, 3, 4, 5, 6}},
		{name: "horizontal", horizontally: true, pixels: []uint8{3, 2, 1, 6, 5, 4}},
		{name: "vertical", vertically: true, pixels: []uint8{4, 5, 6, 1, 2, 3}},
		{name: "both", horizontally: true, vertically: true, pixels: []uint8{6, 5, 4, 3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := sample()
			out := Flip(in, tt.horizontally, tt.vertically)
			assert.Equal(t, tt.pixels, out.Pixels())

			again := Flip(out, tt.horizontally, tt.vertically)
			assert.Equal(t, in.Pixels(), again.Pixels())
			assert.Equal(t, in.Transform(), again.Transform())
		})
	}

	assert.True(t, Flip(raster.NewImage(0, 0), true, true).Empty())
}

func TestFlipRegionClipsMirrored(t *testing.T) {
	out := raster.NewImage(2, 2)
	out.Reset()

	// the mirrored source is shifted up and left by one, only the first
	// two columns of its top row remain visible
	FlipRegion(sample(), 0, 0, out, -1, -1, 3, 2, true, true)

	assert.Equal(t, []uint8{2, 1}, out.Pixels()[:2])
	assert.Equal(t, []uint8{raster.TransformSkip, raster.TransformOpaque}, out.Transform()[:2])
	assert.Equal(t, []uint8{raster.TransformSkip, raster.TransformSkip}, out.Transform()[2:])
}

func TestTranspose(t *testing.T) {
	in := sample()
	out := raster.NewImage(0, 0)

	Transpose(in, out)
	require.Equal(t, 2, out.Width())
	require.Equal(t, 3, out.Height())
	assert.Equal(t, []uint8{1, 4, 2, 5, 3, 6}, out.Pixels())

	back := raster.NewImage(0, 0)
	Transpose(out, back)
	assert.Equal(t, in.Pixels(), back.Pixels())
	assert.Equal(t, in.Transform(), back.Transform())
}

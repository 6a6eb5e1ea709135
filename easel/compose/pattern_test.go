package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/go-easel/easel/palette"
	"github.com/valerio/go-easel/easel/raster"
)

func TestExtractCommonPattern(t *testing.T) {
	common := ExtractCommonPattern([]*raster.Image{row(1, 2, 3), row(1, 5, 3), row(1, 2, 3)})
	assert.Equal(t, []uint8{raster.TransformOpaque, raster.TransformSkip, raster.TransformOpaque}, common.Transform())
	assert.Equal(t, uint8(1), common.Pixels()[0])

	assert.True(t, ExtractCommonPattern(nil).Empty())
	assert.True(t, ExtractCommonPattern([]*raster.Image{row(1), row(1, 2)}).Empty())
}

func TestFilterOnePixelNoise(t *testing.T) {
	t.Run("isolated pixel takes the majority", func(t *testing.T) {
		img := raster.NewImage(3, 3)
		img.Fill(5)
		img.Pixels()[4] = 9

		out := FilterOnePixelNoise(img)

		assert.Equal(t, uint8(5), out.Pixels()[4])
		assert.Equal(t, uint8(9), img.Pixels()[4], "input is untouched")
	})

	t.Run("no agreement keeps the pixel", func(t *testing.T) {
		out := FilterOnePixelNoise(row(1, 2, 3))
		assert.Equal(t, []uint8{1, 2, 3}, out.Pixels())
	})

	t.Run("ties go to the lowest value", func(t *testing.T) {
		img := raster.NewImage(3, 3)
		img.Fill(0)
		copy(img.Pixels(), []uint8{
			0, 7, 0,
			4, 9, 7,
			0, 4, 0,
		})

		out := FilterOnePixelNoise(img)
		assert.Equal(t, uint8(4), out.Pixels()[4])
	})

	t.Run("transparent neighbours are ignored", func(t *testing.T) {
		img := row(3, 9, 3)
		img.Transform()[2] = raster.TransformSkip

		out := FilterOnePixelNoise(img)
		assert.Equal(t, uint8(9), out.Pixels()[1])
	})
}

func TestCreateBlurredImage(t *testing.T) {
	img := raster.NewImage(4, 4)
	img.Fill(palette.Blue)
	img.Transform()[0] = raster.TransformSkip

	blurred := CreateBlurredImage(img, 2)
	for i := range blurred.Pixels() {
		if i == 0 {
			continue
		}
		assert.Equal(t, palette.Blue, blurred.Pixels()[i])
	}
	assert.Equal(t, img.Transform(), blurred.Transform())

	same := CreateBlurredImage(row(1, 2), 0)
	assert.Equal(t, []uint8{1, 2}, same.Pixels())
}

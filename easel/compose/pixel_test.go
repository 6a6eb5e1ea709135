package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/go-easel/easel/palette"
	"github.com/valerio/go-easel/easel/raster"
)

func TestApplyTransform(t *testing.T) {
	t.Run("multi layer stores the code", func(t *testing.T) {
		img := raster.NewImage(3, 3)
		img.Fill(palette.White)

		ApplyTransform(img, 1, 1, 5, 5, raster.TransformShadow3)

		assert.Equal(t, raster.TransformOpaque, img.Transform()[0])
		assert.Equal(t, raster.TransformShadow3, img.Transform()[4])
		assert.Equal(t, raster.TransformShadow3, img.Transform()[8])
		assert.Equal(t, palette.White, img.Pixels()[4])
	})

	t.Run("single layer applies the effect", func(t *testing.T) {
		img := raster.NewImage(2, 1)
		img.Fill(palette.White)
		img.DisableTransformLayer()

		ApplyTransform(img, 0, 0, 1, 1, raster.TransformShadow2)
		ApplyTransform(img, 1, 0, 1, 1, raster.TransformSkip)

		assert.Equal(t, palette.ApplyTransform(raster.TransformShadow2, palette.White), img.Pixels()[0])
		assert.Equal(t, palette.White, img.Pixels()[1])
	})

	t.Run("out of range codes are rejected", func(t *testing.T) {
		img := raster.NewImage(1, 1)
		img.Fill(0)
		ApplyTransform(img, 0, 0, 1, 1, 14)
		assert.Equal(t, raster.TransformOpaque, img.Transform()[0])
	})
}

func TestFill(t *testing.T) {
	img := raster.NewImage(3, 2)
	img.Reset()

	Fill(img, 2, -1, 4, 2, 8)

	assert.Equal(t, []uint8{0, 0, 8, 0, 0, 0}, img.Pixels())
	assert.Equal(t, raster.TransformOpaque, img.Transform()[2])
	assert.Equal(t, raster.TransformSkip, img.Transform()[5])
}

func TestSetPixel(t *testing.T) {
	img := raster.NewImage(2, 2)
	img.Reset()

	SetPixel(img, 1, 1, 3)
	SetPixel(img, 2, 0, 3)
	SetPixel(img, -1, 0, 3)
	SetPixels(img, []raster.Point{{X: 0, Y: 0}}, 4)

	assert.Equal(t, []uint8{4, 0, 0, 3}, img.Pixels())
	assert.Equal(t, []uint8{0, 1, 1, 0}, img.Transform())
}

func TestSetTransformPixel(t *testing.T) {
	img := raster.NewImage(2, 1)
	img.Fill(0)

	SetTransformPixel(img, 0, 0, raster.TransformGray)
	SetTransformPixel(img, 1, 0, raster.MaxTransformValue+1)

	assert.Equal(t, []uint8{raster.TransformGray, raster.TransformOpaque}, img.Transform())
}

func TestMaskTransformLayer(t *testing.T) {
	mask := raster.NewImage(2, 1)
	mask.Fill(0)
	mask.Transform()[1] = raster.TransformSkip

	out := raster.NewImage(3, 1)
	out.Fill(2)

	MaskTransformLayer(mask, 0, 0, out, 1, 0, 2, 1)

	assert.Equal(t, []uint8{0, 0, raster.TransformSkip}, out.Transform())
	assert.Equal(t, []uint8{2, 2, 2}, out.Pixels())
}

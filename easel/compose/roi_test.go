package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-easel/easel/raster"
)

func TestGetActiveROI(t *testing.T) {
	t.Run("empty image", func(t *testing.T) {
		assert.True(t, GetActiveROI(raster.NewImage(0, 0), DefaultActiveTransform).Empty())
	})

	t.Run("fully transparent", func(t *testing.T) {
		img := raster.NewImage(4, 4)
		img.Reset()
		assert.True(t, GetActiveROI(img, DefaultActiveTransform).Empty())
	})

	t.Run("single pixel", func(t *testing.T) {
		img := raster.NewImage(4, 4)
		img.Reset()
		SetPixel(img, 2, 1, 3)

		assert.Equal(t, raster.Rect{X: 2, Y: 1, Width: 1, Height: 1}, GetActiveROI(img, DefaultActiveTransform))
	})

	t.Run("shadows count only below the threshold", func(t *testing.T) {
		img := raster.NewImage(4, 4)
		img.Reset()
		SetPixel(img, 1, 1, 3)
		SetTransformPixel(img, 3, 3, raster.TransformShadow2)
		SetTransformPixel(img, 0, 2, raster.TransformTintRed)

		assert.Equal(t, raster.Rect{X: 0, Y: 1, Width: 2, Height: 2}, GetActiveROI(img, DefaultActiveTransform))
		assert.Equal(t, raster.Rect{X: 0, Y: 1, Width: 4, Height: 3}, GetActiveROI(img, raster.TransformShadow2))
	})
}

func TestCrop(t *testing.T) {
	img := sample()

	cropped := Crop(img, 1, 0, 5, 1)
	require.Equal(t, 2, cropped.Width())
	require.Equal(t, 1, cropped.Height())
	assert.Equal(t, raster.Point{X: 1, Y: 0}, cropped.Position())
	assert.Equal(t, []uint8{2, 3}, cropped.Pixels())
	assert.Equal(t, []uint8{raster.TransformSkip, raster.TransformOpaque}, cropped.Transform())

	assert.True(t, Crop(img, 5, 5, 2, 2).Empty())
}

func TestDivideImageBySquares(t *testing.T) {
	img := raster.NewImage(4, 4)
	img.Fill(1)
	SetPixel(img, 0, 0, 2)

	tiles := DivideImageBySquares(raster.Point{X: -2, Y: 0}, img, 4, false)
	require.Len(t, tiles, 2)

	assert.Equal(t, raster.Point{X: -1, Y: 0}, tiles[0].Square)
	assert.Equal(t, raster.Rect{X: 2, Y: 0, Width: 2, Height: 4}, tiles[0].Sprite.Rect())
	assert.Equal(t, uint8(2), tiles[0].Sprite.Pixels()[0])

	assert.Equal(t, raster.Point{X: 0, Y: 0}, tiles[1].Square)
	assert.Equal(t, raster.Rect{X: 0, Y: 0, Width: 2, Height: 4}, tiles[1].Sprite.Rect())

	t.Run("flip mirrors the content", func(t *testing.T) {
		flipped := DivideImageBySquares(raster.Point{X: -2, Y: 0}, img, 4, true)
		require.Len(t, flipped, 2)
		assert.Equal(t, uint8(1), flipped[0].Sprite.Pixels()[0])
		assert.Equal(t, uint8(2), flipped[1].Sprite.Pixels()[1])
	})

	t.Run("transparent cells are dropped", func(t *testing.T) {
		sparse := raster.NewImage(8, 4)
		sparse.Reset()
		SetPixel(sparse, 6, 2, 1)

		tiles := DivideImageBySquares(raster.Point{}, sparse, 4, false)
		require.Len(t, tiles, 1)
		assert.Equal(t, raster.Point{X: 1, Y: 0}, tiles[0].Square)
	})
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, -1, floorDiv(-2, 4))
	assert.Equal(t, -1, floorDiv(-4, 4))
	assert.Equal(t, -2, floorDiv(-5, 4))
	assert.Equal(t, 0, floorDiv(3, 4))
	assert.Equal(t, 1, floorDiv(4, 4))
}

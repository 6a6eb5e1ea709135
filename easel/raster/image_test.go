package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImage(t *testing.T) {
	t.Run("allocates both layers", func(t *testing.T) {
		img := NewImage(4, 3)

		assert.False(t, img.Empty())
		assert.Equal(t, 4, img.Width())
		assert.Equal(t, 3, img.Height())
		assert.Equal(t, 1, img.ScaleFactor())
		assert.Equal(t, 4, img.Stride())
		assert.Len(t, img.Pixels(), 12)
		assert.Len(t, img.Transform(), 12)
	})

	t.Run("non-positive sizes are empty", func(t *testing.T) {
		for _, size := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
			img := NewImage(size[0], size[1])
			assert.True(t, img.Empty(), "size %v", size)
			assert.Empty(t, img.Pixels())
		}
	})

	t.Run("scale factor is kept and clamped", func(t *testing.T) {
		assert.Equal(t, 2, NewScaledImage(2, 2, 2).ScaleFactor())
		assert.Equal(t, 1, NewScaledImage(2, 2, 0).ScaleFactor())
	})
}

func TestImageFillResetClear(t *testing.T) {
	img := NewImage(3, 2)

	img.Fill(7)
	for i := range img.Pixels() {
		assert.Equal(t, uint8(7), img.Pixels()[i])
		assert.Equal(t, TransformOpaque, img.Transform()[i])
	}

	img.Reset()
	for i := range img.Pixels() {
		assert.Equal(t, uint8(7), img.Pixels()[i], "reset keeps the image layer")
		assert.Equal(t, TransformSkip, img.Transform()[i])
	}

	img.Clear()
	assert.True(t, img.Empty())

	// operations on an empty image are no-ops
	img.Fill(1)
	img.Reset()
	assert.True(t, img.Empty())
}

func TestImageResizeDropsContent(t *testing.T) {
	img := NewImage(2, 2)
	img.Fill(9)

	img.Resize(3, 3)
	require.Equal(t, 3, img.Width())
	for _, v := range img.Pixels() {
		assert.Equal(t, uint8(0), v)
	}

	img.ResizeScaled(1, 1, 3)
	assert.Equal(t, 3, img.ScaleFactor())
	img.Resize(2, 2)
	assert.Equal(t, 3, img.ScaleFactor(), "resize keeps the scale factor")
}

func TestImageCloneDoesNotCopySingleLayer(t *testing.T) {
	img := NewImage(2, 2)
	img.Fill(3)
	img.DisableTransformLayer()
	require.True(t, img.SingleLayer())

	copied := img.Clone()
	assert.False(t, copied.SingleLayer())
	assert.Equal(t, img.Pixels(), copied.Pixels())

	copied.Pixels()[0] = 4
	assert.Equal(t, uint8(3), img.Pixels()[0], "clone must not share memory")
}

func TestSprite(t *testing.T) {
	s := NewSprite(2, 3, 10, 20)
	assert.Equal(t, 10, s.X())
	assert.Equal(t, 20, s.Y())
	assert.Equal(t, Rect{X: 10, Y: 20, Width: 2, Height: 3}, s.Rect())

	s.SetPosition(-1, 4)
	assert.Equal(t, Point{X: -1, Y: 4}, s.Position())

	img := NewImage(2, 2)
	img.Fill(5)
	fromImage := SpriteFromImage(img, 1, 1)
	img.Fill(6)
	assert.Equal(t, uint8(5), fromImage.Pixels()[0])

	var d Drawable = fromImage
	assert.Equal(t, 2, d.Width())
}

func TestRect(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 5, Width: 10, Height: 10}

	assert.Equal(t, Rect{X: 5, Y: 5, Width: 5, Height: 5}, a.Intersect(b))
	assert.Equal(t, Rect{X: 0, Y: 0, Width: 15, Height: 15}, a.Union(b))
	assert.True(t, a.Intersect(Rect{X: 20, Y: 20, Width: 1, Height: 1}).Empty())
	assert.Equal(t, a, a.Union(Rect{}))
	assert.True(t, a.Contains(Point{X: 9, Y: 9}))
	assert.False(t, a.Contains(Point{X: 10, Y: 0}))
	assert.True(t, a.Overlaps(b))
}

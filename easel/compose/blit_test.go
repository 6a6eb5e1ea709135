package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-easel/easel/palette"
	"github.com/valerio/go-easel/easel/raster"
)

func row(values ...uint8) *raster.Image {
	img := raster.NewImage(len(values), 1)
	img.Fill(0)
	copy(img.Pixels(), values)
	return img
}

func TestBlitSpriteOnCanvas(t *testing.T) {
	canvas := raster.NewImage(20, 20)
	canvas.Fill(palette.Black)

	sprite := raster.NewSprite(10, 10, 5, 5)
	sprite.Fill(palette.Red)

	BlitSprite(sprite, canvas, false)

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			expected := palette.Black
			if x >= 5 && x < 15 && y >= 5 && y < 15 {
				expected = palette.Red
			}
			require.Equal(t, expected, canvas.Pixels()[y*20+x], "pixel (%d, %d)", x, y)
			require.Equal(t, raster.TransformOpaque, canvas.Transform()[y*20+x])
		}
	}
}

func TestBlitTransformCodes(t *testing.T) {
	t.Run("skip pixels leave the destination alone", func(t *testing.T) {
		out := row(9, 9, 9)
		in := raster.NewImage(3, 1)
		in.Reset()
		SetPixel(in, 1, 0, 4)

		Blit(in, out, false)

		assert.Equal(t, []uint8{9, 4, 9}, out.Pixels())
	})

	t.Run("shadow codes darken the destination", func(t *testing.T) {
		out := row(palette.White)
		in := raster.NewImage(1, 1)
		in.Fill(palette.Red)
		FillTransform(in, 0, 0, 1, 1, raster.TransformShadow2)

		Blit(in, out, false)

		assert.Equal(t, palette.ApplyTransform(raster.TransformShadow2, palette.White), out.Pixels()[0])
		assert.NotEqual(t, palette.White, out.Pixels()[0])
		assert.Equal(t, raster.TransformOpaque, out.Transform()[0])
	})

	t.Run("opaque pixels mark a transparent destination", func(t *testing.T) {
		out := raster.NewImage(2, 1)
		out.Reset()

		BlitAt(row(3), out, 1, 0, false)

		assert.Equal(t, []uint8{raster.TransformSkip, raster.TransformOpaque}, out.Transform())
		assert.Equal(t, uint8(3), out.Pixels()[1])
	})

	t.Run("single layer source is opaque", func(t *testing.T) {
		in := row(6, 7)
		in.Reset()
		in.DisableTransformLayer()
		out := row(0, 0)

		Blit(in, out, false)

		assert.Equal(t, []uint8{6, 7}, out.Pixels())
	})
}

func TestBlitFlip(t *testing.T) {
	t.Run("mirrors the source", func(t *testing.T) {
		out := row(0, 0, 0)
		Blit(row(1, 2, 3), out, true)
		assert.Equal(t, []uint8{3, 2, 1}, out.Pixels())
	})

	t.Run("clipping is mirror aware", func(t *testing.T) {
		out := row(0, 0)
		BlitAt(row(1, 2, 3), out, -1, 0, false)
		assert.Equal(t, []uint8{2, 3}, out.Pixels())

		out = row(0, 0)
		BlitAt(row(1, 2, 3), out, -1, 0, true)
		assert.Equal(t, []uint8{2, 1}, out.Pixels())
	})

	t.Run("fully outside is a no-op", func(t *testing.T) {
		out := row(0, 0)
		BlitAt(row(1, 2), out, 5, 0, false)
		BlitAt(row(1, 2), out, 0, -1, true)
		assert.Equal(t, []uint8{0, 0}, out.Pixels())
	})
}

func TestAlphaBlit(t *testing.T) {
	t.Run("alpha 0 keeps the destination", func(t *testing.T) {
		out := row(palette.Blue)
		AlphaBlit(row(palette.Red), out, 0, false)
		assert.Equal(t, palette.Blue, out.Pixels()[0])
	})

	t.Run("alpha 255 is a plain blit", func(t *testing.T) {
		out := row(palette.Blue)
		AlphaBlit(row(palette.Red), out, 255, false)
		assert.Equal(t, palette.Red, out.Pixels()[0])
	})

	t.Run("blending same colors is stable", func(t *testing.T) {
		out := row(palette.Green)
		AlphaBlit(row(palette.Green), out, 100, false)
		assert.Equal(t, palette.Green, out.Pixels()[0])
	})
}

func TestCopy(t *testing.T) {
	in := raster.NewScaledImage(3, 2, 2)
	in.Fill(5)
	FillTransform(in, 0, 0, 1, 1, raster.TransformShadow3)

	out := raster.NewImage(1, 1)
	Copy(in, out)

	require.Equal(t, 3, out.Width())
	require.Equal(t, 2, out.Height())
	assert.Equal(t, 2, out.ScaleFactor())
	assert.Equal(t, in.Pixels(), out.Pixels())
	assert.Equal(t, in.Transform(), out.Transform())

	Copy(raster.NewImage(0, 0), out)
	assert.True(t, out.Empty())
}

func TestCopyTransformLayer(t *testing.T) {
	in := raster.NewImage(2, 1)
	in.Reset()
	out := raster.NewImage(2, 1)
	out.Fill(1)

	CopyTransformLayer(in, out)
	assert.Equal(t, []uint8{raster.TransformSkip, raster.TransformSkip}, out.Transform())

	mismatched := raster.NewImage(3, 1)
	mismatched.Fill(0)
	CopyTransformLayer(in, mismatched)
	assert.Equal(t, []uint8{0, 0, 0}, mismatched.Transform())
}

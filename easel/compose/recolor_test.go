package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/go-easel/easel/palette"
	"github.com/valerio/go-easel/easel/raster"
)

func TestApplyPalette(t *testing.T) {
	t.Run("identity table changes nothing", func(t *testing.T) {
		img := row(0, 17, 128, 255)
		ApplyPaletteType(img, palette.Standard)
		assert.Equal(t, []uint8{0, 17, 128, 255}, img.Pixels())
	})

	t.Run("transparent pixels are skipped", func(t *testing.T) {
		table := make([]uint8, palette.Size)
		for i := range table {
			table[i] = 5
		}

		img := row(1, 2)
		img.Transform()[0] = raster.TransformSkip
		ApplyPalette(img, table)

		assert.Equal(t, []uint8{1, 5}, img.Pixels())
		assert.Equal(t, []uint8{raster.TransformSkip, raster.TransformOpaque}, img.Transform())
	})

	t.Run("short tables are rejected", func(t *testing.T) {
		img := row(1, 2)
		ApplyPalette(img, []uint8{9, 9, 9})
		assert.Equal(t, []uint8{1, 2}, img.Pixels())
	})

	t.Run("writes into another image", func(t *testing.T) {
		out := row(0, 0)
		ApplyPaletteTypeTo(row(palette.White, palette.Black), out, palette.Mirror)
		assert.Equal(t, palette.Table(palette.Mirror)[palette.White], out.Pixels()[0])
		assert.Equal(t, palette.Table(palette.Mirror)[palette.Black], out.Pixels()[1])
	})
}

func TestApplyAlpha(t *testing.T) {
	out := row(0)
	ApplyAlpha(row(palette.Red), out, 255)
	assert.Equal(t, palette.Red, out.Pixels()[0])

	ApplyAlpha(row(palette.Red), out, 0)
	assert.Equal(t, palette.Black, out.Pixels()[0])
}

func TestReplaceColors(t *testing.T) {
	img := row(1, 2, 1)

	ReplaceColorID(img, 1, 7)
	assert.Equal(t, []uint8{7, 2, 7}, img.Pixels())

	ReplaceColorIDByTransformID(img, 2, raster.TransformShadow4)
	assert.Equal(t, []uint8{0, raster.TransformShadow4, 0}, img.Transform())

	AddTransparency(img, 7)
	assert.Equal(t, []uint8{raster.TransformSkip, raster.TransformShadow4, raster.TransformSkip}, img.Transform())
}

func TestColorMapping(t *testing.T) {
	table := ColorMapping(row(1, 2), row(3, 4), 0, 0, 2, 1)

	assert.Len(t, table, palette.Size)
	assert.Equal(t, uint8(3), table[1])
	assert.Equal(t, uint8(4), table[2])
	assert.Equal(t, uint8(0), table[0])
	assert.Equal(t, uint8(200), table[200])
}

package compose

import (
	"github.com/valerio/go-easel/easel/internal/check"
	"github.com/valerio/go-easel/easel/palette"
	"github.com/valerio/go-easel/easel/raster"
)

// ApplyPalette remaps the image layer of img in place through a 256 entry
// table. Transparent pixels are skipped and the transform layer is untouched.
func ApplyPalette(img raster.Drawable, table []uint8) {
	if img == nil {
		return
	}
	ApplyPaletteRegion(img, 0, 0, img, 0, 0, img.Width(), img.Height(), table)
}

// ApplyPaletteTo writes the remapped image layer of in into out.
func ApplyPaletteTo(in, out raster.Drawable, table []uint8) {
	if in == nil {
		return
	}
	ApplyPaletteRegion(in, 0, 0, out, 0, 0, in.Width(), in.Height(), table)
}

// ApplyPaletteType remaps img in place through a built-in table.
func ApplyPaletteType(img raster.Drawable, t palette.Type) {
	ApplyPalette(img, palette.Table(t))
}

func ApplyPaletteTypeTo(in, out raster.Drawable, t palette.Type) {
	ApplyPaletteTo(in, out, palette.Table(t))
}

func ApplyPaletteTypeRegion(in raster.Drawable, inX, inY int, out raster.Drawable, outX, outY, width, height int, t palette.Type) {
	ApplyPaletteRegion(in, inX, inY, out, outX, outY, width, height, palette.Table(t))
}

// ApplyPaletteRegion remaps an area of in into out through table.
func ApplyPaletteRegion(in raster.Drawable, inX, inY int, out raster.Drawable, outX, outY, width, height int, table []uint8) {
	if !check.Precondition(len(table) == palette.Size, "palette table must have 256 entries", "size", len(table)) {
		return
	}

	r, ok := clipRegion(in, out, region{inX: inX, inY: inY, outX: outX, outY: outY, width: width, height: height}, false)
	if !ok {
		return
	}

	inImage, inTransform := in.Pixels(), in.Transform()
	outImage := out.Pixels()
	skipAware := !in.SingleLayer()

	for y := 0; y < r.height; y++ {
		inOffset := (r.inY+y)*in.Stride() + r.inX
		outOffset := (r.outY+y)*out.Stride() + r.outX

		for x := 0; x < r.width; x++ {
			if skipAware && inTransform[inOffset+x] == raster.TransformSkip {
				continue
			}
			outImage[outOffset+x] = table[inImage[inOffset+x]]
		}
	}
}

// ApplyAlpha darkens every visible pixel of in toward black and writes it to
// out: alpha 255 keeps the color, 0 turns it black.
func ApplyAlpha(in, out raster.Drawable, alpha uint8) {
	if in == nil {
		return
	}
	ApplyAlphaRegion(in, 0, 0, out, 0, 0, in.Width(), in.Height(), alpha)
}

func ApplyAlphaRegion(in raster.Drawable, inX, inY int, out raster.Drawable, outX, outY, width, height int, alpha uint8) {
	if alpha == 255 {
		// only a copy of the visible image layer is left to do
		ApplyPaletteRegion(in, inX, inY, out, outX, outY, width, height, palette.Table(palette.Standard))
		return
	}

	table := make([]uint8, palette.Size)
	for id := range table {
		table[id] = palette.Mix(uint8(id), palette.Black, alpha)
	}
	ApplyPaletteRegion(in, inX, inY, out, outX, outY, width, height, table)
}

// ReplaceColorID replaces every occurrence of a color. The transform layer is
// not consulted; use ApplyPalette to replace several colors at once.
func ReplaceColorID(img raster.Drawable, oldColorID, newColorID uint8) {
	if img == nil || img.Empty() {
		return
	}

	pixels := img.Pixels()
	forEachPixel(img, func(i int) {
		if pixels[i] == oldColorID {
			pixels[i] = newColorID
		}
	})
}

// ReplaceColorIDByTransformID turns every pixel of the given color into a
// transform code, for translucency authored directly in the source art.
func ReplaceColorIDByTransformID(img raster.Drawable, colorID, transformID uint8) {
	if img == nil || img.Empty() || img.SingleLayer() {
		return
	}
	if !check.Precondition(transformID <= raster.MaxTransformValue, "transform value out of range", "value", transformID) {
		return
	}

	pixels, transform := img.Pixels(), img.Transform()
	forEachPixel(img, func(i int) {
		if pixels[i] == colorID {
			transform[i] = transformID
		}
	})
}

// AddTransparency makes every pixel of the given color fully transparent.
func AddTransparency(img raster.Drawable, colorID uint8) {
	ReplaceColorIDByTransformID(img, colorID, raster.TransformSkip)
}

// ColorMapping derives a recolor table from two renderings of the same art:
// every color of in found in the area maps to the color of out at the same
// position. Colors not present map to themselves.
func ColorMapping(in, out raster.Drawable, x, y, width, height int) []uint8 {
	table := palette.Table(palette.Standard)

	roi, ok := clipRect(in, x, y, width, height)
	if !ok || out == nil {
		return table
	}
	roi = roi.Intersect(raster.Rect{Width: out.Width(), Height: out.Height()})

	inImage, inTransform := in.Pixels(), in.Transform()
	outImage := out.Pixels()
	for row := roi.Y; row < roi.Y+roi.Height; row++ {
		for col := roi.X; col < roi.X+roi.Width; col++ {
			i := row*in.Stride() + col
			if !in.SingleLayer() && inTransform[i] != raster.TransformOpaque {
				continue
			}
			table[inImage[i]] = outImage[row*out.Stride()+col]
		}
	}
	return table
}

// forEachPixel calls fn with the layer index of every pixel of d.
func forEachPixel(d raster.Drawable, fn func(i int)) {
	width, height, stride := d.Width(), d.Height(), d.Stride()
	for y := 0; y < height; y++ {
		offset := y * stride
		for x := 0; x < width; x++ {
			fn(offset + x)
		}
	}
}

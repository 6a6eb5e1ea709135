package compose

import (
	"github.com/valerio/go-easel/easel/internal/check"
	"github.com/valerio/go-easel/easel/palette"
	"github.com/valerio/go-easel/easel/raster"
)

// ApplyTransform writes a transform code into an area of d. A single layer
// view has no transform layer to carry the code, so the effect is applied to
// its pixels right away.
func ApplyTransform(d raster.Drawable, x, y, width, height int, transformID uint8) {
	if !check.Precondition(transformID <= raster.MaxTransformValue, "transform value out of range", "value", transformID) {
		return
	}

	roi, ok := clipRect(d, x, y, width, height)
	if !ok {
		return
	}

	stride := d.Stride()
	if d.SingleLayer() {
		if transformID == raster.TransformOpaque || transformID == raster.TransformSkip {
			return
		}

		table := palette.TransformTable(transformID)
		pixels := d.Pixels()
		for row := roi.Y; row < roi.Y+roi.Height; row++ {
			offset := row*stride + roi.X
			for i := offset; i < offset+roi.Width; i++ {
				pixels[i] = table[pixels[i]]
			}
		}
		return
	}

	fillLayer(d.Transform(), stride, roi, transformID)
}

// FillTransform sets the transform layer of an area to a literal code
// without touching pixels, even on single layer images.
func FillTransform(img *raster.Image, x, y, width, height int, transformID uint8) {
	if img == nil {
		return
	}

	roi, ok := clipRect(img, x, y, width, height)
	if !ok {
		return
	}
	fillLayer(img.Transform(), img.Stride(), roi, transformID)
}

// Fill paints an area with a palette color and makes it opaque. Use
// palette.GetColorID to pick the closest entry for an RGB value.
func Fill(d raster.Drawable, x, y, width, height int, colorID uint8) {
	roi, ok := clipRect(d, x, y, width, height)
	if !ok {
		return
	}

	fillLayer(d.Pixels(), d.Stride(), roi, colorID)
	if !d.SingleLayer() {
		fillLayer(d.Transform(), d.Stride(), roi, raster.TransformOpaque)
	}
}

func fillLayer(layer []uint8, stride int, roi raster.Rect, value uint8) {
	for row := roi.Y; row < roi.Y+roi.Height; row++ {
		offset := row*stride + roi.X
		line := layer[offset : offset+roi.Width]
		for i := range line {
			line[i] = value
		}
	}
}

// SetPixel sets an opaque pixel. Coordinates outside the image are ignored.
func SetPixel(d raster.Drawable, x, y int, value uint8) {
	if d == nil || d.Empty() || x < 0 || y < 0 || x >= d.Width() || y >= d.Height() {
		return
	}

	i := y*d.Stride() + x
	d.Pixels()[i] = value
	if !d.SingleLayer() {
		d.Transform()[i] = raster.TransformOpaque
	}
}

// SetPixels sets every listed point to value.
func SetPixels(d raster.Drawable, points []raster.Point, value uint8) {
	for _, p := range points {
		SetPixel(d, p.X, p.Y, value)
	}
}

// SetTransformPixel stores a transform code for a single pixel. Values above
// raster.MaxTransformValue are a contract violation.
func SetTransformPixel(d raster.Drawable, x, y int, value uint8) {
	if !check.Precondition(value <= raster.MaxTransformValue, "transform value out of range", "value", value) {
		return
	}
	if d == nil || d.Empty() || d.SingleLayer() || x < 0 || y < 0 || x >= d.Width() || y >= d.Height() {
		return
	}

	d.Transform()[y*d.Stride()+x] = value
}

// MaskTransformLayer makes pixels of out transparent wherever the mask is
// transparent.
func MaskTransformLayer(mask raster.Drawable, maskX, maskY int, out raster.Drawable, outX, outY, width, height int) {
	if out == nil || out.SingleLayer() || mask == nil || mask.SingleLayer() {
		return
	}

	r, ok := clipRegion(mask, out, region{inX: maskX, inY: maskY, outX: outX, outY: outY, width: width, height: height}, false)
	if !ok {
		return
	}

	maskTransform, outTransform := mask.Transform(), out.Transform()
	for y := 0; y < r.height; y++ {
		maskOffset := (r.inY+y)*mask.Stride() + r.inX
		outOffset := (r.outY+y)*out.Stride() + r.outX
		for x := 0; x < r.width; x++ {
			if maskTransform[maskOffset+x] == raster.TransformSkip {
				outTransform[outOffset+x] = raster.TransformSkip
			}
		}
	}
}

// codeAt returns the transform code stored at layer index i. Single layer
// views are opaque everywhere.
func codeAt(d raster.Drawable, i int) uint8 {
	if d.SingleLayer() {
		return raster.TransformOpaque
	}
	return d.Transform()[i]
}

package compose

import (
	"github.com/valerio/go-easel/easel/internal/check"
	"github.com/valerio/go-easel/easel/palette"
	"github.com/valerio/go-easel/easel/raster"
)

// Blit draws in onto out at the top-left corner.
func Blit(in, out raster.Drawable, flip bool) {
	BlitAt(in, out, 0, 0, flip)
}

// BlitAt draws the whole of in onto out at (outX, outY).
func BlitAt(in, out raster.Drawable, outX, outY int, flip bool) {
	if in == nil {
		return
	}
	BlitRegion(in, 0, 0, out, outX, outY, in.Width(), in.Height(), flip)
}

// BlitSprite draws a sprite at its own anchor position.
func BlitSprite(in *raster.Sprite, out raster.Drawable, flip bool) {
	if in == nil {
		return
	}
	BlitAt(in, out, in.X(), in.Y(), flip)
}

// BlitRegion draws a width x height area of in starting at (inX, inY) onto
// out at (outX, outY), honouring the source transform layer:
// skip pixels are left alone, opaque pixels are copied and every other code
// recolors the pixel already present in out. With flip the source area is
// mirrored horizontally; the output area stays where it is.
func BlitRegion(in raster.Drawable, inX, inY int, out raster.Drawable, outX, outY, width, height int, flip bool) {
	blend(in, inX, inY, out, outX, outY, width, height, flip, 255)
}

// AlphaBlit draws in onto out at the top-left corner blending opaque pixels
// with the destination. alpha 255 is a plain Blit.
func AlphaBlit(in, out raster.Drawable, alpha uint8, flip bool) {
	AlphaBlitAt(in, out, 0, 0, alpha, flip)
}

func AlphaBlitAt(in, out raster.Drawable, outX, outY int, alpha uint8, flip bool) {
	if in == nil {
		return
	}
	AlphaBlitRegion(in, 0, 0, out, outX, outY, in.Width(), in.Height(), alpha, flip)
}

// AlphaBlitRegion is BlitRegion where opaque source pixels are mixed with the
// destination in RGB space and mapped back to the nearest palette entry.
func AlphaBlitRegion(in raster.Drawable, inX, inY int, out raster.Drawable, outX, outY, width, height int, alpha uint8, flip bool) {
	blend(in, inX, inY, out, outX, outY, width, height, flip, alpha)
}

func blend(in raster.Drawable, inX, inY int, out raster.Drawable, outX, outY, width, height int, flip bool, alpha uint8) {
	r, ok := clipRegion(in, out, region{inX: inX, inY: inY, outX: outX, outY: outY, width: width, height: height}, flip)
	if !ok {
		return
	}

	inImage, inTransform := in.Pixels(), in.Transform()
	outImage, outTransform := out.Pixels(), out.Transform()
	inStride, outStride := in.Stride(), out.Stride()

	sourceOpaque := in.SingleLayer()
	markOutput := !out.SingleLayer()

	for y := 0; y < r.height; y++ {
		inOffset := (r.inY+y)*inStride + r.inX
		outOffset := (r.outY+y)*outStride + r.outX

		for x := 0; x < r.width; x++ {
			src := inOffset + x
			if flip {
				src = inOffset + r.width - 1 - x
			}
			dst := outOffset + x

			code := raster.TransformOpaque
			if !sourceOpaque {
				code = inTransform[src]
			}

			switch code {
			case raster.TransformOpaque:
				if alpha == 255 {
					outImage[dst] = inImage[src]
				} else {
					outImage[dst] = palette.Mix(inImage[src], outImage[dst], alpha)
				}
				if markOutput {
					outTransform[dst] = raster.TransformOpaque
				}
			case raster.TransformSkip:
			default:
				outImage[dst] = palette.ApplyTransform(code, outImage[dst])
			}
		}
	}
}

// Copy makes out an exact duplicate of in, both layers included.
func Copy(in raster.Drawable, out *raster.Image) {
	if out == nil {
		return
	}
	if in == nil || in.Empty() {
		out.Clear()
		return
	}

	out.ResizeScaled(in.Width(), in.Height(), in.ScaleFactor())
	CopyRegion(in, 0, 0, out, 0, 0, in.Width(), in.Height())
}

// CopyRegion overwrites an area of out with both layers of in, ignoring
// transform semantics. A single layer source is copied as fully opaque; a
// single layer destination only receives the image layer.
func CopyRegion(in raster.Drawable, inX, inY int, out raster.Drawable, outX, outY, width, height int) {
	r, ok := clipRegion(in, out, region{inX: inX, inY: inY, outX: outX, outY: outY, width: width, height: height}, false)
	if !ok {
		return
	}

	inImage, inTransform := in.Pixels(), in.Transform()
	outImage, outTransform := out.Pixels(), out.Transform()
	inStride, outStride := in.Stride(), out.Stride()

	for y := 0; y < r.height; y++ {
		inOffset := (r.inY+y)*inStride + r.inX
		outOffset := (r.outY+y)*outStride + r.outX

		copy(outImage[outOffset:outOffset+r.width], inImage[inOffset:inOffset+r.width])

		if out.SingleLayer() {
			continue
		}
		if in.SingleLayer() {
			clear(outTransform[outOffset : outOffset+r.width])
		} else {
			copy(outTransform[outOffset:outOffset+r.width], inTransform[inOffset:inOffset+r.width])
		}
	}
}

// CopyTransformLayer copies only the transform layer. Both images must have
// the same size.
func CopyTransformLayer(in, out *raster.Image) {
	if in == nil || out == nil || in.Empty() || out.Empty() {
		return
	}
	if !check.Precondition(in.Width() == out.Width() && in.Height() == out.Height(),
		"transform layer copy needs equal sizes",
		"in", raster.Size{Width: in.Width(), Height: in.Height()},
		"out", raster.Size{Width: out.Width(), Height: out.Height()}) {
		return
	}

	copy(out.Transform(), in.Transform())
}

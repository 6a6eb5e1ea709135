package compose

import "github.com/valerio/go-easel/easel/raster"

// Flip returns a mirrored copy of in.
func Flip(in raster.Drawable, horizontally, vertically bool) *raster.Image {
	if in == nil || in.Empty() {
		return raster.NewImage(0, 0)
	}

	out := raster.NewScaledImage(in.Width(), in.Height(), in.ScaleFactor())
	FlipRegion(in, 0, 0, out, 0, 0, in.Width(), in.Height(), horizontally, vertically)
	return out
}

// FlipRegion writes a mirrored area of in into out. Both layers move together.
func FlipRegion(in raster.Drawable, inX, inY int, out raster.Drawable, outX, outY, width, height int, horizontally, vertically bool) {
	r, ok := clipMirrored(in, out, region{inX: inX, inY: inY, outX: outX, outY: outY, width: width, height: height}, horizontally, vertically)
	if !ok {
		return
	}

	inImage := in.Pixels()
	outImage, outTransform := out.Pixels(), out.Transform()
	inStride, outStride := in.Stride(), out.Stride()
	markOutput := !out.SingleLayer()

	for y := 0; y < r.height; y++ {
		srcY := r.inY + y
		if vertically {
			srcY = r.inY + r.height - 1 - y
		}
		outOffset := (r.outY+y)*outStride + r.outX

		for x := 0; x < r.width; x++ {
			srcX := r.inX + x
			if horizontally {
				srcX = r.inX + r.width - 1 - x
			}

			src := srcY*inStride + srcX
			outImage[outOffset+x] = inImage[src]
			if markOutput {
				outTransform[outOffset+x] = codeAt(in, src)
			}
		}
	}
}

// Transpose swaps rows and columns of in; out is resized to height x width.
func Transpose(in raster.Drawable, out *raster.Image) {
	if out == nil {
		return
	}
	if in == nil || in.Empty() {
		out.Clear()
		return
	}

	width, height := in.Width(), in.Height()
	out.ResizeScaled(height, width, in.ScaleFactor())

	inImage := in.Pixels()
	outImage, outTransform := out.Pixels(), out.Transform()
	inStride, outStride := in.Stride(), out.Stride()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			src := y*inStride + x
			dst := x*outStride + y
			outImage[dst] = inImage[src]
			outTransform[dst] = codeAt(in, src)
		}
	}
}

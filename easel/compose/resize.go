package compose

import (
	"github.com/valerio/go-easel/easel/palette"
	"github.com/valerio/go-easel/easel/raster"
)

// Resize scales the whole of in to the current size of out.
func Resize(in raster.Drawable, out *raster.Image, subpixel bool) {
	if in == nil || out == nil || in.Empty() || out.Empty() {
		return
	}
	ResizeRegion(in, 0, 0, in.Width(), in.Height(), out, 0, 0, out.Width(), out.Height(), subpixel)
}

// ResizeRegion scales a widthIn x heightIn area of in to a widthOut x
// heightOut area of out. Both layers are written. Without subpixel the
// nearest source pixel is taken; with subpixel opaque areas are filtered
// bilinearly in RGB and mapped back to the palette.
func ResizeRegion(in raster.Drawable, inX, inY, widthIn, heightIn int, out raster.Drawable, outX, outY, widthOut, heightOut int, subpixel bool) {
	if in == nil || out == nil || in.Empty() || out.Empty() || widthOut <= 0 || heightOut <= 0 {
		return
	}
	if inX < 0 || inY < 0 || widthIn <= 0 || heightIn <= 0 || inX+widthIn > in.Width() || inY+heightIn > in.Height() {
		return
	}

	if widthIn == widthOut && heightIn == heightOut {
		CopyRegion(in, inX, inY, out, outX, outY, widthIn, heightIn)
		return
	}

	dst, ok := clipRect(out, outX, outY, widthOut, heightOut)
	if !ok {
		return
	}

	inImage := in.Pixels()
	outImage, outTransform := out.Pixels(), out.Transform()
	inStride, outStride := in.Stride(), out.Stride()
	markOutput := !out.SingleLayer()

	for y := dst.Y; y < dst.Y+dst.Height; y++ {
		dy := y - outY
		srcY := inY + dy*heightIn/heightOut

		for x := dst.X; x < dst.X+dst.Width; x++ {
			dx := x - outX
			srcX := inX + dx*widthIn/widthOut

			src := srcY*inStride + srcX
			value := inImage[src]
			code := codeAt(in, src)

			if subpixel && code == raster.TransformOpaque {
				if filtered, ok := bilinear(in, inX, inY, widthIn, heightIn, dx, dy, widthOut, heightOut); ok {
					value = filtered
				}
			}

			i := y*outStride + x
			outImage[i] = value
			if markOutput {
				outTransform[i] = code
			}
		}
	}
}

// bilinear samples the source at the center of output pixel (dx, dy) with
// 8 bit fixed point weights. It fails when any of the four samples is not
// opaque.
func bilinear(in raster.Drawable, inX, inY, widthIn, heightIn, dx, dy, widthOut, heightOut int) (uint8, bool) {
	x0, x1, wx := samplePosition(dx, widthIn, widthOut)
	y0, y1, wy := samplePosition(dy, heightIn, heightOut)

	stride := in.Stride()
	corners := [4]int{
		(inY+y0)*stride + inX + x0,
		(inY+y0)*stride + inX + x1,
		(inY+y1)*stride + inX + x0,
		(inY+y1)*stride + inX + x1,
	}
	weights := [4]int{
		(256 - wx) * (256 - wy),
		wx * (256 - wy),
		(256 - wx) * wy,
		wx * wy,
	}

	pixels := in.Pixels()
	var r, g, b int
	for k, i := range corners {
		if codeAt(in, i) != raster.TransformOpaque {
			return 0, false
		}
		cr, cg, cb := palette.RGB(pixels[i])
		r += int(cr) * weights[k]
		g += int(cg) * weights[k]
		b += int(cb) * weights[k]
	}

	return palette.GetColorID(uint8(r>>16), uint8(g>>16), uint8(b>>16)), true
}

// samplePosition maps an output coordinate to the two neighbouring source
// coordinates and the weight of the second one, in 1/256 units.
func samplePosition(d, sizeIn, sizeOut int) (int, int, int) {
	pos := ((2*d+1)*sizeIn*256)/(2*sizeOut) - 128
	if pos < 0 {
		pos = 0
	}

	p0 := pos >> 8
	weight := pos & 0xFF
	if p0 >= sizeIn-1 {
		return sizeIn - 1, sizeIn - 1, 0
	}
	return p0, p0 + 1, weight
}

// Stretch produces a widthOut x heightOut image from an area of in keeping
// its frame intact: corners are copied as they are while edges and the body
// are tiled from the middle of the source. It is meant for window and
// button backgrounds.
func Stretch(in raster.Drawable, inX, inY, widthIn, heightIn, widthOut, heightOut int) *raster.Image {
	if in == nil || widthOut <= 0 || heightOut <= 0 {
		return raster.NewImage(0, 0)
	}
	src, ok := clipRect(in, inX, inY, widthIn, heightIn)
	if !ok {
		return raster.NewImage(0, 0)
	}

	out := raster.NewScaledImage(widthOut, heightOut, in.ScaleFactor())
	out.Reset()

	cornerWidth := min(src.Width, widthOut) / 3
	cornerHeight := min(src.Height, heightOut) / 3
	middleWidth := src.Width - 2*cornerWidth
	middleHeight := src.Height - 2*cornerHeight

	left, right := src.X, src.X+src.Width-cornerWidth
	top, bottom := src.Y, src.Y+src.Height-cornerHeight
	outRight, outBottom := widthOut-cornerWidth, heightOut-cornerHeight
	innerWidth, innerHeight := widthOut-2*cornerWidth, heightOut-2*cornerHeight

	// corners
	CopyRegion(in, left, top, out, 0, 0, cornerWidth, cornerHeight)
	CopyRegion(in, right, top, out, outRight, 0, cornerWidth, cornerHeight)
	CopyRegion(in, left, bottom, out, 0, outBottom, cornerWidth, cornerHeight)
	CopyRegion(in, right, bottom, out, outRight, outBottom, cornerWidth, cornerHeight)

	// edges
	middleX, middleY := src.X+cornerWidth, src.Y+cornerHeight
	tile(in, raster.Rect{X: middleX, Y: top, Width: middleWidth, Height: cornerHeight},
		out, raster.Rect{X: cornerWidth, Y: 0, Width: innerWidth, Height: cornerHeight})
	tile(in, raster.Rect{X: middleX, Y: bottom, Width: middleWidth, Height: cornerHeight},
		out, raster.Rect{X: cornerWidth, Y: outBottom, Width: innerWidth, Height: cornerHeight})
	tile(in, raster.Rect{X: left, Y: middleY, Width: cornerWidth, Height: middleHeight},
		out, raster.Rect{X: 0, Y: cornerHeight, Width: cornerWidth, Height: innerHeight})
	tile(in, raster.Rect{X: right, Y: middleY, Width: cornerWidth, Height: middleHeight},
		out, raster.Rect{X: outRight, Y: cornerHeight, Width: cornerWidth, Height: innerHeight})

	// body
	tile(in, raster.Rect{X: middleX, Y: middleY, Width: middleWidth, Height: middleHeight},
		out, raster.Rect{X: cornerWidth, Y: cornerHeight, Width: innerWidth, Height: innerHeight})

	return out
}

// tile repeats the src area of in over the dst area of out.
func tile(in raster.Drawable, src raster.Rect, out raster.Drawable, dst raster.Rect) {
	if src.Empty() || dst.Empty() {
		return
	}

	for y := 0; y < dst.Height; y += src.Height {
		height := min(src.Height, dst.Height-y)
		for x := 0; x < dst.Width; x += src.Width {
			width := min(src.Width, dst.Width-x)
			CopyRegion(in, src.X, src.Y, out, dst.X+x, dst.Y+y, width, height)
		}
	}
}

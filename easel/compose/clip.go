package compose

import "github.com/valerio/go-easel/easel/raster"

// region is the effective area of a two-buffer operation after clipping.
type region struct {
	inX, inY   int
	outX, outY int
	width      int
	height     int
}

// clipRegion intersects the requested area with both buffers. With flip set
// the source columns are read right to left, so horizontal clipping on one
// side of the source removes columns on the opposite side of the output.
func clipRegion(in, out raster.Drawable, r region, flip bool) (region, bool) {
	return clipMirrored(in, out, r, flip, false)
}

// clipMirrored is clipRegion with independent mirroring of both axes.
func clipMirrored(in, out raster.Drawable, r region, mirrorX, mirrorY bool) (region, bool) {
	if in == nil || out == nil || in.Empty() || out.Empty() || r.width <= 0 || r.height <= 0 {
		return r, false
	}

	r.inX, r.outX, r.width = clipAxis(r.inX, r.outX, r.width, in.Width(), out.Width(), mirrorX)
	r.inY, r.outY, r.height = clipAxis(r.inY, r.outY, r.height, in.Height(), out.Height(), mirrorY)

	return r, r.width > 0 && r.height > 0
}

func clipAxis(inPos, outPos, length, inLimit, outLimit int, mirror bool) (int, int, int) {
	if !mirror {
		if inPos < 0 {
			outPos -= inPos
			length += inPos
			inPos = 0
		}
		if outPos < 0 {
			inPos -= outPos
			length += outPos
			outPos = 0
		}
		return inPos, outPos, min(length, inLimit-inPos, outLimit-outPos)
	}

	// the first source element lands on the last output element
	if inPos < 0 {
		length += inPos
		inPos = 0
	}
	if overflow := inPos + length - inLimit; overflow > 0 {
		outPos += overflow
		length -= overflow
	}
	if outPos < 0 {
		length += outPos
		outPos = 0
	}
	if overflow := outPos + length - outLimit; overflow > 0 {
		inPos += overflow
		length -= overflow
	}
	return inPos, outPos, length
}

// clipRect intersects a rectangle with the bounds of a single buffer.
func clipRect(d raster.Drawable, x, y, width, height int) (raster.Rect, bool) {
	if d == nil || d.Empty() || width <= 0 || height <= 0 {
		return raster.Rect{}, false
	}

	roi := raster.Rect{X: x, Y: y, Width: width, Height: height}.
		Intersect(raster.Rect{Width: d.Width(), Height: d.Height()})

	return roi, !roi.Empty()
}

// FitToRoi clips a blit of size from in at inPos to out at outPos so that it
// stays within roi and both buffers. It returns the adjusted input position,
// output position and size, and whether anything remains visible.
func FitToRoi(in raster.Drawable, inPos raster.Point, out raster.Drawable, outPos raster.Point, size raster.Size, roi raster.Rect) (raster.Point, raster.Point, raster.Size, bool) {
	if in == nil || out == nil || in.Empty() || out.Empty() || roi.Empty() || size.Empty() {
		return inPos, outPos, size, false
	}
	if inPos.X < 0 || inPos.Y < 0 {
		return inPos, outPos, size, false
	}

	roi = roi.Intersect(raster.Rect{Width: out.Width(), Height: out.Height()})
	if roi.Empty() {
		return inPos, outPos, size, false
	}

	size.Width = min(size.Width, in.Width()-inPos.X)
	size.Height = min(size.Height, in.Height()-inPos.Y)

	if outPos.X < roi.X {
		diff := roi.X - outPos.X
		inPos.X += diff
		size.Width -= diff
		outPos.X = roi.X
	}
	if outPos.Y < roi.Y {
		diff := roi.Y - outPos.Y
		inPos.Y += diff
		size.Height -= diff
		outPos.Y = roi.Y
	}

	size.Width = min(size.Width, roi.X+roi.Width-outPos.X)
	size.Height = min(size.Height, roi.Y+roi.Height-outPos.Y)

	if size.Empty() {
		return inPos, outPos, raster.Size{}, false
	}
	return inPos, outPos, size, true
}

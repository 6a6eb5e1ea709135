package compose

import "github.com/valerio/go-easel/easel/raster"

// DrawLine rasterizes a line between two points (both included). When roi is
// not empty pixels outside it are left untouched.
func DrawLine(d raster.Drawable, start, end raster.Point, value uint8, roi raster.Rect) {
	if d == nil || d.Empty() {
		return
	}

	bounds := raster.Rect{Width: d.Width(), Height: d.Height()}
	if !roi.Empty() {
		bounds = bounds.Intersect(roi)
		if bounds.Empty() {
			return
		}
	}

	x0, y0 := start.X, start.Y
	dx := abs(end.X - x0)
	dy := -abs(end.Y - y0)
	sx, sy := 1, 1
	if x0 > end.X {
		sx = -1
	}
	if y0 > end.Y {
		sy = -1
	}

	errValue := dx + dy
	for {
		if bounds.Contains(raster.Point{X: x0, Y: y0}) {
			SetPixel(d, x0, y0, value)
		}
		if x0 == end.X && y0 == end.Y {
			return
		}

		e2 := 2 * errValue
		if e2 >= dy {
			errValue += dy
			x0 += sx
		}
		if e2 <= dx {
			errValue += dx
			y0 += sy
		}
	}
}

// DrawRect strokes the outline of roi.
func DrawRect(d raster.Drawable, roi raster.Rect, value uint8) {
	if d == nil || d.Empty() || roi.Empty() {
		return
	}

	right := roi.X + roi.Width - 1
	bottom := roi.Y + roi.Height - 1

	DrawLine(d, raster.Point{X: roi.X, Y: roi.Y}, raster.Point{X: right, Y: roi.Y}, value, raster.Rect{})
	DrawLine(d, raster.Point{X: roi.X, Y: bottom}, raster.Point{X: right, Y: bottom}, value, raster.Rect{})
	DrawLine(d, raster.Point{X: roi.X, Y: roi.Y}, raster.Point{X: roi.X, Y: bottom}, value, raster.Rect{})
	DrawLine(d, raster.Point{X: right, Y: roi.Y}, raster.Point{X: right, Y: bottom}, value, raster.Rect{})
}

// DrawBorder strokes the edge of the whole image. A skipFactor of N >= 2
// omits every Nth pixel while walking the border clockwise, giving a dashed
// outline.
func DrawBorder(d raster.Drawable, value uint8, skipFactor uint) {
	if d == nil || d.Empty() {
		return
	}

	width, height := d.Width(), d.Height()
	if skipFactor < 2 {
		DrawRect(d, raster.Rect{Width: width, Height: height}, value)
		return
	}

	step := uint(0)
	plot := func(x, y int) {
		step++
		if step%skipFactor != 0 {
			SetPixel(d, x, y, value)
		}
	}

	for x := 0; x < width; x++ {
		plot(x, 0)
	}
	for y := 1; y < height; y++ {
		plot(width-1, y)
	}
	if height > 1 {
		for x := width - 2; x >= 0; x-- {
			plot(x, height-1)
		}
	}
	if width > 1 {
		for y := height - 2; y > 0; y-- {
			plot(0, y)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

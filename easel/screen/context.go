package screen

import "github.com/valerio/go-easel/easel/raster"

// Context is a view of the display with its own origin, giving nested UI
// elements a local coordinate space. It owns no memory.
//
// The view reaches from its origin to the right and bottom edges of the
// display: callers pass explicit sizes to operators to stay inside the area
// they mean to draw. A context whose display was resized or released reports
// itself empty.
type Context struct {
	display    *Display
	generation uint64
	x, y       int
}

func (c *Context) valid() bool {
	return c.display != nil && !c.display.Empty() && c.generation == c.display.generation
}

func (c *Context) Width() int {
	if !c.valid() {
		return 0
	}
	return c.display.Width() - c.x
}

func (c *Context) Height() int {
	if !c.valid() {
		return 0
	}
	return c.display.Height() - c.y
}

func (c *Context) ScaleFactor() int {
	if c.display == nil {
		return 1
	}
	return c.display.ScaleFactor()
}

func (c *Context) SingleLayer() bool {
	return c.display != nil && c.display.SingleLayer()
}

func (c *Context) Empty() bool {
	return !c.valid()
}

func (c *Context) Stride() int {
	if !c.valid() {
		return 0
	}
	return c.display.Stride()
}

func (c *Context) offset() int {
	return c.y*c.display.Stride() + c.x
}

func (c *Context) Pixels() []uint8 {
	if !c.valid() {
		return nil
	}
	return c.display.Pixels()[c.offset():]
}

func (c *Context) Transform() []uint8 {
	if !c.valid() {
		return nil
	}
	return c.display.Transform()[c.offset():]
}

// Base returns the display the context looks into and the context origin.
func (c *Context) Base() (raster.Drawable, raster.Point) {
	if c.display == nil {
		return nil, raster.Point{}
	}
	return c.display, raster.Point{X: c.x, Y: c.y}
}

// X returns the origin of the context in display coordinates.
func (c *Context) X() int {
	return c.x
}

func (c *Context) Y() int {
	return c.y
}

// Display returns the display the context looks into.
func (c *Context) Display() *Display {
	return c.display
}

// Scale converts a logical length to physical pixels.
func (c *Context) Scale(v int) int {
	return v * c.ScaleFactor()
}

// TranslateX converts a context x coordinate to a display coordinate.
func (c *Context) TranslateX(v int) int {
	return c.x + v
}

func (c *Context) TranslateY(v int) int {
	return c.y + v
}

// CoordX converts a logical x coordinate to a display coordinate.
func (c *Context) CoordX(v int) int {
	return c.TranslateX(c.Scale(v))
}

func (c *Context) CoordY(v int) int {
	return c.TranslateY(c.Scale(v))
}

// ScaleRect converts a logical rectangle to physical pixels keeping the
// context origin.
func (c *Context) ScaleRect(r raster.Rect) raster.Rect {
	return raster.Rect{X: c.Scale(r.X), Y: c.Scale(r.Y), Width: c.Scale(r.Width), Height: c.Scale(r.Height)}
}

// TranslateRect moves a context rectangle to display coordinates.
func (c *Context) TranslateRect(r raster.Rect) raster.Rect {
	return r.Translate(c.x, c.y)
}

// Area converts a logical rectangle to the display area it covers.
func (c *Context) Area(r raster.Rect) raster.Rect {
	return c.TranslateRect(c.ScaleRect(r))
}

// Render pushes the display area covered by a logical rectangle.
func (c *Context) Render(r raster.Rect) error {
	if !c.valid() {
		return nil
	}
	return c.display.RenderRoi(c.Area(r))
}

var (
	_ raster.Drawable = (*Context)(nil)
	_ raster.View     = (*Context)(nil)
)

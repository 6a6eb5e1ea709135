package screen

import (
	"github.com/valerio/go-easel/easel/compose"
	"github.com/valerio/go-easel/easel/raster"
	"github.com/valerio/go-easel/easel/restorer"
)

// Cursor holds the mouse cursor state of a display. When the engine cannot
// show a hardware cursor, software emulation composites the cursor image
// onto the display right before each push.
type Cursor struct {
	image    *raster.Sprite
	position raster.Point
	visible  bool
	software bool

	// drawn is the display area covered at the last push.
	drawn raster.Rect
}

func newCursor() *Cursor {
	return &Cursor{image: raster.NewSprite(0, 0, 0, 0)}
}

func (c *Cursor) Show(visible bool) {
	c.visible = visible
}

func (c *Cursor) IsVisible() bool {
	return c.visible
}

// Update replaces the cursor image. (offsetX, offsetY) is where the image is
// drawn relative to the pointer position, usually minus the hot spot.
func (c *Cursor) Update(img *raster.Image, offsetX, offsetY int) {
	c.image = raster.SpriteFromImage(img, offsetX, offsetY)
}

func (c *Cursor) SetPosition(x, y int) {
	c.position = raster.Point{X: x, Y: y}
}

func (c *Cursor) Position() raster.Point {
	return c.position
}

func (c *Cursor) EnableSoftwareEmulation(enable bool) {
	c.software = enable
}

func (c *Cursor) IsSoftwareEmulation() bool {
	return c.software
}

// area returns the display area the cursor covers, empty when nothing has
// to be composited.
func (c *Cursor) area() raster.Rect {
	if !c.visible || !c.software || c.image.Empty() {
		return raster.Rect{}
	}
	return raster.Rect{
		X:      c.position.X + c.image.X(),
		Y:      c.position.Y + c.image.Y(),
		Width:  c.image.Width(),
		Height: c.image.Height(),
	}
}

// draw composites the cursor onto d and returns the restorer removing it.
func (c *Cursor) draw(d raster.Drawable) *restorer.Restorer {
	area := c.area()
	c.drawn = area
	if area.Empty() {
		return nil
	}

	saved := restorer.New(d, area.X, area.Y, area.Width, area.Height)
	compose.BlitAt(c.image, d, area.X, area.Y, false)
	return saved
}

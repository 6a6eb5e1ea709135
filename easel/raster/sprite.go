package raster

// Sprite is an Image with an anchor offset telling where its top-left corner
// lands on a target. The offset is metadata only.
type Sprite struct {
	Image
	x int
	y int
}

// NewSprite allocates a sprite anchored at (x, y).
func NewSprite(width, height, x, y int) *Sprite {
	return NewScaledSprite(width, height, x, y, 1)
}

func NewScaledSprite(width, height, x, y, scaleFactor int) *Sprite {
	s := &Sprite{x: x, y: y}
	s.Image.scaleFactor = 1
	s.ResizeScaled(width, height, scaleFactor)
	return s
}

// SpriteFromImage copies img into a new sprite anchored at (x, y).
func SpriteFromImage(img *Image, x, y int) *Sprite {
	s := &Sprite{x: x, y: y}
	if img != nil {
		s.Image = *img.Clone()
	} else {
		s.Image.scaleFactor = 1
	}
	return s
}

func (s *Sprite) X() int {
	return s.x
}

func (s *Sprite) Y() int {
	return s.y
}

func (s *Sprite) Position() Point {
	return Point{X: s.x, Y: s.y}
}

func (s *Sprite) SetPosition(x, y int) {
	s.x = x
	s.y = y
}

// Rect returns the area the sprite covers when drawn at its anchor.
func (s *Sprite) Rect() Rect {
	return Rect{X: s.x, Y: s.y, Width: s.width, Height: s.height}
}

// Clone returns a deep copy keeping the anchor.
func (s *Sprite) Clone() *Sprite {
	return &Sprite{Image: *s.Image.Clone(), x: s.x, y: s.y}
}

var _ Drawable = (*Sprite)(nil)

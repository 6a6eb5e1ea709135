// Package demo is a small animated scene driving every part of the engine:
// a moving sprite with a cast shadow kept clean by a restorer, a modal
// window popping up over it and a palette cycling animation.
package demo

import (
	"log/slog"

	"github.com/valerio/go-easel/easel/compose"
	"github.com/valerio/go-easel/easel/palette"
	"github.com/valerio/go-easel/easel/raster"
	"github.com/valerio/go-easel/easel/restorer"
	"github.com/valerio/go-easel/easel/screen"
	"github.com/valerio/go-easel/easel/window"
)

const (
	tileSize     = 32
	heroSize     = 24
	heroSpeed    = 3
	shadowOffset = 4

	// DialogPeriod is the number of frames between dialog toggles.
	DialogPeriod = 90
	// CyclePeriod is the number of frames between palette rotations.
	CyclePeriod = 8

	cycleStart = 8
	cycleEnd   = 16
)

// Scene holds the demo state. It is not safe for concurrent use.
type Scene struct {
	display *screen.Display
	frame   int

	hero         [2]*raster.Sprite // facing right, facing left
	heroPosition raster.Point
	velocity     raster.Point
	heroRestorer *restorer.Restorer

	dialog           *window.StandardWindow
	dialogBackground *raster.Image

	cycle       []uint8
	cycleOffset int
}

// New prepares the scene for d, which must be allocated.
func New(d *screen.Display) *Scene {
	s := &Scene{
		display:      d,
		heroPosition: raster.Point{X: tileSize, Y: tileSize},
		velocity:     raster.Point{X: heroSpeed, Y: heroSpeed - 1},
		cycle:        palette.Default(),
	}

	base := heroImage()
	s.hero[0] = compose.AddShadow(raster.SpriteFromImage(base, 0, 0),
		raster.Point{X: -shadowOffset, Y: shadowOffset}, raster.TransformShadow3)
	s.hero[1] = compose.AddShadow(raster.SpriteFromImage(compose.Flip(base, true, false), 0, 0),
		raster.Point{X: -shadowOffset, Y: shadowOffset}, raster.TransformShadow3)

	s.dialogBackground = dialogBackground()

	d.Subscribe(s.cyclePalette, nil)
	return s
}

// heroImage draws a small ship: a hull with a contour and a cockpit on the
// right so flipping is visible.
func heroImage() *raster.Image {
	img := raster.NewImage(heroSize, heroSize)
	img.Reset()

	hull := raster.NewImage(heroSize-4, heroSize/2)
	hull.Fill(palette.GetColorID(200, 200, 0))
	compose.BlitAt(hull, img, 2, heroSize/4, false)

	cockpit := raster.NewImage(heroSize/4, heroSize/4)
	cockpit.Fill(palette.Cyan)
	compose.BlitAt(cockpit, img, heroSize-heroSize/4-3, heroSize/4+2, false)

	outline := compose.CreateColorContour(img, palette.Black)
	compose.BlitSprite(outline, img, false)
	return img
}

// dialogBackground builds a framed tile that the window stretches.
func dialogBackground() *raster.Image {
	img := raster.NewImage(tileSize, tileSize)
	img.Fill(palette.GetColorID(160, 120, 60))
	compose.DrawBorder(img, palette.GetColorID(90, 60, 20), 0)
	compose.DrawRect(img, raster.Rect{X: 2, Y: 2, Width: tileSize - 4, Height: tileSize - 4}, palette.GetColorID(220, 190, 120))
	compose.ApplyPaletteType(img, palette.Sepia)
	return img
}

// CursorImage returns an arrow pointer with its hot spot at the top left.
func CursorImage() *raster.Image {
	const size = 10
	img := raster.NewImage(size, size)
	img.Reset()

	for y := 0; y < size; y++ {
		compose.DrawLine(img, raster.Point{X: 0, Y: y}, raster.Point{X: y * 2 / 3, Y: y}, palette.White, raster.Rect{})
	}
	compose.DrawLine(img, raster.Point{}, raster.Point{X: 0, Y: size - 1}, palette.Black, raster.Rect{})
	compose.DrawLine(img, raster.Point{}, raster.Point{X: (size - 1) * 2 / 3, Y: size - 1}, palette.Black, raster.Rect{})
	return img
}

// DrawBackground paints the static playfield and schedules a full push.
func (s *Scene) DrawBackground() {
	d := s.display
	dark, light := palette.GetColorID(30, 60, 30), palette.GetColorID(40, 90, 40)

	tile := raster.NewImage(tileSize, tileSize)
	for y := 0; y < d.Height(); y += tileSize {
		for x := 0; x < d.Width(); x += tileSize {
			if (x/tileSize+y/tileSize)%2 == 0 {
				tile.Fill(dark)
			} else {
				tile.Fill(light)
			}
			compose.BlitAt(tile, d, x, y, false)
		}
	}

	// the gray ramp stripe is what the palette cycling animates
	for i := cycleStart; i < cycleEnd; i++ {
		compose.Fill(d, (i-cycleStart)*tileSize/2, d.Height()-tileSize/2, tileSize/2, tileSize/2, uint8(i))
	}

	compose.DrawBorder(d, palette.White, 3)

	// the previous snapshot predates the new background
	if s.heroRestorer != nil {
		s.heroRestorer.Reset()
	}
	s.heroRestorer = restorer.New(d, 0, 0, 0, 0)
	s.drawHero()
	d.UpdateNextRenderRoi(raster.Rect{Width: d.Width(), Height: d.Height()})
}

func (s *Scene) heroSprite() *raster.Sprite {
	if s.velocity.X < 0 {
		return s.hero[1]
	}
	return s.hero[0]
}

func (s *Scene) heroArea() raster.Rect {
	sprite := s.heroSprite()
	return raster.Rect{
		X:      s.heroPosition.X + sprite.X(),
		Y:      s.heroPosition.Y + sprite.Y(),
		Width:  sprite.Width(),
		Height: sprite.Height(),
	}
}

func (s *Scene) drawHero() {
	area := s.heroArea()
	s.heroRestorer.Update(area.X, area.Y, area.Width, area.Height)
	compose.BlitAt(s.heroSprite(), s.display, area.X, area.Y, false)
}

// move bounces the hero off the screen edges.
func (s *Scene) move() {
	next := raster.Point{X: s.heroPosition.X + s.velocity.X, Y: s.heroPosition.Y + s.velocity.Y}
	if next.X < 0 || next.X+heroSize > s.display.Width() {
		s.velocity.X = -s.velocity.X
	}
	if next.Y < 0 || next.Y+heroSize > s.display.Height() {
		s.velocity.Y = -s.velocity.Y
	}
	s.heroPosition = raster.Point{X: s.heroPosition.X + s.velocity.X, Y: s.heroPosition.Y + s.velocity.Y}
}

// Step advances the scene by one frame and pushes what changed.
func (s *Scene) Step() error {
	if s.heroRestorer == nil {
		s.DrawBackground()
	}

	s.frame++
	var dirty raster.Rect

	if s.frame%DialogPeriod == 0 {
		dirty = s.toggleDialog()
	}

	// the dialog is modal: the hero only moves while it is closed
	if s.dialog == nil {
		old := s.heroArea()
		s.heroRestorer.Restore()
		s.move()
		s.drawHero()
		dirty = dirty.Union(old).Union(s.heroArea())
	}

	return s.display.RenderRoi(dirty)
}

func (s *Scene) toggleDialog() raster.Rect {
	if s.dialog != nil {
		area := s.dialog.TotalArea()
		s.dialog.Close()
		s.dialog = nil
		slog.Debug("Dialog closed", "frame", s.frame)
		return area
	}

	ctx := s.display.GetContext(0, 0)
	width, height := s.display.Width()/3, s.display.Height()/4
	s.dialog = window.NewCentered(ctx, width, height, s.dialogBackground)

	// a shrunken copy of the hero as the dialog icon
	icon := raster.NewImage(heroSize/2, heroSize/2)
	compose.Resize(s.hero[0], icon, false)
	active := s.dialog.ActiveArea()
	compose.BlitAt(icon, ctx, active.X+(active.Width-icon.Width())/2, active.Y+(active.Height-icon.Height())/2, false)

	slog.Debug("Dialog opened", "frame", s.frame, "area", s.dialog.WindowArea())
	return s.dialog.TotalArea()
}

// cyclePalette rotates the gray ramp every CyclePeriod frames.
func (s *Scene) cyclePalette() []uint8 {
	if s.frame == 0 || s.frame%CyclePeriod != 0 {
		return nil
	}

	s.cycleOffset = (s.cycleOffset + 1) % (cycleEnd - cycleStart)
	base := palette.Default()
	for i := cycleStart; i < cycleEnd; i++ {
		from := cycleStart + (i-cycleStart+s.cycleOffset)%(cycleEnd-cycleStart)
		copy(s.cycle[i*3:i*3+3], base[from*3:from*3+3])
	}
	return s.cycle
}

// Close removes the dialog if open and the hero from the screen.
func (s *Scene) Close() {
	if s.dialog != nil {
		s.dialog.Close()
		s.dialog = nil
	}
	if s.heroRestorer != nil {
		s.heroRestorer.Close()
	}
	s.display.Subscribe(nil, nil)
}

// DialogOpen reports whether the modal window is shown.
func (s *Scene) DialogOpen() bool {
	return s.dialog != nil
}

// HeroPosition returns where the hero is drawn.
func (s *Scene) HeroPosition() raster.Point {
	return s.heroPosition
}

// Frame returns the number of steps taken.
func (s *Scene) Frame() int {
	return s.frame
}

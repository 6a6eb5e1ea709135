// Package screen owns the display surface: the screen sized buffer every UI
// element draws into, the views into it and the contract with the render
// engine pushing it to a physical output.
package screen

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/valerio/go-easel/easel/internal/check"
	"github.com/valerio/go-easel/easel/palette"
	"github.com/valerio/go-easel/easel/raster"
)

const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

// ErrReleased is returned when a released display is asked to render.
var ErrReleased = errors.New("display released")

// Display is the screen buffer. It is a single layer image: only palette
// indexes reach the engine.
type Display struct {
	raster.Image

	engine Engine
	cursor *Cursor

	fullscreen bool
	released   bool

	// generation changes whenever the buffer is reallocated or released so
	// that contexts taken before can tell they are stale.
	generation uint64

	// pending accumulates areas to push along with the next render.
	pending raster.Rect

	palette    []uint8
	preRender  func() []uint8
	postRender func()
}

// NewDisplay creates an unallocated display driving engine. A nil engine is
// replaced by a NullEngine.
func NewDisplay(engine Engine) *Display {
	if engine == nil {
		engine = NewNullEngine()
	}

	d := &Display{
		Image:   *raster.NewImage(0, 0),
		engine:  engine,
		cursor:  newCursor(),
		palette: palette.Default(),
	}
	d.DisableTransformLayer()
	return d
}

// Resize reallocates the display keeping its scale factor. Content is lost.
func (d *Display) Resize(width, height int) error {
	return d.ResizeScaled(width, height, d.ScaleFactor())
}

// ResizeScaled asks the engine for an output of the given size and
// reallocates the buffer. The whole screen is pushed on the next render.
func (d *Display) ResizeScaled(width, height, scaleFactor int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid display size %dx%d", width, height)
	}
	scaleFactor = max(scaleFactor, 1)
	if !d.released && width == d.Width() && height == d.Height() && scaleFactor == d.ScaleFactor() {
		return nil
	}

	if err := d.engine.Allocate(width, height, d.fullscreen); err != nil {
		return fmt.Errorf("failed to allocate %dx%d output: %w", width, height, err)
	}

	d.Image.ResizeScaled(width, height, scaleFactor)
	d.Fill(palette.Black)
	d.released = false
	d.generation++
	d.pending = raster.Rect{Width: width, Height: height}
	d.engine.UpdatePalette(d.palette)

	slog.Debug("Display allocated", "width", width, "height", height, "scale", d.ScaleFactor())
	return nil
}

// SetFullScreen selects the mode used by the next allocation.
func (d *Display) SetFullScreen(fullscreen bool) {
	d.fullscreen = fullscreen
}

// Engine returns the render engine the display pushes frames to.
func (d *Display) Engine() Engine {
	return d.engine
}

func (d *Display) Cursor() *Cursor {
	return d.cursor
}

// Released reports whether Release was called since the last allocation.
func (d *Display) Released() bool {
	return d.released
}

// IsDefaultSize reports whether the logical size is 640x480.
func (d *Display) IsDefaultSize() bool {
	scale := d.ScaleFactor()
	return d.Width() == DefaultWidth*scale && d.Height() == DefaultHeight*scale
}

// GetContext returns a view whose origin is (x, y) clamped into the buffer.
func (d *Display) GetContext(x, y int) *Context {
	if d.Empty() {
		return &Context{display: d, generation: d.generation}
	}

	return &Context{
		display:    d,
		generation: d.generation,
		x:          min(max(x, 0), d.Width()-1),
		y:          min(max(y, 0), d.Height()-1),
	}
}

// UpdateNextRenderRoi schedules an area to be pushed with the next render.
func (d *Display) UpdateNextRenderRoi(roi raster.Rect) {
	d.pending = d.pending.Union(roi)
}

// Render pushes the whole screen.
func (d *Display) Render() error {
	return d.RenderRoi(raster.Rect{Width: d.Width(), Height: d.Height()})
}

// RenderRoi pushes roi together with any pending area and the cursor.
func (d *Display) RenderRoi(roi raster.Rect) error {
	if d.released {
		return ErrReleased
	}
	if d.Empty() {
		return nil
	}

	if d.preRender != nil {
		if table := d.preRender(); table != nil {
			d.ChangePalette(table, false)
		}
	}

	previous := d.cursor.drawn
	saved := d.cursor.draw(d)

	area := roi.Union(d.pending).Union(previous).Union(d.cursor.drawn).
		Intersect(raster.Rect{Width: d.Width(), Height: d.Height()})

	var err error
	if !area.Empty() {
		err = d.engine.Render(d, area)
	}

	if saved != nil {
		saved.Close()
	}

	if err != nil {
		return fmt.Errorf("failed to render %v: %w", area, err)
	}
	d.pending = raster.Rect{}

	if d.postRender != nil {
		d.postRender()
	}
	return nil
}

// ChangePalette makes the engine use a new output palette of 256 RGB
// triplets. nil restores the default palette. Unless force is set nothing
// happens when the palette is already active.
func (d *Display) ChangePalette(table []uint8, force bool) {
	if table == nil {
		table = palette.Default()
	}
	if !check.Precondition(len(table) == palette.Size*3, "palette must have 256 RGB entries", "size", len(table)) {
		return
	}
	if !force && slices.Equal(table, d.palette) {
		return
	}

	d.palette = slices.Clone(table)
	d.engine.UpdatePalette(d.palette)
}

// Palette returns a copy of the active output palette.
func (d *Display) Palette() []uint8 {
	return slices.Clone(d.palette)
}

// Subscribe installs hooks run around every push. pre may return a new
// palette, which is how color cycling animations are driven; post runs
// after a successful push. Either may be nil.
func (d *Display) Subscribe(pre func() []uint8, post func()) {
	d.preRender = pre
	d.postRender = post
}

// Release frees the buffer and closes the engine. Contexts obtained earlier
// become empty.
func (d *Display) Release() error {
	if d.released {
		return nil
	}

	d.released = true
	d.generation++
	d.pending = raster.Rect{}
	d.Clear()
	d.engine.Clear()

	if err := d.engine.Close(); err != nil {
		return fmt.Errorf("failed to close render engine: %w", err)
	}
	return nil
}

var _ raster.Drawable = (*Display)(nil)

var instance *Display

// Instance returns the display owned by the frame loop, creating an
// unallocated one driving a NullEngine on first use.
func Instance() *Display {
	if instance == nil {
		instance = NewDisplay(nil)
	}
	return instance
}

// SetInstance installs the display returned by Instance.
func SetInstance(d *Display) {
	instance = d
}

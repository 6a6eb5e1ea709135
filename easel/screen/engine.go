package screen

import "github.com/valerio/go-easel/easel/raster"

// Engine pushes finished frames to a physical output. Implementations live
// in the backend packages.
type Engine interface {
	// Allocate prepares an output surface of the given size.
	Allocate(width, height int, fullscreen bool) error

	// Render pushes the roi area of frame to the output. frame is the whole
	// display and only its image layer is meaningful.
	Render(frame raster.Drawable, roi raster.Rect) error

	// UpdatePalette receives 256 RGB triplets used to turn palette indexes
	// into output colors.
	UpdatePalette(rgb []uint8)

	AvailableResolutions() []raster.Size
	IsMouseCursorActive() bool

	Clear()
	ToggleFullScreen()
	IsFullScreen() bool
	SetTitle(title string)

	Close() error
}

// BaseEngine implements every Engine method as a no-op. Backends embed it
// and override what they support.
type BaseEngine struct {
	fullscreen bool
	title      string
}

func (e *BaseEngine) Allocate(width, height int, fullscreen bool) error {
	e.fullscreen = fullscreen
	return nil
}

func (e *BaseEngine) Render(frame raster.Drawable, roi raster.Rect) error {
	return nil
}

func (e *BaseEngine) UpdatePalette(rgb []uint8) {}

// AvailableResolutions reports the default display size only.
func (e *BaseEngine) AvailableResolutions() []raster.Size {
	return []raster.Size{{Width: DefaultWidth, Height: DefaultHeight}}
}

func (e *BaseEngine) IsMouseCursorActive() bool {
	return false
}

func (e *BaseEngine) Clear() {}

func (e *BaseEngine) ToggleFullScreen() {
	e.fullscreen = !e.fullscreen
}

func (e *BaseEngine) IsFullScreen() bool {
	return e.fullscreen
}

func (e *BaseEngine) SetTitle(title string) {
	e.title = title
}

// Title returns the last title set.
func (e *BaseEngine) Title() string {
	return e.title
}

func (e *BaseEngine) Close() error {
	return nil
}

// NullEngine discards every frame. It is what a Display uses until a real
// backend is attached.
type NullEngine struct {
	BaseEngine
}

func NewNullEngine() *NullEngine {
	return &NullEngine{}
}

var _ Engine = (*NullEngine)(nil)

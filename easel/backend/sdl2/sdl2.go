//go:build sdl2

package sdl2

import (
	"fmt"
	"log/slog"
	"slices"
	"unsafe"

	"github.com/valerio/go-easel/easel/backend"
	"github.com/valerio/go-easel/easel/debug"
	"github.com/valerio/go-easel/easel/display"
	"github.com/valerio/go-easel/easel/input"
	"github.com/valerio/go-easel/easel/input/action"
	"github.com/valerio/go-easel/easel/input/event"
	"github.com/valerio/go-easel/easel/palette"
	"github.com/valerio/go-easel/easel/raster"
	"github.com/valerio/go-easel/easel/screen"
	"github.com/veandco/go-sdl2/sdl"
)

// Backend implements the Backend interface using SDL2 bindings
// Note: building this requires SDL2 development libraries installed.
// Default builds skip this and use a stubbed renderer, see build tags (sdl2)
type Backend struct {
	screen.BaseEngine

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	running  bool
	config   backend.Config
	input    *input.Manager

	width, height int
	pixels        []byte
	palette       []uint8

	// last pushed frame, kept for snapshots
	frame raster.Drawable
}

// New creates a new SDL2 backend
func New() *Backend {
	return &Backend{
		palette: palette.Default(),
	}
}

// Init initializes SDL2 and opens the window
func (s *Backend) Init(config backend.Config) error {
	s.config = config

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("failed to initialize SDL2: %w", err)
	}

	if config.NearestScaling {
		sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "0")
	} else {
		sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "1")
	}

	scale := max(config.Scale, 1)
	width, height := config.Width, config.Height
	if width <= 0 || height <= 0 {
		width, height = display.DefaultWindowWidth, display.DefaultWindowHeight
	}

	var flags uint32 = sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE
	if config.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	window, err := sdl.CreateWindow(
		config.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(width*scale),
		int32(height*scale),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("failed to create window: %w", err)
	}
	s.window = window

	var rendererFlags uint32 = sdl.RENDERER_ACCELERATED
	if config.VSync {
		rendererFlags |= sdl.RENDERER_PRESENTVSYNC
	}
	renderer, err := sdl.CreateRenderer(window, -1, rendererFlags)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	s.renderer = renderer

	s.running = true
	s.setupCallbacks()

	slog.Info("SDL2 backend initialized", "width", width, "height", height, "scale", scale)
	return nil
}

// Allocate creates the streaming texture the display is copied to.
func (s *Backend) Allocate(width, height int, fullscreen bool) error {
	if s.renderer == nil {
		return fmt.Errorf("SDL2 backend not initialized")
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid output size %dx%d", width, height)
	}

	if s.texture != nil {
		s.texture.Destroy()
		s.texture = nil
	}

	// ABGR8888 is R, G, B, A in memory on little-endian machines
	texture, err := s.renderer.CreateTexture(
		sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING,
		int32(width),
		int32(height),
	)
	if err != nil {
		return fmt.Errorf("failed to create texture: %w", err)
	}
	s.texture = texture
	s.width, s.height = width, height
	s.pixels = make([]byte, width*height*display.RGBABytesPerPixel)

	if err := s.renderer.SetLogicalSize(int32(width), int32(height)); err != nil {
		slog.Warn("Failed to set logical size", "error", err)
	}

	if fullscreen != s.IsFullScreen() {
		s.ToggleFullScreen()
	}
	return nil
}

// Render converts the roi area to RGBA and presents the texture.
func (s *Backend) Render(frame raster.Drawable, roi raster.Rect) error {
	if s.texture == nil {
		return fmt.Errorf("output not allocated")
	}

	roi = roi.Intersect(raster.Rect{Width: min(frame.Width(), s.width), Height: min(frame.Height(), s.height)})
	pixels, stride := frame.Pixels(), frame.Stride()

	for y := roi.Y; y < roi.Y+roi.Height; y++ {
		for x := roi.X; x < roi.X+roi.Width; x++ {
			r, g, b := display.Color(s.palette, pixels[y*stride+x])
			i := (y*s.width + x) * display.RGBABytesPerPixel
			s.pixels[i] = r
			s.pixels[i+1] = g
			s.pixels[i+2] = b
			s.pixels[i+3] = display.FullAlpha
		}
	}
	s.frame = frame

	if err := s.texture.Update(nil, unsafe.Pointer(&s.pixels[0]), s.width*display.RGBABytesPerPixel); err != nil {
		return fmt.Errorf("failed to update texture: %w", err)
	}

	s.renderer.SetDrawColor(0, 0, 0, display.FullAlpha)
	s.renderer.Clear()
	s.renderer.Copy(s.texture, nil, nil)
	s.renderer.Present()
	return nil
}

func (s *Backend) UpdatePalette(rgb []uint8) {
	s.palette = slices.Clone(rgb)
}

// AvailableResolutions lists the modes of the primary display.
func (s *Backend) AvailableResolutions() []raster.Size {
	count, err := sdl.GetNumDisplayModes(0)
	if err != nil || count <= 0 {
		return s.BaseEngine.AvailableResolutions()
	}

	var sizes []raster.Size
	for i := 0; i < count; i++ {
		mode, err := sdl.GetDisplayMode(0, i)
		if err != nil {
			continue
		}
		size := raster.Size{Width: int(mode.W), Height: int(mode.H)}
		if !slices.Contains(sizes, size) {
			sizes = append(sizes, size)
		}
	}
	return sizes
}

func (s *Backend) IsMouseCursorActive() bool {
	shown, err := sdl.ShowCursor(sdl.QUERY)
	return err == nil && shown == sdl.ENABLE
}

func (s *Backend) Clear() {
	if s.renderer == nil {
		return
	}
	s.renderer.SetDrawColor(0, 0, 0, display.FullAlpha)
	s.renderer.Clear()
	s.renderer.Present()
}

func (s *Backend) ToggleFullScreen() {
	s.BaseEngine.ToggleFullScreen()
	if s.window == nil {
		return
	}

	var flags uint32
	if s.IsFullScreen() {
		flags = sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	if err := s.window.SetFullscreen(flags); err != nil {
		slog.Warn("Failed to change fullscreen mode", "error", err)
	}
}

func (s *Backend) SetTitle(title string) {
	s.BaseEngine.SetTitle(title)
	if s.window != nil {
		s.window.SetTitle(title)
	}
}

// Update processes SDL events
func (s *Backend) Update() error {
	if !s.running {
		return nil
	}

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		s.handleEvent(ev)
	}
	return nil
}

// Close releases SDL2 resources
func (s *Backend) Close() error {
	slog.Info("Cleaning up SDL2 backend")

	if s.texture != nil {
		s.texture.Destroy()
		s.texture = nil
	}
	if s.renderer != nil {
		s.renderer.Destroy()
		s.renderer = nil
	}
	if s.window != nil {
		s.window.Destroy()
		s.window = nil
	}
	sdl.Quit()

	return nil
}

func (s *Backend) handleEvent(ev sdl.Event) {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		s.quit()

	case *sdl.KeyboardEvent:
		// Ignore key repeat events
		if e.Repeat != 0 {
			return
		}
		name, ok := keyNames[e.Keysym.Sym]
		if !ok {
			return
		}
		if e.Type == sdl.KEYDOWN {
			s.input.TriggerKey(name, event.Press)
		} else if e.Type == sdl.KEYUP {
			s.input.TriggerKey(name, event.Release)
		}
	}
}

// keyNames maps SDL2 keys to the names used in default mappings
var keyNames = map[sdl.Keycode]string{
	sdl.K_ESCAPE: "Escape",
	sdl.K_SPACE:  "Space",
	sdl.K_F11:    "F11",
	sdl.K_F12:    "F12",
	sdl.K_q:      "q",
	sdl.K_p:      "p",
	sdl.K_n:      "n",
	sdl.K_c:      "c",
	sdl.K_t:      "t",
}

// setupCallbacks registers the actions the window handles itself.
func (s *Backend) setupCallbacks() {
	s.input = s.config.Input
	if s.input == nil {
		s.input = input.NewManager()
	}

	s.input.On(action.Quit, event.Press, s.quit)
	s.input.On(action.FullscreenToggle, event.Press, s.ToggleFullScreen)
	s.input.On(action.Snapshot, event.Press, func() {
		if s.frame != nil {
			s.config.Callbacks.SnapshotSaved(debug.TakeSnapshot(s.frame, s.palette))
		}
	})
}

func (s *Backend) quit() {
	if !s.running {
		return
	}
	s.running = false
	s.config.Callbacks.Quit()
}

//go:build linux && drm

package drm

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"sync/atomic"
	"syscall"

	godrm "github.com/kytart/godrm/pkg/drm"
	"github.com/kytart/godrm/pkg/mode"
	"github.com/valerio/go-easel/easel/backend"
	"github.com/valerio/go-easel/easel/palette"
	"github.com/valerio/go-easel/easel/raster"
	"github.com/valerio/go-easel/easel/screen"
	"launchpad.net/gommap"
)

// Backend implements the Backend interface on a linux DRM dumb buffer,
// for consoles without a window system. The display is scaled by an
// integer factor and centered on the first connected output.
type Backend struct {
	screen.BaseEngine

	file    *os.File
	modeset *mode.SimpleModeset
	output  *mode.Modeset

	fb        *mode.FB
	fbID      uint32
	data      gommap.MMap
	savedCrtc *mode.Crtc

	placement placement
	palette   []uint8
	config    backend.Config
	running   atomic.Bool
	quitting  bool
	done      chan struct{}
}

// New creates a new DRM backend
func New() *Backend {
	return &Backend{
		palette: palette.Default(),
	}
}

// Init opens the first DRM card and picks its first connected output.
func (b *Backend) Init(config backend.Config) error {
	b.config = config

	file, err := godrm.OpenCard(0)
	if err != nil {
		return fmt.Errorf("open drm card: %w", err)
	}

	if !godrm.HasDumbBuffer(file) {
		file.Close()
		return fmt.Errorf("drm device does not support dumb buffers")
	}

	modeset, err := mode.NewSimpleModeset(file)
	if err != nil {
		file.Close()
		return fmt.Errorf("create modeset: %w", err)
	}
	if len(modeset.Modesets) == 0 {
		file.Close()
		return fmt.Errorf("no connected output")
	}

	b.file = file
	b.modeset = modeset
	b.output = &modeset.Modesets[0]
	b.running.Store(true)

	b.done = make(chan struct{})
	go b.handleSignals(b.done)

	slog.Info("DRM backend initialized", "width", b.output.Width, "height", b.output.Height)
	return nil
}

// Allocate sets up the framebuffer on first use and recomputes where the
// display lands on the output.
func (b *Backend) Allocate(width, height int, fullscreen bool) error {
	if b.file == nil {
		return fmt.Errorf("DRM backend not initialized")
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid output size %dx%d", width, height)
	}

	if b.fb == nil {
		if err := b.createFramebuffer(); err != nil {
			return err
		}
	}

	clear(b.data)
	b.placement = fit(width, height, int(b.output.Width), int(b.output.Height))
	return b.BaseEngine.Allocate(width, height, true)
}

func (b *Backend) createFramebuffer() error {
	fb, err := mode.CreateFB(b.file, b.output.Width, b.output.Height, 32)
	if err != nil {
		return fmt.Errorf("create framebuffer: %w", err)
	}

	fbID, err := mode.AddFB(b.file, b.output.Width, b.output.Height, 24, 32, fb.Pitch, fb.Handle)
	if err != nil {
		return fmt.Errorf("create dumb buffer: %w", err)
	}

	offset, err := mode.MapDumb(b.file, fb.Handle)
	if err != nil {
		return fmt.Errorf("map dumb: %w", err)
	}

	data, err := gommap.MapAt(0, b.file.Fd(), int64(offset), int64(fb.Size), gommap.PROT_READ|gommap.PROT_WRITE, gommap.MAP_SHARED)
	if err != nil {
		return fmt.Errorf("mmap framebuffer: %w", err)
	}

	// save current CRTC of this output to restore at exit
	savedCrtc, err := mode.GetCrtc(b.file, b.output.Crtc)
	if err != nil {
		return fmt.Errorf("get CRTC for connector %d: %w", b.output.Conn, err)
	}

	if err := mode.SetCrtc(b.file, b.output.Crtc, fbID, 0, 0, &b.output.Conn, 1, &b.output.Mode); err != nil {
		return fmt.Errorf("set CRTC for connector %d: %w", b.output.Conn, err)
	}

	b.fb = fb
	b.fbID = fbID
	b.data = data
	b.savedCrtc = savedCrtc
	return nil
}

// Render writes the roi area straight into the mapped framebuffer.
func (b *Backend) Render(frame raster.Drawable, roi raster.Rect) error {
	if b.fb == nil {
		return fmt.Errorf("output not allocated")
	}

	writeXRGB(b.data, int(b.fb.Pitch), int(b.output.Width), int(b.output.Height), frame, roi, b.palette, b.placement)
	return nil
}

func (b *Backend) UpdatePalette(rgb []uint8) {
	b.palette = slices.Clone(rgb)
}

// AvailableResolutions reports the sizes that fill the output at an integer scale.
func (b *Backend) AvailableResolutions() []raster.Size {
	if b.output == nil {
		return b.BaseEngine.AvailableResolutions()
	}

	width, height := int(b.output.Width), int(b.output.Height)
	var sizes []raster.Size
	for scale := 1; scale <= 4; scale++ {
		if width%scale == 0 && height%scale == 0 {
			sizes = append(sizes, raster.Size{Width: width / scale, Height: height / scale})
		}
	}
	return sizes
}

func (b *Backend) Clear() {
	clear(b.data)
}

// Update forwards quit requests received as signals.
func (b *Backend) Update() error {
	if !b.running.Load() && !b.quitting {
		b.quitting = true
		b.config.Callbacks.Quit()
	}
	return nil
}

// Close restores the saved CRTC and frees the framebuffer.
func (b *Backend) Close() error {
	if b.done != nil {
		close(b.done)
		b.done = nil
	}
	if b.file == nil {
		return nil
	}

	var err error
	if b.fb != nil {
		err = b.destroyFramebuffer()
	}

	if closeErr := b.file.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close drm card: %w", closeErr)
	}
	b.file = nil
	return err
}

func (b *Backend) destroyFramebuffer() error {
	defer func() { b.fb = nil }()

	if err := b.data.UnsafeUnmap(); err != nil {
		return fmt.Errorf("munmap memory: %w", err)
	}

	if err := mode.RmFB(b.file, b.fbID); err != nil {
		return fmt.Errorf("remove frame buffer: %w", err)
	}

	if err := mode.DestroyDumb(b.file, b.fb.Handle); err != nil {
		return fmt.Errorf("destroy dumb buffer: %w", err)
	}

	return b.modeset.SetCrtc(b.output, b.savedCrtc)
}

func (b *Backend) handleSignals(done <-chan struct{}) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)

	select {
	case <-signals:
		b.running.Store(false)
	case <-done:
	}
}

package headless

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/valerio/go-easel/easel/backend"
	"github.com/valerio/go-easel/easel/compose"
	"github.com/valerio/go-easel/easel/debug"
	"github.com/valerio/go-easel/easel/palette"
	"github.com/valerio/go-easel/easel/raster"
	"github.com/valerio/go-easel/easel/screen"
)

// Backend implements the Backend interface for automated testing and batch processing.
// It keeps what a physical output would show in memory.
type Backend struct {
	screen.BaseEngine

	config         backend.Config
	frameCount     int
	maxFrames      int
	snapshotConfig SnapshotConfig

	output  *raster.Image
	palette []uint8
	rois    []raster.Rect
}

// SnapshotConfig holds configuration for frame snapshots
type SnapshotConfig struct {
	Enabled   bool
	Interval  int    // Save snapshot every N frames
	Directory string // Directory to save snapshots
	Name      string // Prefix for snapshot filenames
	Scale     int    // Upscale factor of saved PNGs
}

// New creates a headless backend that asks to quit after maxFrames updates.
// A non-positive maxFrames never quits.
func New(maxFrames int, snapshotConfig SnapshotConfig) *Backend {
	return &Backend{
		maxFrames:      maxFrames,
		snapshotConfig: snapshotConfig,
		output:         raster.NewImage(0, 0),
		palette:        palette.Default(),
	}
}

func (h *Backend) Init(config backend.Config) error {
	h.config = config

	slog.Info("Running headless mode",
		"frames", h.maxFrames,
		"snapshot_interval", h.snapshotConfig.Interval,
		"snapshot_dir", h.snapshotConfig.Directory)

	return nil
}

// Allocate prepares the in-memory output.
func (h *Backend) Allocate(width, height int, fullscreen bool) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid output size %dx%d", width, height)
	}

	h.output.Resize(width, height)
	return h.BaseEngine.Allocate(width, height, fullscreen)
}

// Render copies the roi area of frame to the in-memory output.
func (h *Backend) Render(frame raster.Drawable, roi raster.Rect) error {
	if h.output.Empty() {
		return fmt.Errorf("output not allocated")
	}

	compose.CopyRegion(frame, roi.X, roi.Y, h.output, roi.X, roi.Y, roi.Width, roi.Height)
	h.rois = append(h.rois, roi)
	return nil
}

func (h *Backend) UpdatePalette(rgb []uint8) {
	h.palette = slices.Clone(rgb)
}

// AvailableResolutions reports the configured size along with the default one.
func (h *Backend) AvailableResolutions() []raster.Size {
	sizes := h.BaseEngine.AvailableResolutions()
	if h.config.Width > 0 && h.config.Height > 0 {
		configured := raster.Size{Width: h.config.Width, Height: h.config.Height}
		if !slices.Contains(sizes, configured) {
			sizes = append(sizes, configured)
		}
	}
	return sizes
}

func (h *Backend) Clear() {
	h.output.Clear()
	h.rois = nil
}

// Update counts frames, handles snapshots and requests quit once the
// target frame count is reached.
func (h *Backend) Update() error {
	h.frameCount++

	// Save snapshot if needed
	if h.snapshotConfig.Enabled && h.frameCount%h.snapshotConfig.Interval == 0 {
		h.saveSnapshot()
	}

	// Log progress periodically
	if h.frameCount%10 == 0 {
		slog.Debug("Frame progress", "completed", h.frameCount, "total", h.maxFrames)
	}

	// Check if we've reached the target frame count
	if h.maxFrames > 0 && h.frameCount == h.maxFrames {
		// Save final snapshot if enabled and we haven't just saved one
		if h.snapshotConfig.Enabled && h.frameCount%h.snapshotConfig.Interval != 0 {
			h.saveSnapshot()
		}

		if h.snapshotConfig.Enabled {
			slog.Info("Headless execution completed", "frames", h.maxFrames, "png_snapshots_saved_to", h.snapshotConfig.Directory)
		} else {
			slog.Info("Headless execution completed", "frames", h.maxFrames)
		}

		h.config.Callbacks.Quit()
	}

	return nil
}

func (h *Backend) Close() error {
	h.output.Clear()
	return nil
}

// Output returns what the output currently shows.
func (h *Backend) Output() *raster.Image {
	return h.output
}

// Palette returns the palette last received from the display.
func (h *Backend) Palette() []uint8 {
	return h.palette
}

// Rois returns every area pushed so far, oldest first.
func (h *Backend) Rois() []raster.Rect {
	return h.rois
}

func (h *Backend) FrameCount() int {
	return h.frameCount
}

// CreateSnapshotConfig creates a snapshot configuration from CLI parameters
func CreateSnapshotConfig(interval int, directory, name string, scale int) (SnapshotConfig, error) {
	config := SnapshotConfig{
		Enabled:  interval > 0,
		Interval: interval,
		Name:     name,
		Scale:    max(scale, 1),
	}

	if !config.Enabled {
		return config, nil
	}

	// Set up snapshot directory
	if directory == "" {
		tempDir, err := os.MkdirTemp("", "easel-snapshots-*")
		if err != nil {
			return config, fmt.Errorf("failed to create snapshot directory: %w", err)
		}
		config.Directory = tempDir
	} else {
		if err := os.MkdirAll(directory, 0755); err != nil {
			return config, fmt.Errorf("failed to create snapshot directory: %w", err)
		}
		config.Directory = directory
	}

	if config.Name == "" {
		config.Name = "easel"
	}

	return config, nil
}

// saveSnapshot saves a PNG snapshot for the current frame
func (h *Backend) saveSnapshot() {
	if h.output.Empty() {
		slog.Warn("Nothing rendered yet, skipping snapshot", "frame", h.frameCount)
		return
	}

	pngBaseName := fmt.Sprintf("%s_frame_%d", h.snapshotConfig.Name, h.frameCount)
	path, err := debug.SaveFramePNGToDir(h.output, h.palette, pngBaseName, h.snapshotConfig.Directory, h.snapshotConfig.Scale)
	if err != nil {
		slog.Error("Failed to save PNG snapshot", "frame", h.frameCount, "error", err)
		return
	}
	h.config.Callbacks.SnapshotSaved(path)
}

package backend

import (
	"strings"

	"github.com/valerio/go-easel/easel/input"
	"github.com/valerio/go-easel/easel/screen"
)

// Backend represents a complete output platform for the display.
// Backends are responsible for:
// - Pushing display frames to their specific output (terminal, SDL window, framebuffer, etc.)
// - Turning palette indexes into output colors with the palette they were given
// - Reporting platform events the frame loop cares about, such as quit requests
type Backend interface {
	screen.Engine

	// Init configures the backend with the provided configuration.
	// This is a required step before the display allocates through it.
	Init(config Config) error

	// Update processes platform events. It is called once per frame loop
	// iteration, after the display rendered.
	Update() error
}

// Config holds configuration for backends
type Config struct {
	Title          string
	Width          int
	Height         int
	Scale          int
	VSync          bool
	Fullscreen     bool
	NearestScaling bool      // Backends may ignore unsupported features
	Callbacks      Callbacks      // Callbacks for backend communication
	Input          *input.Manager // Shared input manager, backends create their own when nil
}

// Callbacks allows backends to communicate with the frame loop
type Callbacks struct {
	// Control callbacks
	OnQuit func() // Backend requests shutdown (e.g., window close)

	// Debug callbacks (optional)
	OnDebugMessage func(message string) // Backend can send debug info to the frame loop
}

// SnapshotMessagePrefix starts the debug message sent after a frame was
// saved to disk; the file path follows it.
const SnapshotMessagePrefix = "snapshot:"

// Quit invokes OnQuit when set.
func (c Callbacks) Quit() {
	if c.OnQuit != nil {
		c.OnQuit()
	}
}

// Debug invokes OnDebugMessage when set.
func (c Callbacks) Debug(message string) {
	if c.OnDebugMessage != nil {
		c.OnDebugMessage(message)
	}
}

// SnapshotSaved tells the frame loop a frame was written to path.
// Empty paths, from failed saves, are not reported.
func (c Callbacks) SnapshotSaved(path string) {
	if path == "" {
		return
	}
	c.Debug(SnapshotMessagePrefix + path)
}

// SnapshotPath extracts the file path from a snapshot debug message.
func SnapshotPath(message string) (string, bool) {
	path, ok := strings.CutPrefix(message, SnapshotMessagePrefix)
	return path, ok && path != ""
}

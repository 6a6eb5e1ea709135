//go:build !sdl2

package sdl2

import (
	"fmt"

	"github.com/valerio/go-easel/easel/backend"
	"github.com/valerio/go-easel/easel/screen"
)

// Backend stub for when SDL2 is not available
type Backend struct {
	screen.BaseEngine
}

// New creates a stub SDL2 backend that returns an error
func New() *Backend {
	return &Backend{}
}

// Init returns an error indicating SDL2 is not available
func (s *Backend) Init(config backend.Config) error {
	return fmt.Errorf("SDL2 backend not available - build with -tags sdl2 to enable")
}

// Allocate returns an error
func (s *Backend) Allocate(width, height int, fullscreen bool) error {
	return fmt.Errorf("SDL2 backend not available")
}

// Update returns an error
func (s *Backend) Update() error {
	return fmt.Errorf("SDL2 backend not available")
}

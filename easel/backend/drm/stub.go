//go:build !(linux && drm)

package drm

import (
	"fmt"

	"github.com/valerio/go-easel/easel/backend"
	"github.com/valerio/go-easel/easel/screen"
)

// Backend stub for when DRM support is not compiled in
type Backend struct {
	screen.BaseEngine
}

// New creates a stub DRM backend that returns an error
func New() *Backend {
	return &Backend{}
}

// Init returns an error indicating DRM is not available
func (b *Backend) Init(config backend.Config) error {
	return fmt.Errorf("DRM backend not available - build on linux with -tags drm to enable")
}

// Allocate returns an error
func (b *Backend) Allocate(width, height int, fullscreen bool) error {
	return fmt.Errorf("DRM backend not available")
}

// Update returns an error
func (b *Backend) Update() error {
	return fmt.Errorf("DRM backend not available")
}

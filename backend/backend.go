// Package backend abstracts the renderer implementation behind a
// registry, so the capped cross-section effect runs on the GPU when a
// wgpu device is available and falls back to the CPU renderer when it
// is not.
package backend

import (
	"errors"

	"github.com/gogpu/clipcap"
	"github.com/gogpu/clipcap/scene"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is
	// not registered.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when Render is called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")

	// ErrNilTarget is returned when Render is called without a target
	// pixmap.
	ErrNilTarget = errors.New("backend: target pixmap is nil")
)

// RenderBackend renders scenes with the two-pass cross-section
// semantics. Backends register themselves via Register from init()
// and are selected via Get or Default.
type RenderBackend interface {
	// Name returns the backend identifier (e.g. "software", "wgpu").
	Name() string

	// Init acquires the backend's resources. Must be called before
	// Render.
	Init() error

	// Close releases all backend resources. The backend must not be
	// used afterwards.
	Close()

	// Render draws the scene from cam into target. The target's
	// dimensions choose the resolution and aspect ratio.
	Render(target *clipcap.Pixmap, s *scene.Scene, cam clipcap.Camera) error
}

package clipcap

import (
	"errors"
	"sync"
)

// Effect errors.
var (
	// ErrNilSurface is returned when Attach or Detach is called with nil.
	ErrNilSurface = errors.New("clipcap: surface is nil")

	// ErrAlreadyAttached is returned when Attach is called twice for
	// the same surface without an intervening Detach.
	ErrAlreadyAttached = errors.New("clipcap: effect already attached to surface")
)

// Surface is any renderable the effect can be attached to. A surface
// owns exactly one material at a time.
type Surface interface {
	Material() *Material
	SetMaterial(*Material)
}

// Effect attaches the capped cross-section rendering to surfaces and
// drives its plane from host logic.
//
// Attaching snapshots the surface's current material, builds a
// clipping material that inherits its appearance properties, and
// installs it. Detaching restores the exact original material, so a
// detach/re-attach round trip with the same parameters reproduces
// identical output — there is no stencil-related state outside the
// installed materials, and the stencil attachment itself is
// reinitialized every frame.
//
// Effect is safe for concurrent use.
type Effect struct {
	mu sync.Mutex

	cfg Config

	// original remembers the material each surface had before Attach.
	original map[Surface]*Material

	// installed tracks the clipping materials so per-frame plane
	// updates reach every attached surface.
	installed map[Surface]*Material
}

// NewEffect creates an effect from a validated config.
func NewEffect(cfg Config) (*Effect, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Effect{
		cfg:       cfg,
		original:  make(map[Surface]*Material),
		installed: make(map[Surface]*Material),
	}, nil
}

// Config returns the effect's current configuration.
func (e *Effect) Config() Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg
}

// Attach installs the clipping material on s, inheriting the base
// color, texture, metallic, and smoothness of the surface's current
// material. The original material is retained for Detach.
func (e *Effect) Attach(s Surface) error {
	if s == nil {
		return ErrNilSurface
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.original[s]; ok {
		return ErrAlreadyAttached
	}

	orig := s.Material()
	clip := DefaultMaterial()
	clip.InheritFrom(orig)
	clip.Clip = &ClipProps{
		Plane:      e.cfg.Plane,
		CapColor:   e.cfg.CapColor,
		StencilRef: e.cfg.StencilRef,
	}

	e.original[s] = orig
	e.installed[s] = clip
	s.SetMaterial(clip)
	return nil
}

// Detach restores the material s had before Attach. Detaching a
// surface that was never attached is a no-op.
func (e *Effect) Detach(s Surface) {
	if s == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	orig, ok := e.original[s]
	if !ok {
		return
	}
	delete(e.original, s)
	delete(e.installed, s)
	s.SetMaterial(orig)
}

// DetachAll restores every attached surface.
func (e *Effect) DetachAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for s, orig := range e.original {
		s.SetMaterial(orig)
	}
	e.original = make(map[Surface]*Material)
	e.installed = make(map[Surface]*Material)
}

// Attached reports whether the effect is currently installed on s.
func (e *Effect) Attached(s Surface) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.original[s]
	return ok
}

// SetPlane updates the clipping plane on the effect and on every
// attached surface. Called by the host once per frame.
func (e *Effect) SetPlane(p Plane) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg.Plane = p
	for _, m := range e.installed {
		m.Clip.Plane = p
	}
}

// SetCapColor updates the cap color on the effect and on every
// attached surface.
func (e *Effect) SetCapColor(c RGBA) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg.CapColor = c
	for _, m := range e.installed {
		m.Clip.CapColor = c
	}
}

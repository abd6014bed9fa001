package clipcap

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Configuration errors.
var (
	// ErrZeroStencilRef is returned when a config carries a stencil
	// reference of zero. Zero is reserved as the front-pass marker
	// and cannot double as the clear value.
	ErrZeroStencilRef = errors.New("clipcap: stencil reference must be non-zero")
)

// Config is the per-effect-instance configuration passed at attach
// time. The zero value is not valid; use DefaultConfig and override
// fields, or load one from YAML.
type Config struct {
	// Plane is the initial clipping plane. The normal should be unit
	// length; a zero normal is a documented precondition violation
	// (nothing is clipped) and is not checked at render time.
	Plane Plane `yaml:"plane"`

	// CapColor fills the exposed cross-section, flat-shaded.
	CapColor RGBA `yaml:"cap_color"`

	// StencilRef is the non-zero stencil clear/reference value.
	StencilRef uint8 `yaml:"stencil_ref"`
}

// DefaultConfig returns the documented defaults: plane through the
// origin facing +Y, dark red cap, stencil reference 1.
func DefaultConfig() Config {
	return Config{
		Plane:      Plane{Normal: V3(0, 1, 0), Point: V3(0, 0, 0)},
		CapColor:   RGBA{R: 0.6, G: 0.1, B: 0.1, A: 1},
		StencilRef: 1,
	}
}

// Validate checks the invariants the renderer depends on.
func (c Config) Validate() error {
	if c.StencilRef == 0 {
		return ErrZeroStencilRef
	}
	return nil
}

// LoadConfig reads a YAML effect configuration. Absent fields keep
// their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

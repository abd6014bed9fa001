package backend

import (
	"sync"

	"github.com/gogpu/clipcap"
)

// Backend name constants.
const (
	// BackendSoftware is the CPU reference renderer.
	BackendSoftware = "software"
	// BackendWGPU is the GPU renderer on gogpu/wgpu.
	BackendWGPU = "wgpu"
)

// Factory creates a new backend instance.
type Factory func() RenderBackend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
	// Selection order for Default (first available wins). The GPU
	// backend outranks the CPU fallback.
	backendPriority = []string{BackendWGPU, BackendSoftware}
)

// Register registers a backend factory under the given name,
// replacing any previous registration. Typically called from init()
// in backend packages.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry. Useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns the registered backend names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	return names
}

// IsRegistered reports whether a backend with the given name exists.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Get returns a new backend instance by name, or nil if the name is
// not registered.
func Get(name string) RenderBackend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := backends[name]
	if !ok {
		return nil
	}
	return factory()
}

// Default returns the best available backend by priority, or nil when
// nothing is registered.
func Default() RenderBackend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range backendPriority {
		if factory, ok := backends[name]; ok {
			if b := factory(); b != nil {
				return b
			}
		}
	}

	// Fallback: first available.
	for _, factory := range backends {
		if b := factory(); b != nil {
			return b
		}
	}

	return nil
}

// MustDefault returns the default backend or panics.
func MustDefault() RenderBackend {
	b := Default()
	if b == nil {
		panic("backend: no backend available")
	}
	return b
}

// InitDefault selects the default backend and initializes it. When
// the preferred backend fails to initialize (no adapter, device lost)
// the next one in priority order is tried.
func InitDefault() (RenderBackend, error) {
	registryMu.RLock()
	ordered := make([]Factory, 0, len(backends))
	for _, name := range backendPriority {
		if factory, ok := backends[name]; ok {
			ordered = append(ordered, factory)
		}
	}
	registryMu.RUnlock()

	var lastErr error
	for _, factory := range ordered {
		b := factory()
		if b == nil {
			continue
		}
		if err := b.Init(); err != nil {
			clipcap.Logger().Warn("backend unavailable, trying next",
				"backend", b.Name(), "error", err)
			lastErr = err
			continue
		}
		return b, nil
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrBackendNotAvailable
}

package filter

import (
	"image"
	"log/slog"
	"strings"
	"sync"

	"github.com/codyrobertson/codeshot/internal/logging"
)

// Name identifies a shader.
type Name string

// Built-in shaders.
const (
	Halftone     Name = "halftone"
	WaveGradient Name = "wave-gradient"
	Disruptor    Name = "disruptor"
)

// Names returns the built-in shader names.
func Names() []Name {
	return []Name{Halftone, WaveGradient, Disruptor}
}

// Params tune a shader.
type Params struct {
	// Scale is the device scale; grid sizes and offsets grow with it.
	Scale float64

	// Intensity blends between the input and the full effect at 1. Zero,
	// like any value outside (0, 1], selects the full effect so that the
	// zero Params is usable.
	Intensity float64
}

// DefaultParams returns scale 1 at full intensity.
func DefaultParams() Params {
	return Params{Scale: 1, Intensity: 1}
}

// normalized fills zero fields with defaults and clamps the rest.
func (p Params) normalized() Params {
	if p.Scale < 1 {
		p.Scale = 1
	}
	if p.Intensity <= 0 || p.Intensity > 1 {
		p.Intensity = 1
	}
	return p
}

// Filter is a post-processing shader. Apply must not modify src.
type Filter interface {
	Apply(src *image.RGBA, p Params) *image.RGBA
}

// Func adapts a function to Filter.
type Func func(src *image.RGBA, p Params) *image.RGBA

// Apply implements Filter.
func (f Func) Apply(src *image.RGBA, p Params) *image.RGBA { return f(src, p) }

// Registry dispatches shader names. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	filters map[Name]Filter
	logger  *slog.Logger
}

// NewRegistry returns a registry holding the built-in shaders. A nil logger
// disables logging.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		filters: map[Name]Filter{
			Halftone:     Func(halftone),
			WaveGradient: Func(waveGradient),
			Disruptor:    Func(disruptor),
		},
		logger: logging.OrNop(logger),
	}
}

// Register adds or replaces a shader.
func (r *Registry) Register(name Name, f Filter) {
	r.mu.Lock()
	r.filters[normalize(name)] = f
	r.mu.Unlock()
}

// Lookup returns the shader registered under name. Names match
// case-insensitively.
func (r *Registry) Lookup(name Name) (Filter, bool) {
	r.mu.RLock()
	f, ok := r.filters[normalize(name)]
	r.mu.RUnlock()
	return f, ok
}

// Apply runs the named shader over buf. An empty name, an unknown name or a
// nil buffer returns buf unchanged; unknown names are logged.
func (r *Registry) Apply(buf *image.RGBA, name Name, p Params) *image.RGBA {
	if buf == nil || name == "" {
		return buf
	}
	f, ok := r.Lookup(name)
	if !ok {
		r.logger.Warn("filter: unknown shader, skipping", "shader", string(name))
		return buf
	}
	if buf.Rect.Empty() {
		return buf
	}
	return f.Apply(buf, p.normalized())
}

func normalize(name Name) Name {
	return Name(strings.ToLower(strings.TrimSpace(string(name))))
}

// clampInt restricts v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// mix linearly interpolates two channel values.
func mix(a, b uint8, t float64) uint8 {
	return uint8(float64(a)*(1-t) + float64(b)*t + 0.5)
}

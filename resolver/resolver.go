package resolver

import (
	"bytes"
	"context"
	"errors"
	"image"
	_ "image/png" // register the PNG decoder for CDN assets
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/codyrobertson/codeshot/cache"
	"github.com/codyrobertson/codeshot/internal/logging"
	"github.com/codyrobertson/codeshot/text/emoji"
)

// Option configures a Resolver during creation.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	cacheDir string
	fetcher  Fetcher
	cdn      string
	timeout  time.Duration
	offline  bool
}

// WithLogger sets the logger. Tier hits and fetches log at debug level,
// failures at warn.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithCacheDir enables the disk tier under dir.
func WithCacheDir(dir string) Option {
	return func(o *options) { o.cacheDir = dir }
}

// WithFetcher replaces the network tier.
func WithFetcher(f Fetcher) Option {
	return func(o *options) { o.fetcher = f }
}

// WithCDN sets the URL template of the default HTTP fetcher.
func WithCDN(urlTemplate string) Option {
	return func(o *options) { o.cdn = urlTemplate }
}

// WithTimeout bounds each fetch of the default HTTP fetcher.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithOffline disables the network tier; emoji missing from the disk cache
// become fallback glyphs.
func WithOffline() Option {
	return func(o *options) { o.offline = true }
}

// Stats counts resolution outcomes.
type Stats struct {
	MemoryHits   uint64
	MemoryMisses uint64
	DiskHits     uint64
	Fetches      uint64
	Fallbacks    uint64
}

// Resolver maps emoji graphemes to glyphs. It is safe for concurrent use
// and meant to be shared by every render in a process.
type Resolver struct {
	mem    *cache.Sharded[string, *Glyph]
	disk   *DiskStore
	fetch  Fetcher
	group  singleflight.Group
	logger *slog.Logger

	diskHits  atomic.Uint64
	fetches   atomic.Uint64
	fallbacks atomic.Uint64
}

// New returns a resolver. Without options it has no disk tier and fetches
// from DefaultCDN.
func New(opts ...Option) *Resolver {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	logger := logging.OrNop(o.logger)

	r := &Resolver{
		mem:    cache.NewSharded[string, *Glyph](cache.StringHasher),
		disk:   NewDiskStore(o.cacheDir, logger),
		fetch:  o.fetcher,
		logger: logger,
	}
	if r.fetch == nil && !o.offline {
		r.fetch = NewHTTPFetcher(o.cdn, o.timeout)
	}
	return r
}

// Resolve returns the glyph for an emoji grapheme. The result for a key is
// computed once: concurrent callers share one lookup, and both images and
// fallbacks are remembered. A lookup cut short by ctx is not remembered.
func (r *Resolver) Resolve(ctx context.Context, grapheme string) *Glyph {
	key := emoji.Key([]rune(grapheme))
	if key == "" {
		return &Glyph{Text: grapheme}
	}
	if g, ok := r.mem.Get(key); ok {
		return g
	}

	v, _, _ := r.group.Do(key, func() (any, error) {
		if g, ok := r.mem.Get(key); ok {
			return g, nil
		}
		g, final := r.load(ctx, key, grapheme)
		if final {
			r.mem.Set(key, g)
		}
		if g.Fallback() {
			r.fallbacks.Add(1)
		}
		return g, nil
	})
	return v.(*Glyph)
}

// Stats returns a snapshot of the resolution counters.
func (r *Resolver) Stats() Stats {
	mem := r.mem.Stats()
	return Stats{
		MemoryHits:   mem.Hits,
		MemoryMisses: mem.Misses,
		DiskHits:     r.diskHits.Load(),
		Fetches:      r.fetches.Load(),
		Fallbacks:    r.fallbacks.Load(),
	}
}

// load consults the disk and network tiers. final is false when the result
// must not be memoized.
func (r *Resolver) load(ctx context.Context, key, grapheme string) (g *Glyph, final bool) {
	fallback := &Glyph{Key: key, Text: grapheme}

	if data, ok := r.disk.Load(key); ok {
		img, err := decode(data)
		if err == nil {
			r.diskHits.Add(1)
			r.logger.Debug("resolver: disk hit", "key", key)
			return &Glyph{Key: key, Text: grapheme, Image: img}, true
		}
		r.logger.Warn("resolver: corrupt cached emoji", "key", key, "err", err)
	}

	if r.fetch == nil {
		return fallback, true
	}

	r.fetches.Add(1)
	r.logger.Debug("resolver: fetch", "key", key)
	data, err := r.fetch.Fetch(ctx, key)
	if err != nil {
		if ctx.Err() != nil {
			return fallback, false
		}
		var se *StatusError
		if errors.As(err, &se) && se.Code == http.StatusNotFound {
			r.logger.Debug("resolver: no image for emoji", "key", key)
		} else {
			r.logger.Warn("resolver: fetch failed", "key", key, "err", err)
		}
		return fallback, true
	}

	img, err := decode(data)
	if err != nil {
		r.logger.Warn("resolver: decode failed", "key", key, "err", err)
		return fallback, true
	}
	r.disk.Store(key, data)
	return &Glyph{Key: key, Text: grapheme, Image: img}, true
}

func decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

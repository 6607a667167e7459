package text

import (
	"bytes"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/cases"

	"github.com/codyrobertson/codeshot/internal/logging"
)

// Embedded font families.
const (
	FamilyMono     = "Go Mono"
	FamilyMonoBold = "Go Mono Bold"
	FamilySans     = "Go"
	FamilyMedium   = "Go Medium"

	DefaultFamily = FamilyMono
)

var embedded = map[string][]byte{
	FamilyMono:     gomono.TTF,
	FamilyMonoBold: gomonobold.TTF,
	FamilySans:     goregular.TTF,
	FamilyMedium:   gomedium.TTF,
}

type pendingFont struct {
	name string
	data []byte
}

// source is one parsed font. Both parsed forms are read-only and shared by
// every Face of the family.
type source struct {
	name   string
	outl   *sfnt.Font
	shaped *gotext.Font
}

// Library maps family names to parsed fonts. It is safe for concurrent use.
type Library struct {
	mu      sync.RWMutex
	fonts   map[string]*source
	pending map[string]pendingFont
	logger  *slog.Logger

	// HarfbuzzShaper keeps scratch buffers and is not safe for concurrent
	// use, so shapers are pooled.
	shapers sync.Pool
}

// NewLibrary returns a library with the embedded Go families registered.
// Fonts are parsed on first use. A nil logger disables logging.
func NewLibrary(logger *slog.Logger) *Library {
	l := &Library{
		fonts:   make(map[string]*source),
		pending: make(map[string]pendingFont, len(embedded)),
		logger:  logging.OrNop(logger),
		shapers: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}
	for name, data := range embedded {
		l.pending[familyKey(name)] = pendingFont{name: name, data: data}
	}
	return l
}

// Register parses a TrueType or OpenType font and adds it under name,
// replacing any family with the same name.
func (l *Library) Register(name string, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyFontData
	}
	src, err := parseSource(name, data)
	if err != nil {
		return err
	}

	key := familyKey(name)
	l.mu.Lock()
	l.fonts[key] = src
	delete(l.pending, key)
	l.mu.Unlock()
	return nil
}

// Families returns the registered family names, sorted.
func (l *Library) Families() []string {
	l.mu.RLock()
	names := make([]string, 0, len(l.fonts)+len(l.pending))
	for _, src := range l.fonts {
		names = append(names, src.name)
	}
	for _, p := range l.pending {
		names = append(names, p.name)
	}
	l.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Face returns a face of the family at size pixels. An unknown family falls
// back to DefaultFamily and is logged at warn level. The returned Face is
// not safe for concurrent use.
func (l *Library) Face(family string, size float64) (*Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	if strings.TrimSpace(family) == "" {
		family = DefaultFamily
	}

	src, err := l.source(family)
	if err != nil {
		return nil, err
	}
	if src == nil {
		l.logger.Warn("text: unknown font family, using default",
			"requested", family, "fallback", DefaultFamily)
		if src, err = l.source(DefaultFamily); err != nil {
			return nil, err
		}
	}
	return newFace(l, src, size)
}

// source returns the parsed family, parsing an embedded font on first use.
// It returns nil, nil for an unknown family.
func (l *Library) source(name string) (*source, error) {
	key := familyKey(name)

	l.mu.RLock()
	src, ok := l.fonts[key]
	l.mu.RUnlock()
	if ok {
		return src, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if src, ok := l.fonts[key]; ok {
		return src, nil
	}
	p, ok := l.pending[key]
	if !ok {
		return nil, nil
	}
	src, err := parseSource(p.name, p.data)
	if err != nil {
		return nil, err
	}
	l.fonts[key] = src
	delete(l.pending, key)
	return src, nil
}

func parseSource(name string, data []byte) (*source, error) {
	outl, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse %q: %w", name, err)
	}
	src := &source{name: name, outl: outl}

	// Shaping is optional: a font go-text cannot read is still drawn and
	// measured through x/image.
	if face, err := gotext.ParseTTF(bytes.NewReader(data)); err == nil {
		src.shaped = face.Font
	}
	return src, nil
}

// familyKey folds case; a cases.Caser is stateful, so one is made per call.
func familyKey(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

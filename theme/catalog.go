package theme

import (
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	"github.com/codyrobertson/codeshot/highlight"
	"github.com/codyrobertson/codeshot/internal/logging"
)

// Catalog maps theme names to themes. It is safe for concurrent use; themes
// handed out by Resolve are shared and read-only.
type Catalog struct {
	mu       sync.RWMutex
	themes   map[string]*Theme
	fallback *Theme
	logger   *slog.Logger
}

// NewCatalog returns a catalog holding every built-in theme. A nil logger
// disables logging.
func NewCatalog(logger *slog.Logger) *Catalog {
	c := &Catalog{
		themes: make(map[string]*Theme, idCount),
		logger: logging.OrNop(logger),
	}
	for _, id := range IDs() {
		t := Builtin(id)
		c.themes[normalize(t.Name)] = t
	}
	c.fallback = c.themes[normalize(Fallback.String())]
	return c
}

// Resolve returns the theme registered under name. Names match
// case-insensitively, and spaces or underscores match hyphens.
//
// An empty name selects the fallback theme quietly. An unknown name
// resolves to the fallback theme with ok == false; the substitution is
// logged at warn level. Resolve never fails.
func (c *Catalog) Resolve(name string) (t *Theme, ok bool) {
	c.mu.RLock()
	t, ok = c.themes[normalize(name)]
	c.mu.RUnlock()

	if ok {
		return t, true
	}
	if normalize(name) == "" {
		return c.fallback, true
	}
	c.logger.Warn("theme: unknown theme, using fallback",
		"requested", name, "fallback", c.fallback.Name)
	return c.fallback, false
}

// Fallback returns the theme used for unknown names.
func (c *Catalog) Fallback() *Theme {
	return c.fallback
}

// Register adds or replaces a theme. The catalog keeps its own copy.
func (c *Catalog) Register(t *Theme) error {
	if t == nil || strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("theme: register: empty name")
	}
	cp := t.Clone()

	c.mu.Lock()
	c.themes[normalize(cp.Name)] = cp
	c.mu.Unlock()
	return nil
}

// Names returns the registered theme names, sorted.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	names := make([]string, 0, len(c.themes))
	for _, t := range c.themes {
		names = append(names, t.Name)
	}
	c.mu.RUnlock()

	sort.Strings(names)
	return names
}

// LoadFile registers every theme defined in a YAML theme file.
func (c *Catalog) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("theme: open %s: %w", path, err)
	}
	defer f.Close()

	if err := c.Load(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Load registers every theme defined in a YAML document of the form:
//
//	themes:
//	  - name: midnight
//	    background: "#0b1021"
//	    window: "#111827"
//	    chrome: mac
//	    chrome_bar: "#1f2937"
//	    text: "#e5e7eb"
//	    tokens:
//	      keyword: "#f472b6"
//	      comment: "#6b7280"
//
// Nothing is registered when any theme in the document is invalid.
func (c *Catalog) Load(r io.Reader) error {
	var doc fileDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("theme: decode: %w", err)
	}

	themes := make([]*Theme, 0, len(doc.Themes))
	for i := range doc.Themes {
		t, err := doc.Themes[i].theme()
		if err != nil {
			return err
		}
		themes = append(themes, t)
	}

	c.mu.Lock()
	for _, t := range themes {
		c.themes[normalize(t.Name)] = t
	}
	c.mu.Unlock()
	return nil
}

type fileDoc struct {
	Themes []fileTheme `yaml:"themes"`
}

type fileTheme struct {
	Name       string            `yaml:"name"`
	Background string            `yaml:"background"`
	Window     string            `yaml:"window"`
	Chrome     string            `yaml:"chrome"`
	ChromeBar  string            `yaml:"chrome_bar"`
	Text       string            `yaml:"text"`
	Tokens     map[string]string `yaml:"tokens"`
}

func (f *fileTheme) theme() (*Theme, error) {
	if strings.TrimSpace(f.Name) == "" {
		return nil, fmt.Errorf("theme: unnamed theme")
	}
	fail := func(field string, err error) error {
		return fmt.Errorf("theme %q: %s: %w", f.Name, field, err)
	}

	if f.Text == "" {
		return nil, fail("text", fmt.Errorf("%w: default text color is required", ErrInvalidColor))
	}
	if f.Background == "" {
		return nil, fail("background", fmt.Errorf("%w: background color is required", ErrInvalidColor))
	}

	t := &Theme{Name: f.Name, Tokens: make(map[highlight.Class]color.RGBA, len(f.Tokens))}
	var err error
	if t.Default, err = Hex(f.Text); err != nil {
		return nil, fail("text", err)
	}
	if t.Background, err = Hex(f.Background); err != nil {
		return nil, fail("background", err)
	}

	t.Window = t.Background
	if f.Window != "" {
		if t.Window, err = Hex(f.Window); err != nil {
			return nil, fail("window", err)
		}
	}
	t.ChromeBar = t.Window
	if f.ChromeBar != "" {
		if t.ChromeBar, err = Hex(f.ChromeBar); err != nil {
			return nil, fail("chrome_bar", err)
		}
	}

	style, ok := ParseChromeStyle(f.Chrome)
	if !ok {
		return nil, fail("chrome", fmt.Errorf("unknown style %q", f.Chrome))
	}
	t.Chrome = style

	for name, hex := range f.Tokens {
		class, ok := highlight.ParseClass(name)
		if !ok {
			return nil, fail("tokens", fmt.Errorf("unknown token class %q", name))
		}
		col, err := Hex(hex)
		if err != nil {
			return nil, fail("tokens."+name, err)
		}
		t.Tokens[class] = col
	}
	return t, nil
}

// normalize folds case and maps spaces and underscores to hyphens.
// A cases.Caser is stateful, so one is created per call.
func normalize(name string) string {
	name = strings.TrimSpace(name)
	name = strings.NewReplacer(" ", "-", "_", "-").Replace(name)
	return cases.Fold().String(name)
}

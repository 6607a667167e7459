package theme

import (
	"bytes"
	"errors"
	"image/color"
	"log/slog"
	"strings"
	"testing"

	"github.com/codyrobertson/codeshot/highlight"
)

func TestResolveBuiltins(t *testing.T) {
	c := NewCatalog(nil)
	for _, id := range IDs() {
		th, ok := c.Resolve(id.String())
		if !ok {
			t.Errorf("Resolve(%q) ok = false", id)
			continue
		}
		if th.Name != id.String() {
			t.Errorf("Resolve(%q).Name = %q", id, th.Name)
		}
		if th.Default.A != 0xff {
			t.Errorf("theme %q has no default text color", id)
		}
	}
}

func TestResolveNormalizesNames(t *testing.T) {
	c := NewCatalog(nil)
	tests := []string{"GitHub Dark", "github_dark", "  GITHUB-DARK  "}
	for _, name := range tests {
		th, ok := c.Resolve(name)
		if !ok || th.Name != "github-dark" {
			t.Errorf("Resolve(%q) = %q, %v; want github-dark, true", name, th.Name, ok)
		}
	}
}

func TestResolveUnknownFallsBack(t *testing.T) {
	var logs bytes.Buffer
	c := NewCatalog(slog.New(slog.NewTextHandler(&logs, nil)))

	th, ok := c.Resolve("does-not-exist")
	if ok {
		t.Error("Resolve(unknown) ok = true, want false")
	}
	if th == nil || th.Name != Fallback.String() {
		t.Fatalf("Resolve(unknown) = %v, want fallback %q", th, Fallback)
	}
	if !strings.Contains(logs.String(), "does-not-exist") {
		t.Errorf("substitution was not logged: %q", logs.String())
	}
}

func TestResolveEmptyIsQuiet(t *testing.T) {
	var logs bytes.Buffer
	c := NewCatalog(slog.New(slog.NewTextHandler(&logs, nil)))

	for _, name := range []string{"", "  "} {
		th, ok := c.Resolve(name)
		if !ok || th != c.Fallback() {
			t.Errorf("Resolve(%q) = %v, %v; want fallback, true", name, th, ok)
		}
	}
	if logs.Len() != 0 {
		t.Errorf("empty name logged: %q", logs.String())
	}
}

func TestThemeColorFallback(t *testing.T) {
	th := &Theme{
		Default: color.RGBA{1, 2, 3, 255},
		Tokens:  map[highlight.Class]color.RGBA{highlight.Keyword: {9, 9, 9, 255}},
	}
	if got := th.Color(highlight.Keyword); got != (color.RGBA{9, 9, 9, 255}) {
		t.Errorf("Color(Keyword) = %v", got)
	}
	if got := th.Color(highlight.Number); got != th.Default {
		t.Errorf("Color(Number) = %v, want default %v", got, th.Default)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := Builtin(Nord)
	b := a.Clone()
	b.Tokens[highlight.Keyword] = color.RGBA{}
	if a.Tokens[highlight.Keyword] == (color.RGBA{}) {
		t.Error("modifying a clone changed the original")
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#ff8000", color.RGBA{255, 128, 0, 255}, false},
		{"#000", color.RGBA{0, 0, 0, 255}, false},
		{"ff8000", color.RGBA{}, true},
		{"#zzzzzz", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := Hex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Hex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidColor) {
				t.Errorf("Hex(%q) error = %v, want ErrInvalidColor", tt.in, err)
			}
			continue
		}
		if got != tt.want {
			t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

const themeFile = `
themes:
  - name: Midnight
    background: "#0b1021"
    window: "#111827"
    chrome: none
    text: "#e5e7eb"
    tokens:
      keyword: "#f472b6"
      comment: "#6b7280"
`

func TestLoad(t *testing.T) {
	c := NewCatalog(nil)
	if err := c.Load(strings.NewReader(themeFile)); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	th, ok := c.Resolve("midnight")
	if !ok {
		t.Fatal("Resolve(midnight) ok = false after Load")
	}
	if th.Chrome != ChromeNone {
		t.Errorf("Chrome = %v, want none", th.Chrome)
	}
	if th.ChromeBar != th.Window {
		t.Errorf("ChromeBar = %v, want window color %v", th.ChromeBar, th.Window)
	}
	if got := th.Color(highlight.Keyword); got != (color.RGBA{0xf4, 0x72, 0xb6, 0xff}) {
		t.Errorf("Color(Keyword) = %v", got)
	}
	if got := th.Color(highlight.String); got != th.Default {
		t.Errorf("Color(String) = %v, want default", got)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad hex", "themes:\n  - name: x\n    background: \"#000\"\n    text: \"#nothex\"\n"},
		{"missing text", "themes:\n  - name: x\n    background: \"#000\"\n"},
		{"unknown class", "themes:\n  - name: x\n    background: \"#000\"\n    text: \"#fff\"\n    tokens:\n      sparkle: \"#fff\"\n"},
		{"unknown chrome", "themes:\n  - name: x\n    background: \"#000\"\n    text: \"#fff\"\n    chrome: windows\n"},
		{"no name", "themes:\n  - background: \"#000\"\n    text: \"#fff\"\n"},
		{"not yaml", "themes: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCatalog(nil)
			before := len(c.Names())
			if err := c.Load(strings.NewReader(tt.doc)); err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if got := len(c.Names()); got != before {
				t.Errorf("catalog grew to %d themes after a failed load", got)
			}
		})
	}
}

func TestLoadEmpty(t *testing.T) {
	if err := NewCatalog(nil).Load(strings.NewReader("")); err != nil {
		t.Errorf("Load(empty) error = %v", err)
	}
}

func TestRegister(t *testing.T) {
	c := NewCatalog(nil)
	th := Builtin(Monokai)
	th.Name = "Monokai Pro"
	if err := c.Register(th); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Resolve("monokai pro"); !ok {
		t.Error("registered theme not resolvable")
	}
	if err := c.Register(&Theme{}); err == nil {
		t.Error("Register(unnamed) error = nil")
	}
}

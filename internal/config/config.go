// Package config loads codeshot settings.
//
// Settings come from three layers, later layers winning:
//
//  1. built-in defaults (Default)
//  2. a TOML file, by default config.toml under the user config directory
//  3. CODESHOT_* environment variables
//
// A missing settings file is not an error.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/codyrobertson/codeshot"
	"github.com/codyrobertson/codeshot/resolver"
	"github.com/codyrobertson/codeshot/theme"
)

// AppName names the per-user config and cache directories.
const AppName = "codeshot"

// Settings is the merged configuration.
type Settings struct {
	// CacheDir holds downloaded emoji. Empty disables the disk cache.
	CacheDir string `toml:"cache_dir"`

	// CDNURL is the emoji URL template with a {key} placeholder.
	CDNURL string `toml:"cdn_url"`

	// FetchTimeout bounds each emoji download, such as "5s".
	FetchTimeout Duration `toml:"fetch_timeout"`

	// Offline disables emoji downloads.
	Offline bool `toml:"offline"`

	// Theme is used when a request names none.
	Theme string `toml:"theme"`

	// ThemesFile is a YAML file of extra themes.
	ThemesFile string `toml:"themes_file"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `toml:"log_level"`

	Render Render `toml:"render"`
}

// Render overrides render options. Unset fields keep the library defaults.
type Render struct {
	Width        float64  `toml:"width"`
	Padding      *float64 `toml:"padding"`
	OuterPadding *float64 `toml:"outer_padding"`
	FontSize     float64  `toml:"font_size"`
	FontFamily   string   `toml:"font_family"`
	LineHeight   float64  `toml:"line_height"`
	LineNumbers  *bool    `toml:"line_numbers"`
	Chrome       *bool    `toml:"chrome"`
	Shadow       *bool    `toml:"shadow"`
	WrapWidth    float64  `toml:"wrap_width"`
	Scale        float64  `toml:"scale"`
	TabWidth     int      `toml:"tab_width"`
	Background   string   `toml:"background"`
	Shader       string   `toml:"shader"`
}

// Duration is a time.Duration written as a Go duration string.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("negative duration %s", b)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		CacheDir:     DefaultCacheDir(),
		CDNURL:       resolver.DefaultCDN,
		FetchTimeout: Duration{resolver.DefaultTimeout},
		Theme:        theme.Fallback.String(),
		LogLevel:     "warn",
	}
}

// DefaultCacheDir returns codeshot/emoji under the user cache directory, or
// "" when the platform has none.
func DefaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, "emoji")
}

// DefaultPath returns config.toml under the user config directory, or ""
// when the platform has none.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, "config.toml")
}

// Load returns the defaults overridden by the file at path and then by the
// environment. An empty path reads DefaultPath.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		if err := s.loadFile(path); err != nil {
			return Settings{}, err
		}
	}
	if err := s.ApplyEnv(os.LookupEnv); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s *Settings) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: reading %s: %w", path, err)
	}
	return s.Decode(path, bytes.NewReader(data))
}

// Decode merges a TOML document into s. Keys absent from the document keep
// their current values; unknown keys are an error. name labels errors.
func (s *Settings) Decode(name string, r io.Reader) error {
	next := *s
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&next); err != nil {
		return newParseError(name, err)
	}
	*s = next
	return nil
}

// Options returns base with the render overrides applied.
func (s Settings) Options(base codeshot.Options) codeshot.Options {
	r := s.Render
	if r.Width > 0 {
		base.Width = r.Width
	}
	if r.Padding != nil {
		base.Padding = *r.Padding
	}
	if r.OuterPadding != nil {
		base.OuterPadding = *r.OuterPadding
	}
	if r.FontSize > 0 {
		base.FontSize = r.FontSize
	}
	if r.FontFamily != "" {
		base.FontFamily = r.FontFamily
	}
	if r.LineHeight > 0 {
		base.LineHeight = r.LineHeight
	}
	if r.LineNumbers != nil {
		base.ShowLineNumbers = *r.LineNumbers
	}
	if r.Chrome != nil {
		base.ShowChrome = *r.Chrome
	}
	if r.Shadow != nil {
		base.Shadow = *r.Shadow
	}
	if r.WrapWidth > 0 {
		base.WrapWidth = r.WrapWidth
	}
	if r.Scale > 0 {
		base.Scale = r.Scale
	}
	if r.TabWidth > 0 {
		base.TabWidth = r.TabWidth
	}
	if r.Background != "" {
		base.Background = r.Background
	}
	return base
}

// RendererOptions returns the renderer options the settings describe.
func (s Settings) RendererOptions() []codeshot.Option {
	opts := []codeshot.Option{
		codeshot.WithCacheDir(s.CacheDir),
		codeshot.WithCDN(s.CDNURL),
		codeshot.WithFetchTimeout(s.FetchTimeout.Duration),
	}
	if s.Offline {
		opts = append(opts, codeshot.WithOffline())
	}
	return opts
}

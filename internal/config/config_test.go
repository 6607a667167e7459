package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/codyrobertson/codeshot"
	"github.com/codyrobertson/codeshot/resolver"
)

const sampleFile = `
cache_dir = "/tmp/emoji"
fetch_timeout = "2s"
theme = "nord"
log_level = "debug"

[render]
font_size = 18
padding = 0
chrome = false
shadow = false
line_numbers = true
scale = 1
`

func TestDefault(t *testing.T) {
	s := Default()
	if s.CDNURL != resolver.DefaultCDN {
		t.Errorf("CDNURL = %q, want %q", s.CDNURL, resolver.DefaultCDN)
	}
	if s.FetchTimeout.Duration != resolver.DefaultTimeout {
		t.Errorf("FetchTimeout = %v, want %v", s.FetchTimeout, resolver.DefaultTimeout)
	}
	if s.CacheDir != "" && !strings.HasSuffix(s.CacheDir, filepath.Join(AppName, "emoji")) {
		t.Errorf("CacheDir = %q, want a codeshot/emoji directory", s.CacheDir)
	}
	if s.Theme != "dracula" {
		t.Errorf("Theme = %q, want dracula", s.Theme)
	}
}

func TestDecode(t *testing.T) {
	s := Default()
	if err := s.Decode("sample.toml", strings.NewReader(sampleFile)); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if s.CacheDir != "/tmp/emoji" || s.Theme != "nord" || s.LogLevel != "debug" {
		t.Errorf("Decode() = %+v", s)
	}
	if s.FetchTimeout.Duration != 2*time.Second {
		t.Errorf("FetchTimeout = %v, want 2s", s.FetchTimeout)
	}
	if s.CDNURL != resolver.DefaultCDN {
		t.Errorf("absent cdn_url changed CDNURL to %q", s.CDNURL)
	}

	got := s.Options(codeshot.DefaultOptions())
	want := codeshot.DefaultOptions()
	want.FontSize = 18
	want.Padding = 0
	want.ShowChrome = false
	want.Shadow = false
	want.ShowLineNumbers = true
	want.Scale = 1
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Options() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		wantLine int
	}{
		{"syntax", "theme = \"nord\"\nlog_level = \n", 2},
		{"bad duration", "fetch_timeout = \"soon\"\n", 0},
		{"wrong type", "\n\n[render]\nscale = \"big\"\n", 0},
		{"unknown key", "theme = \"nord\"\ncolour = \"red\"\n", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			before := s
			err := s.Decode("bad.toml", strings.NewReader(tt.doc))

			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Decode() error = %v, want *ParseError", err)
			}
			if pe.Path != "bad.toml" {
				t.Errorf("Path = %q, want bad.toml", pe.Path)
			}
			if tt.wantLine > 0 && pe.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d (%v)", pe.Line, tt.wantLine, err)
			}
			if diff := cmp.Diff(before, s); diff != "" {
				t.Errorf("failed Decode modified settings:\n%s", diff)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(sampleFile), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Theme != "nord" {
		t.Errorf("Theme = %q, want nord", s.Theme)
	}

	// A missing file keeps the defaults.
	s, err = Load(filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatalf("Load(missing) error = %v", err)
	}
	if diff := cmp.Diff(Default(), s); diff != "" {
		t.Errorf("Load(missing) mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(sampleFile), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CODESHOT_THEME", "monokai")
	t.Setenv("CODESHOT_CACHE_DIR", "")
	t.Setenv("CODESHOT_OFFLINE", "true")

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Theme != "monokai" {
		t.Errorf("Theme = %q, want monokai from the environment", s.Theme)
	}
	if s.CacheDir != "" {
		t.Errorf("CacheDir = %q, want empty from the environment", s.CacheDir)
	}
	if !s.Offline {
		t.Error("Offline = false, want true from the environment")
	}
	if s.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug from the file", s.LogLevel)
	}
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		check   func(Settings) bool
		wantErr bool
	}{
		{
			name:  "timeout",
			env:   map[string]string{"CODESHOT_FETCH_TIMEOUT": "750ms"},
			check: func(s Settings) bool { return s.FetchTimeout.Duration == 750*time.Millisecond },
		},
		{
			name:  "cdn",
			env:   map[string]string{"CODESHOT_CDN_URL": "http://localhost/{key}.png"},
			check: func(s Settings) bool { return s.CDNURL == "http://localhost/{key}.png" },
		},
		{
			name:    "bad timeout",
			env:     map[string]string{"CODESHOT_FETCH_TIMEOUT": "-1s"},
			wantErr: true,
		},
		{
			name:    "bad offline",
			env:     map[string]string{"CODESHOT_OFFLINE": "maybe"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			lookup := func(k string) (string, bool) {
				v, ok := tt.env[k]
				return v, ok
			}
			err := s.ApplyEnv(lookup)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyEnv() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil && !tt.check(s) {
				t.Errorf("ApplyEnv() = %+v", s)
			}
		})
	}
}

func TestRendererOptions(t *testing.T) {
	s := Default()
	s.Offline = true
	if got := len(s.RendererOptions()); got != 4 {
		t.Errorf("len(RendererOptions()) = %d, want 4", got)
	}
	// The options must build a working renderer.
	codeshot.New(s.RendererOptions()...)
}

// clearEnv unsets every override for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"CACHE_DIR", "CDN_URL", "FETCH_TIMEOUT", "OFFLINE", "THEME", "THEMES_FILE", "LOG_LEVEL"} {
		key := EnvPrefix + name
		if old, ok := os.LookupEnv(key); ok {
			os.Unsetenv(key)
			t.Cleanup(func() { os.Setenv(key, old) })
		}
	}
}

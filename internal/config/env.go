package config

import (
	"fmt"
	"strconv"
	"time"
)

// EnvPrefix starts every environment override.
const EnvPrefix = "CODESHOT_"

// LookupFunc reads one environment variable; os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides s from CODESHOT_CACHE_DIR, CODESHOT_CDN_URL,
// CODESHOT_FETCH_TIMEOUT, CODESHOT_OFFLINE, CODESHOT_THEME,
// CODESHOT_THEMES_FILE and CODESHOT_LOG_LEVEL. Set but empty variables
// count: CODESHOT_CACHE_DIR="" disables the disk cache.
func (s *Settings) ApplyEnv(lookup LookupFunc) error {
	strs := map[string]*string{
		"CACHE_DIR":   &s.CacheDir,
		"CDN_URL":     &s.CDNURL,
		"THEME":       &s.Theme,
		"THEMES_FILE": &s.ThemesFile,
		"LOG_LEVEL":   &s.LogLevel,
	}
	for name, dst := range strs {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}

	if v, ok := lookup(EnvPrefix + "FETCH_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return fmt.Errorf("config: %sFETCH_TIMEOUT: invalid duration %q", EnvPrefix, v)
		}
		s.FetchTimeout = Duration{d}
	}
	if v, ok := lookup(EnvPrefix + "OFFLINE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %sOFFLINE: %w", EnvPrefix, err)
		}
		s.Offline = b
	}
	return nil
}

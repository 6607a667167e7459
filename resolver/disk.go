package resolver

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/codyrobertson/codeshot/internal/logging"
)

// DiskStore keeps one <key>.png file per emoji in a directory. The
// directory is created on first use; if that fails the store turns itself
// off and every call is a miss. Write errors are logged and swallowed.
type DiskStore struct {
	dir    string
	logger *slog.Logger

	once     sync.Once
	disabled atomic.Bool
}

// NewDiskStore returns a store rooted at dir. An empty dir gives a store
// that is always disabled.
func NewDiskStore(dir string, logger *slog.Logger) *DiskStore {
	s := &DiskStore{dir: dir, logger: logging.OrNop(logger)}
	if dir == "" {
		s.disabled.Store(true)
	}
	return s
}

// Dir returns the cache directory.
func (s *DiskStore) Dir() string { return s.dir }

// Enabled reports whether the store is still in use.
func (s *DiskStore) Enabled() bool {
	s.init()
	return !s.disabled.Load()
}

// Load returns the bytes stored for key.
func (s *DiskStore) Load(key string) ([]byte, bool) {
	if !s.Enabled() {
		return nil, false
	}
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("resolver: read cached emoji", "key", key, "err", err)
		}
		return nil, false
	}
	return data, true
}

// Store writes data for key. The file is written under a temporary name and
// renamed into place, so a concurrent reader sees either no file or a
// complete one. With concurrent writers the last rename wins.
func (s *DiskStore) Store(key string, data []byte) {
	if !s.Enabled() {
		return
	}
	if err := s.write(key, data); err != nil {
		s.logger.Warn("resolver: write cached emoji", "key", key, "err", err)
	}
}

func (s *DiskStore) write(key string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return err
	}
	name := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return err
	}
	if err := os.Rename(name, s.path(key)); err != nil {
		os.Remove(name)
		return err
	}
	return nil
}

func (s *DiskStore) init() {
	s.once.Do(func() {
		if s.disabled.Load() {
			return
		}
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			s.logger.Warn("resolver: disk cache disabled", "dir", s.dir, "err", err)
			s.disabled.Store(true)
		}
	})
}

func (s *DiskStore) path(key string) string {
	return filepath.Join(s.dir, key+".png")
}

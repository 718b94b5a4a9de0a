package file

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"

	"github.com/custodia-labs/csvnorm/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// DefaultDir is the directory under the user's home holding config.toml.
const DefaultDir = ".csvnorm"

// ConfigStore reads csvnorm settings from a TOML file.
// The file is never written.
type ConfigStore struct {
	mu       sync.RWMutex
	fs       afero.Fs
	filePath string
	values   map[string]any
}

// NewConfigStore loads the TOML file at filePath on fsys.
// An empty filePath means ~/.csvnorm/config.toml.
// A missing file is not an error; the store starts empty.
func NewConfigStore(fsys afero.Fs, filePath string) (*ConfigStore, error) {
	if filePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		filePath = filepath.Join(home, DefaultDir, "config.toml")
	}

	s := &ConfigStore{fs: fsys, filePath: filePath}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the raw value stored under a dotted key such as "header.min_matches".
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.values[key]
	return val, ok
}

// GetString returns key as a string, or "" when absent or not a string.
func (s *ConfigStore) GetString(key string) string {
	val, _ := s.Get(key)
	str, _ := val.(string)
	return str
}

// GetInt returns key as an int. go-toml decodes integers as int64.
func (s *ConfigStore) GetInt(key string) int {
	val, _ := s.Get(key)
	switch v := val.(type) {
	case int64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

// GetBool returns key as a bool, or false when absent or not a bool.
func (s *ConfigStore) GetBool(key string) bool {
	val, _ := s.Get(key)
	b, _ := val.(bool)
	return b
}

// Load re-reads the file, replacing every value held.
func (s *ConfigStore) Load() error {
	raw, err := afero.ReadFile(s.fs, s.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		raw, err = nil, nil
	}
	if err != nil {
		return err
	}

	tables := make(map[string]any)
	if err := toml.Unmarshal(raw, &tables); err != nil {
		return err
	}

	values := make(map[string]any)
	flatten(values, "", tables)

	s.mu.Lock()
	s.values = values
	s.mu.Unlock()
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// flatten copies nested TOML tables into dst under dotted keys,
// so [header] min_matches becomes "header.min_matches".
func flatten(dst map[string]any, prefix string, tables map[string]any) {
	for key, value := range tables {
		if prefix != "" {
			key = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok {
			flatten(dst, key, nested)
			continue
		}
		dst[key] = value
	}
}

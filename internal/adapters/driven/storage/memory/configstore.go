package memory

import (
	"sync"

	"github.com/custodia-labs/csvnorm/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is an in-memory implementation of driven.ConfigStore for testing.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewConfigStore creates a new in-memory config store.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		values: make(map[string]any),
	}
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok
}

// GetString retrieves a string configuration value.
func (s *ConfigStore) GetString(key string) string {
	if str, ok := s.value(key).(string); ok {
		return str
	}
	return ""
}

// GetInt retrieves an integer configuration value.
func (s *ConfigStore) GetInt(key string) int {
	switch v := s.value(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	default:
		return 0
	}
}

// GetBool retrieves a boolean configuration value.
func (s *ConfigStore) GetBool(key string) bool {
	b, _ := s.value(key).(bool)
	return b
}

// Set stores a configuration value. It is not part of driven.ConfigStore;
// tests use it to seed values.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Load is a no-op for the in-memory store.
func (s *ConfigStore) Load() error {
	return nil
}

// Path returns an empty path; nothing is persisted.
func (s *ConfigStore) Path() string {
	return ""
}

func (s *ConfigStore) value(key string) any {
	val, _ := s.Get(key)
	return val
}

package services

import (
	"github.com/custodia-labs/csvnorm/internal/core/domain"
	"github.com/custodia-labs/csvnorm/internal/core/ports/driven"
	"github.com/custodia-labs/csvnorm/internal/logger"
)

// Configuration keys read by LoadSettings.
const (
	KeyDefaultPath      = "input.default_path"
	KeyHeader           = "header.canonical"
	KeyMinHeaderMatches = "header.min_matches"
	KeyVerbose          = "log.verbose"
)

// LoadSettings overlays values present in store on the defaults.
// A nil store yields the defaults. Values that would make the settings
// invalid are ignored with a warning.
func LoadSettings(store driven.ConfigStore) domain.Settings {
	settings := domain.DefaultSettings()
	if store == nil {
		return settings
	}

	if v := store.GetString(KeyDefaultPath); v != "" {
		settings.DefaultPath = v
	}
	if v := store.GetString(KeyHeader); v != "" {
		if domain.MarkerOf(v) != "" {
			settings.Header = v
		} else {
			logger.Warn("ignoring %s = %q in %s", KeyHeader, v, store.Path())
		}
	}
	if _, ok := store.Get(KeyMinHeaderMatches); ok {
		if n := store.GetInt(KeyMinHeaderMatches); n > 0 {
			settings.MinHeaderMatches = n
		} else {
			logger.Warn("ignoring %s = %v in %s", KeyMinHeaderMatches, n, store.Path())
		}
	}
	settings.Verbose = store.GetBool(KeyVerbose)

	return settings
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/csvnorm/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/csvnorm/internal/core/domain"
)

func TestLoadSettings_NilStore(t *testing.T) {
	assert.Equal(t, domain.DefaultSettings(), LoadSettings(nil))
}

func TestLoadSettings_EmptyStore(t *testing.T) {
	assert.Equal(t, domain.DefaultSettings(), LoadSettings(memory.NewConfigStore()))
}

func TestLoadSettings_Overrides(t *testing.T) {
	store := memory.NewConfigStore()
	require.NoError(t, store.Set(KeyDefaultPath, "other.csv"))
	require.NoError(t, store.Set(KeyHeader, "a,b,c"))
	require.NoError(t, store.Set(KeyMinHeaderMatches, int64(2)))
	require.NoError(t, store.Set(KeyVerbose, true))

	settings := LoadSettings(store)

	assert.Equal(t, "other.csv", settings.DefaultPath)
	assert.Equal(t, "a,b,c", settings.Header)
	assert.Equal(t, 2, settings.MinHeaderMatches)
	assert.True(t, settings.Verbose)
	assert.NoError(t, settings.Validate())
}

func TestLoadSettings_InvalidThresholdIgnored(t *testing.T) {
	store := memory.NewConfigStore()
	require.NoError(t, store.Set(KeyMinHeaderMatches, 0))

	settings := LoadSettings(store)

	assert.Equal(t, domain.DefaultMinHeaderMatches, settings.MinHeaderMatches)
}

func TestLoadSettings_WrongTypesIgnored(t *testing.T) {
	store := memory.NewConfigStore()
	require.NoError(t, store.Set(KeyDefaultPath, 12))
	require.NoError(t, store.Set(KeyVerbose, "yes"))

	settings := LoadSettings(store)

	assert.Equal(t, domain.DefaultInputPath, settings.DefaultPath)
	assert.False(t, settings.Verbose)
}

func TestLoadSettings_HeaderWithoutFirstNameIgnored(t *testing.T) {
	store := memory.NewConfigStore()
	require.NoError(t, store.Set(KeyHeader, ",name,score"))

	settings := LoadSettings(store)

	assert.Equal(t, domain.CanonicalHeader, settings.Header)
	assert.NoError(t, settings.Validate())
}

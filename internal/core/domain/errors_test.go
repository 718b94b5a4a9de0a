package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrInputNotFound", ErrInputNotFound},
		{"ErrBackupFailed", ErrBackupFailed},
		{"ErrEmptyResult", ErrEmptyResult},
		{"ErrWriteFailed", ErrWriteFailed},
		{"ErrRestoreFailed", ErrRestoreFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrEmptyResult_Message(t *testing.T) {
	assert.Equal(t, "input file empty after processing", ErrEmptyResult.Error())
}

func TestBackupError(t *testing.T) {
	cause := errors.New("permission denied")
	err := &BackupError{Input: "a.csv", Backup: "a.csv.bak.1", Err: cause}

	assert.True(t, errors.Is(err, ErrBackupFailed))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrWriteFailed))
	assert.Equal(t, "create backup a.csv.bak.1: permission denied", err.Error())

	wrapped := fmt.Errorf("normalise: %w", err)
	var be *BackupError
	assert.True(t, errors.As(wrapped, &be))
	assert.Equal(t, cause, be.Err)
}

func TestWriteError_Restored(t *testing.T) {
	cause := errors.New("disk full")
	err := &WriteError{Input: "a.csv", Backup: "a.csv.bak.1", Err: cause}

	assert.True(t, err.Restored())
	assert.True(t, errors.Is(err, ErrWriteFailed))
	assert.False(t, errors.Is(err, ErrRestoreFailed))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "write a.csv: disk full", err.Error())
}

func TestWriteError_RestoreFailed(t *testing.T) {
	cause := errors.New("disk full")
	restoreErr := errors.New("no such file")
	err := &WriteError{Input: "a.csv", Backup: "a.csv.bak.1", Err: cause, RestoreErr: restoreErr}

	assert.False(t, err.Restored())
	assert.True(t, errors.Is(err, ErrWriteFailed))
	assert.True(t, errors.Is(err, ErrRestoreFailed))
	assert.True(t, errors.Is(err, restoreErr))
	assert.Contains(t, err.Error(), "restore: no such file")
}

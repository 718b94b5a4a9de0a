package domain

import "errors"

// Domain errors represent normalisation failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInputNotFound indicates the input path is not an existing regular file.
	ErrInputNotFound = errors.New("input file not found")

	// ErrBackupFailed indicates the input could not be moved to its backup path.
	ErrBackupFailed = errors.New("backup failed")

	// ErrEmptyResult indicates normalisation produced no lines.
	// The backup is left in place and the input path stays absent.
	ErrEmptyResult = errors.New("input file empty after processing")

	// ErrWriteFailed indicates the normalised lines could not be written.
	ErrWriteFailed = errors.New("write failed")

	// ErrRestoreFailed indicates the backup could not be moved back after a write failure.
	ErrRestoreFailed = errors.New("restore failed")
)

// BackupError is returned when the backup rename fails.
type BackupError struct {
	Input  string
	Backup string
	Err    error
}

func (e *BackupError) Error() string {
	return "create backup " + e.Backup + ": " + e.Err.Error()
}

// Unwrap returns the underlying filesystem error.
func (e *BackupError) Unwrap() error { return e.Err }

// Is reports whether target is ErrBackupFailed.
func (e *BackupError) Is(target error) bool { return target == ErrBackupFailed }

// WriteError is returned when writing the normalised file fails.
// It records the outcome of the single restore attempt that follows.
type WriteError struct {
	Input  string
	Backup string

	// Err is the write failure.
	Err error

	// RestoreErr is nil when the backup was moved back onto Input.
	RestoreErr error
}

func (e *WriteError) Error() string {
	msg := "write " + e.Input + ": " + e.Err.Error()
	if e.RestoreErr != nil {
		msg += " (restore: " + e.RestoreErr.Error() + ")"
	}
	return msg
}

// Unwrap returns the write failure and, if present, the restore failure.
func (e *WriteError) Unwrap() []error {
	if e.RestoreErr != nil {
		return []error{e.Err, e.RestoreErr}
	}
	return []error{e.Err}
}

// Is matches ErrWriteFailed, and ErrRestoreFailed when the restore did not succeed.
func (e *WriteError) Is(target error) bool {
	switch target {
	case ErrWriteFailed:
		return true
	case ErrRestoreFailed:
		return e.RestoreErr != nil
	default:
		return false
	}
}

// Restored returns true if the backup was moved back onto the input path.
func (e *WriteError) Restored() bool {
	return e.RestoreErr == nil
}

package domain

// Report describes one normalisation run.
// It is returned alongside any error so callers can report the
// stages that completed before the failure.
type Report struct {
	// RunID identifies the run in logs.
	RunID string

	// Input is the resolved input path.
	Input string

	// Backup is the backup path. Empty until the backup stage succeeds.
	Backup string

	// HeaderAction records how the first line was treated.
	HeaderAction HeaderAction

	// Lines is the number of lines written.
	Lines int

	// Written is true once the normalised file is on disk.
	Written bool
}

// BackedUp returns true if the input has been moved to Backup.
func (r *Report) BackedUp() bool {
	return r.Backup != ""
}

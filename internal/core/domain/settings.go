package domain

// DefaultInputPath is used when no path argument is given.
const DefaultInputPath = "getchallenge.csv"

// Settings holds the resolved configuration for a normalisation run.
type Settings struct {
	// DefaultPath is the input file used when none is given.
	DefaultPath string

	// Header is the canonical header line.
	Header string

	// MinHeaderMatches is the number of canonical names an existing
	// header needs before it is rewritten.
	MinHeaderMatches int

	// Verbose enables debug logging.
	Verbose bool
}

// DefaultSettings returns the settings used when no configuration is present.
func DefaultSettings() Settings {
	return Settings{
		DefaultPath:      DefaultInputPath,
		Header:           CanonicalHeader,
		MinHeaderMatches: DefaultMinHeaderMatches,
	}
}

// Validate checks the settings are usable. The header needs a non-empty
// first name to act as its marker.
func (s Settings) Validate() error {
	if s.DefaultPath == "" || MarkerOf(s.Header) == "" || s.MinHeaderMatches < 1 {
		return ErrInvalidInput
	}
	return nil
}

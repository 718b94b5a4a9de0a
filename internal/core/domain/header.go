package domain

import "strings"

// CanonicalHeader is the expected column line of a challenge CSV.
const CanonicalHeader = "challenge_id,difficulty,no_pre_mine,no_pre_mine_hour,latest_submission"

// HeaderMarker is the column name whose presence marks a line as a header.
// It is the first name of CanonicalHeader; see MarkerOf.
const HeaderMarker = "challenge_id"

// DefaultMinHeaderMatches is how many canonical names an existing header
// must contain before it is rewritten to the canonical header.
const DefaultMinHeaderMatches = 3

// HeaderFields splits a header line into its comma separated names.
func HeaderFields(header string) []string {
	return strings.Split(header, ",")
}

// MarkerOf returns the lower-cased first name of header. A first line
// containing it is treated as a header. Empty when header has no first name.
func MarkerOf(header string) string {
	first, _, _ := strings.Cut(header, ",")
	return strings.ToLower(strings.TrimSpace(first))
}

// HeaderAction describes what the header canonicaliser did to the first line.
type HeaderAction string

// Available header actions.
const (
	// HeaderNone leaves the first line as normalised.
	HeaderNone HeaderAction = "none"

	// HeaderAdded inserts the canonical header before the first line.
	HeaderAdded HeaderAction = "added"

	// HeaderNormalised replaces the first line with the canonical header.
	HeaderNormalised HeaderAction = "normalised"
)

// String returns the string representation.
func (a HeaderAction) String() string {
	return string(a)
}

// Message returns the user facing message for the action.
// HeaderNone has no message.
func (a HeaderAction) Message() string {
	switch a {
	case HeaderAdded:
		return "Added header to CSV"
	case HeaderNormalised:
		return "Normalized header to canonical ordering"
	default:
		return ""
	}
}

package header

import (
	"strings"

	"github.com/custodia-labs/csvnorm/internal/core/domain"
	"github.com/custodia-labs/csvnorm/internal/core/ports/driven"
)

// Ensure Canonicaliser implements the interface.
var _ driven.HeaderCanonicaliser = (*Canonicaliser)(nil)

// Canonicaliser inserts or rewrites the header line.
type Canonicaliser struct {
	header     string
	marker     string
	fields     map[string]struct{}
	minMatches int
}

// New creates a canonicaliser for header. A first line containing the
// first name of header is a header candidate, and it is rewritten when it
// shares at least minMatches names with header. Names compare case-insensitively.
func New(header string, minMatches int) *Canonicaliser {
	fields := make(map[string]struct{})
	for _, f := range domain.HeaderFields(header) {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			fields[f] = struct{}{}
		}
	}
	return &Canonicaliser{
		header:     header,
		marker:     domain.MarkerOf(header),
		fields:     fields,
		minMatches: minMatches,
	}
}

// NewDefault creates a canonicaliser for the challenge CSV header.
func NewDefault() *Canonicaliser {
	return New(domain.CanonicalHeader, domain.DefaultMinHeaderMatches)
}

// Header returns the canonical header line.
func (c *Canonicaliser) Header() string {
	return c.header
}

// Canonicalise inspects the first line. Without the header marker the
// canonical header is prepended. With it, the line is replaced when enough
// canonical names are present and left alone otherwise.
func (c *Canonicaliser) Canonicalise(lines []string) ([]string, domain.HeaderAction) {
	if len(lines) == 0 {
		return lines, domain.HeaderNone
	}

	first := strings.ToLower(lines[0])
	if !strings.Contains(first, c.marker) {
		out := make([]string, 0, len(lines)+1)
		out = append(out, c.header)
		out = append(out, lines...)
		return out, domain.HeaderAdded
	}

	if c.matches(first) >= c.minMatches {
		lines[0] = c.header
		return lines, domain.HeaderNormalised
	}
	return lines, domain.HeaderNone
}

// matches counts the distinct canonical names present in line.
func (c *Canonicaliser) matches(line string) int {
	seen := make(map[string]struct{})
	for _, f := range strings.Split(line, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if _, ok := c.fields[f]; ok {
			seen[f] = struct{}{}
		}
	}
	return len(seen)
}

package driven

import (
	"context"
	"io"

	"github.com/custodia-labs/csvnorm/internal/core/domain"
)

// LineNormaliser turns raw CSV text into normalised lines.
type LineNormaliser interface {
	// Normalise reads r to the end and returns one normalised line per
	// input line, in order. An empty reader yields no lines.
	Normalise(ctx context.Context, r io.Reader) ([]string, error)
}

// HeaderCanonicaliser makes sure the first line is a usable header.
type HeaderCanonicaliser interface {
	// Canonicalise returns lines with the header inserted or rewritten,
	// and the action taken. lines must not be empty.
	Canonicalise(lines []string) ([]string, domain.HeaderAction)
}

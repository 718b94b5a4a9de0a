package csvline

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/custodia-labs/csvnorm/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.LineNormaliser = (*Normaliser)(nil)

const (
	bom       = "\uFEFF"
	quote     = `"`
	separator = ","
)

// Normaliser cleans CSV lines without parsing quoting.
// Quotes are removed wherever they appear and every comma splits a field.
type Normaliser struct{}

// New creates a new line normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Normalise reads r line by line and returns the normalised lines.
// "\n", "\r\n" and a lone "\r" each end a line; a final line without a
// terminator still counts. Invalid UTF-8 is replaced with U+FFFD rather
// than failing the read.
func (n *Normaliser) Normalise(ctx context.Context, r io.Reader) ([]string, error) {
	if r == nil {
		return nil, errors.New("nil reader")
	}

	br := bufio.NewReader(transform.NewReader(r, runes.ReplaceIllFormed()))

	var lines []string
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		chunk, err := br.ReadString('\n')
		for _, line := range splitLines(chunk) {
			lines = append(lines, NormaliseLine(line))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// splitLines breaks a chunk ending in "\n" (or at EOF) into raw lines at
// every lone "\r". A "\r\n" pair never spans two chunks.
func splitLines(chunk string) []string {
	if chunk == "" {
		return nil
	}
	body := strings.TrimSuffix(chunk, "\n")
	body = strings.TrimSuffix(body, "\r")
	return strings.Split(body, "\r")
}

// NormaliseLine applies the per-line rules to a single raw line:
// BOMs and the trailing terminator go, quotes go, and each comma
// separated field is trimmed.
func NormaliseLine(line string) string {
	line = strings.ReplaceAll(line, bom, "")
	line = strings.TrimRight(line, "\r\n")
	line = strings.ReplaceAll(line, quote, "")

	fields := strings.Split(line, separator)
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return strings.Join(fields, separator)
}

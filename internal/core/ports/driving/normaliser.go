package driving

import (
	"context"

	"github.com/custodia-labs/csvnorm/internal/core/domain"
)

// CSVNormaliser normalises a CSV file in place, keeping a backup.
type CSVNormaliser interface {
	// Normalise runs the full pipeline on path. An empty path selects the
	// configured default. The report is never nil and describes the stages
	// that completed, including when an error is returned.
	Normalise(ctx context.Context, path string) (*domain.Report, error)
}

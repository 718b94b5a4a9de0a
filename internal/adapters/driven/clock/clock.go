// Package clock provides the system clock adapter.
package clock

import (
	"time"

	"github.com/custodia-labs/csvnorm/internal/core/ports/driven"
)

// Ensure System implements the interface.
var _ driven.Clock = System{}

// System reads the wall clock.
type System struct{}

// Now returns time.Now().
func (System) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant.
type Fixed time.Time

// Now returns the fixed instant.
func (f Fixed) Now() time.Time {
	return time.Time(f)
}

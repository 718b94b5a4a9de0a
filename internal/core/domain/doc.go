// Package domain defines the core business entities for csvnorm.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - CanonicalHeader: The expected column line of a challenge CSV
//   - Settings: Resolved run configuration
//   - Report: What a normalisation run did
//   - HeaderAction: How the header line was treated
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

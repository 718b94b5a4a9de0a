// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - FileStore: Stat, rename, read and write files
//   - Clock: Current time for backup naming
//   - LineNormaliser: Turns raw CSV text into normalised lines
//   - HeaderCanonicaliser: Ensures the first line is the canonical header
//
// # Optional Interfaces
//
//   - ConfigStore: Application configuration. Without it, defaults apply.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven

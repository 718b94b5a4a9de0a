// Package file provides file-based implementations of driven port interfaces.
// These adapters read from an afero filesystem and never write to it.
//
// Adapters:
//   - ConfigStore: TOML-based configuration
package file

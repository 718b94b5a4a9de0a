// Package memory provides in-memory implementations of driven ports for testing.
package memory

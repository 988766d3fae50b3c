package scytale

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrUnknownAlgorithm indicates a name that resolves to no cipher algorithm.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrUnknownDirection indicates a name that resolves to no direction.
	ErrUnknownDirection = errors.New("unknown direction")

	// ErrKeyMismatch indicates a key whose kind does not fit the chosen algorithm.
	ErrKeyMismatch = errors.New("key kind mismatch")

	// ErrEmptyKey indicates an empty key where a non-empty one is required.
	ErrEmptyKey = errors.New("empty key")
)

// ParseError represents a failure to resolve a user-facing name.
// It wraps a sentinel error with the name that failed to parse.
type ParseError struct {
	Err  error  // Underlying sentinel error (ErrUnknownAlgorithm, ErrUnknownDirection)
	Name string // Name that failed to resolve
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q", e.Err.Error(), e.Name)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ConfigError represents a cipher configuration error.
// It wraps a sentinel error with context about the algorithm and key kind.
type ConfigError struct {
	Err       error     // Underlying sentinel error (ErrKeyMismatch, ErrEmptyKey)
	Algorithm Algorithm // Algorithm being configured
	Kind      KeyKind   // Kind of key that was supplied
}

func (e *ConfigError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("%s for algorithm %q (%s key)", e.Err.Error(), e.Algorithm, e.Kind)
	}
	return fmt.Sprintf("%s for algorithm %q", e.Err.Error(), e.Algorithm)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// newParseError creates a ParseError for name resolution failures.
func newParseError(sentinel error, name string) error {
	return &ParseError{
		Err:  sentinel,
		Name: name,
	}
}

// newConfigError creates a ConfigError for cipher construction failures.
func newConfigError(sentinel error, algorithm Algorithm, kind KeyKind) error {
	return &ConfigError{
		Err:       sentinel,
		Algorithm: algorithm,
		Kind:      kind,
	}
}

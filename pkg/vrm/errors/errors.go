// Package errors defines the error kinds shared by the container reader,
// the metadata adapters and the rule loader.
package errors

import (
	"errors"
	"fmt"
)

var (
	// Format errors 📦
	ErrInvalidMagic   = errors.New("❌ not a valid container")
	ErrTruncated      = errors.New("❌ truncated container")
	ErrInvalidPayload = errors.New("❌ invalid JSON chunk")

	// Schema errors 🧾
	ErrMetadataNotFound = errors.New("❌ metadata not found")

	// Configuration errors ⚙️
	ErrInvalidRuleSet = errors.New("❌ invalid rule set")
)

// FormatError reports a container whose binary layout or JSON chunk could
// not be decoded.
type FormatError struct {
	File string
	Err  error
}

func (e *FormatError) Error() string {
	if e.File == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// NewFormatError wraps cause under kind. A nil cause yields kind alone.
func NewFormatError(file string, kind, cause error) *FormatError {
	if cause == nil {
		return &FormatError{File: file, Err: kind}
	}
	return &FormatError{File: file, Err: fmt.Errorf("%w: %w", kind, cause)}
}

// SchemaError reports a well-formed container that carries neither
// recognized metadata extension.
type SchemaError struct {
	File string
	Err  error
}

func (e *SchemaError) Error() string {
	if e.File == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// RuleSetError is fatal: a classification pass never starts with one.
type RuleSetError struct {
	Source string
	Err    error
}

func (e *RuleSetError) Error() string {
	return fmt.Sprintf("%v (%s): %v", ErrInvalidRuleSet, e.Source, e.Err)
}

func (e *RuleSetError) Unwrap() []error { return []error{ErrInvalidRuleSet, e.Err} }

// IsPerFile reports whether err only disqualifies a single file, so a batch
// may log it and move on.
func IsPerFile(err error) bool {
	var fe *FormatError
	var se *SchemaError
	return errors.As(err, &fe) || errors.As(err, &se)
}

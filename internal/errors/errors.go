// Package errors provides a lightweight structured error type (ConverterError)
// for category-based classification in the CLI and the conversion pipeline.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of a converter error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Source vault errors
	CategoryVault ErrorCategory = "vault"
	CategoryNote  ErrorCategory = "note"
	CategoryImage ErrorCategory = "image"

	// Output and infrastructure errors
	CategoryEmit     ErrorCategory = "emit"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops the run
	SeverityError   ErrorSeverity = "error"   // Skips the current note, run continues
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded output
)

// ConverterError is a structured error with category, severity, and context
type ConverterError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for ConverterError
type ContextFields map[string]any

// Error implements the error interface
func (e *ConverterError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *ConverterError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *ConverterError) WithContext(key string, value any) *ConverterError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// IsFatal reports whether the error should abort the whole run.
func (e *ConverterError) IsFatal() bool {
	return e.Severity == SeverityFatal
}

// New creates a new ConverterError
func New(category ErrorCategory, severity ErrorSeverity, message string) *ConverterError {
	return &ConverterError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new ConverterError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *ConverterError {
	return &ConverterError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

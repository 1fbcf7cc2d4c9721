// Package errors provides a lightweight structured error type (DocsifyError)
// for category-based classification and exit-code mapping in the CLI.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of an error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Tree construction and page emission errors
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryModel      ErrorCategory = "model"
	CategoryRender     ErrorCategory = "render"

	// Runtime and infrastructure errors
	CategoryServer   ErrorCategory = "server"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// DocsifyError is a structured error with category, severity, and context
type DocsifyError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for DocsifyError
type ContextFields map[string]any

// Error implements the error interface
func (e *DocsifyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *DocsifyError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *DocsifyError) WithContext(key string, value any) *DocsifyError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new DocsifyError
func New(category ErrorCategory, severity ErrorSeverity, message string) *DocsifyError {
	return &DocsifyError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new DocsifyError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *DocsifyError {
	return &DocsifyError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

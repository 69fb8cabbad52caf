// Package errors provides a small structured error type used to classify
// failures of a bookport run as configuration, filesystem or network errors.
package errors

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorCategory classifies an error by the part of the run that produced it
type ErrorCategory string

const (
	CategoryConfig     ErrorCategory = "config"
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryNetwork    ErrorCategory = "network"
	CategoryInternal   ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const SeverityFatal ErrorSeverity = "fatal"

// ContextFields carries structured context for a BookportError
type ContextFields map[string]any

// BookportError is a structured error with category, severity and context
type BookportError struct {
	Category ErrorCategory
	Severity ErrorSeverity
	Message  string
	Cause    error
	Context  ContextFields
}

// Error implements the error interface
func (e *BookportError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s): %s", e.Category, e.Severity, e.Message)
	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, e.Context[k])
		}
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

// Unwrap returns the wrapped cause
func (e *BookportError) Unwrap() error {
	return e.Cause
}

// WithContext adds a context field to the error
func (e *BookportError) WithContext(key string, value any) *BookportError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new BookportError
func New(category ErrorCategory, severity ErrorSeverity, message string) *BookportError {
	return &BookportError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new BookportError that wraps err
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *BookportError {
	return &BookportError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// IsCategory reports whether any error in err's chain is a BookportError of the given category
func IsCategory(err error, category ErrorCategory) bool {
	var be *BookportError
	if stderrors.As(err, &be) {
		return be.Category == category
	}
	return false
}

// GetCategory extracts the category from err, or CategoryInternal if it carries none
func GetCategory(err error) ErrorCategory {
	var be *BookportError
	if stderrors.As(err, &be) {
		return be.Category
	}
	return CategoryInternal
}

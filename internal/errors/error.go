package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryRuntime   Category = "runtime"
	CategoryCapture   Category = "capture"
	CategoryHydration Category = "hydration"
	CategoryConfig    Category = "config"
)

// SeidrError is a structured error with a stable code, suggestions, and
// documentation link.
type SeidrError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (runtime, capture, hydration, config).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *SeidrError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *SeidrError) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a detailed explanation to the error.
func (e *SeidrError) WithDetail(format string, args ...any) *SeidrError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *SeidrError) WithSuggestion(s string) *SeidrError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *SeidrError) Wrap(err error) *SeidrError {
	e.Wrapped = err
	return e
}

// New creates a SeidrError from a registered error code.
func New(code string) *SeidrError {
	template, ok := registry[code]
	if !ok {
		return &SeidrError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &SeidrError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new SeidrError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *SeidrError {
	return &SeidrError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a SeidrError.
func FromError(err error, code string) *SeidrError {
	if err == nil {
		return nil
	}
	if se, ok := err.(*SeidrError); ok {
		return se
	}
	return New(code).Wrap(err)
}

// IsCode reports whether err is a SeidrError with the given code.
func IsCode(err error, code string) bool {
	se, ok := err.(*SeidrError)
	return ok && se.Code == code
}

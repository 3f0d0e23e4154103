package errors

import (
	"fmt"
	"strings"
	"time"
)

// ErrorCode represents a unique error code for categorizing errors
type ErrorCode string

const (
	// Configuration errors (2xxx)
	ErrCodeConfigNotFound ErrorCode = "MHGE2001"
	ErrCodeConfigInvalid  ErrorCode = "MHGE2002"

	// File system errors (5xxx)
	ErrCodeFileOperation ErrorCode = "MHGE5001"
	ErrCodeInvalidPath   ErrorCode = "MHGE5002"

	// Generation errors (6xxx)
	ErrCodeValidationFailed ErrorCode = "MHGE6001"
	ErrCodeDerivation       ErrorCode = "MHGE6002"
	ErrCodeDefectInjection  ErrorCode = "MHGE6003"

	// System errors (9xxx)
	ErrCodeInternal ErrorCode = "MHGE9001"
)

// ErrorSeverity represents the severity level of an error
type ErrorSeverity string

const (
	SeverityCritical ErrorSeverity = "CRITICAL"
	SeverityError    ErrorSeverity = "ERROR"
	SeverityWarning  ErrorSeverity = "WARNING"
)

// AppError represents a structured application error with context
type AppError struct {
	Code      ErrorCode
	Message   string
	Severity  ErrorSeverity
	Context   map[string]interface{}
	Cause     error
	Timestamp time.Time
}

// Error implements the error interface
func (e *AppError) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s: %s", e.Code, e.Severity, e.Message))

	if len(e.Context) > 0 {
		for k, v := range e.Context {
			b.WriteString(fmt.Sprintf("\n  %s: %v", k, v))
		}
	}

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\nCaused by: %v", e.Cause))
	}

	return b.String()
}

// Unwrap returns the cause of the error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison by code
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Severity:  SeverityError,
		Context:   make(map[string]interface{}),
		Timestamp: time.Now(),
	}
}

// Wrap wraps an existing error with AppError
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}

	appErr := New(code, message)
	appErr.Cause = err

	// Inherit context when wrapping another AppError
	if ae, ok := err.(*AppError); ok {
		for k, v := range ae.Context {
			appErr.Context[k] = v
		}
	}

	return appErr
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithSeverity sets the error severity
func (e *AppError) WithSeverity(severity ErrorSeverity) *AppError {
	e.Severity = severity
	return e
}

// Common error constructors

// ConfigError creates a configuration-related error
func ConfigError(message string, field string) *AppError {
	return New(ErrCodeConfigInvalid, message).
		WithContext("field", field).
		WithSeverity(SeverityCritical)
}

// DerivationError reports a sampled or derived value outside its physically
// sane bound. The generator crashes rather than emit the row.
func DerivationError(message string, value interface{}) *AppError {
	return New(ErrCodeDerivation, message).
		WithContext("value", value).
		WithSeverity(SeverityCritical)
}

// FileError creates a file-system-related error
func FileError(message string, path string, cause error) *AppError {
	return Wrap(cause, ErrCodeFileOperation, message).
		WithContext("path", path)
}

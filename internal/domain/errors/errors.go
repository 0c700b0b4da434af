// Package errors defines the application error contract shared between the
// policy lifecycle service and the HTTP delivery layer.
package errors

import (
	"net/http"

	"coverd/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types
var (
	// ErrPolicyNotFound is the canonical not-found outcome. Callers must be
	// able to tell it apart from a business rule violation: the resource does
	// not exist, as opposed to existing but refusing the operation.
	ErrPolicyNotFound = NewBaseError(
		http.StatusNotFound,
		"POLICY_NOT_FOUND",
		"The requested policy does not exist",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// BusinessRuleError represents a caller-correctable rule failure, implementing
// the AppError interface. It maps to 422: the request is well-formed but the
// policy's state or the request data disallows the operation.
type BusinessRuleError struct {
	reason string
}

// NewBusinessRuleViolation creates a business rule violation with a
// human-readable reason.
func NewBusinessRuleViolation(reason string) *BusinessRuleError {
	return &BusinessRuleError{reason: reason}
}

// Error implements the error interface
func (e *BusinessRuleError) Error() string {
	return e.reason
}

// HTTPCode returns the HTTP status code
func (e *BusinessRuleError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

// ErrorCode returns the business error code
func (e *BusinessRuleError) ErrorCode() string {
	return "BUSINESS_RULE_VIOLATION"
}

// Message returns the user-friendly error message
func (e *BusinessRuleError) Message() string {
	return e.reason
}

// Details returns detailed error information
func (e *BusinessRuleError) Details() string {
	return ""
}

// IsBusinessViolation reports whether err is (or wraps) a business rule
// violation.
func IsBusinessViolation(err error) bool {
	var bre *BusinessRuleError

	return errors.As(err, &bre)
}

// IsNotFound reports whether err is (or wraps) the policy not-found outcome.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPolicyNotFound)
}

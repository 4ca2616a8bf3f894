// Copyright Notice:
// Copyright 2018-2026 DMTF. All rights reserved.
// License: BSD 3-Clause License. For full text see link: https://github.com/DMTF/Redfish-URI-Validator/blob/master/LICENSE.md

// Package errors provides structured errors with stable codes for the
// validator. Codes distinguish failures of the external collaborators
// (specification loading, service retrieval) from internal faults so the
// CLI can map them to exit behavior.
package errors

import "fmt"

// Code identifies an error category.
type Code string

const (
	// ErrCodeInvalidSpec indicates the OpenAPI specification could not be
	// loaded or contains a malformed path template.
	ErrCodeInvalidSpec Code = "INVALID_SPEC"

	// ErrCodeAuth indicates the service rejected the supplied credentials.
	ErrCodeAuth Code = "AUTH_FAILED"

	// ErrCodeTransport indicates the service could not be reached or
	// returned an unusable response.
	ErrCodeTransport Code = "TRANSPORT"

	// ErrCodeInternal indicates an unexpected internal fault.
	ErrCodeInternal Code = "INTERNAL"
)

// StructuredError is an error with a stable code and an optional wrapped cause.
type StructuredError struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped cause, if any.
func (e *StructuredError) Unwrap() error {
	return e.Err
}

// New creates a StructuredError with the given code and message.
func New(code Code, message string) *StructuredError {
	return &StructuredError{Code: code, Message: message}
}

// Newf creates a StructuredError with a formatted message.
func Newf(code Code, format string, args ...any) *StructuredError {
	return &StructuredError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a StructuredError wrapping an underlying cause.
func Wrap(code Code, message string, err error) *StructuredError {
	return &StructuredError{Code: code, Message: message, Err: err}
}

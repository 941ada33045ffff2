// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFieldName     = errors.New("field name is required")
	ErrDuplicateFieldName = errors.New("duplicate field name")
	ErrNilRule            = errors.New("rule is nil")
	ErrNilDescriptor      = errors.New("rule error descriptor is nil")
	ErrInvalidLengthRange = errors.New("invalid length range")
)

// ErrorKind classifies a validation failure.
type ErrorKind int

const (
	// InvalidPattern is reported when a value does not match a required pattern.
	InvalidPattern ErrorKind = iota + 1
	// InsufficientLength is reported when a value is outside the allowed length.
	InsufficientLength
)

// String returns a stable lowercase name of the kind, used in logs.
func (k ErrorKind) String() string {
	switch k {
	case InvalidPattern:
		return "invalid_pattern"
	case InsufficientLength:
		return "insufficient_length"
	default:
		return "unknown"
	}
}

// ValidationError is the error descriptor attached to a [Rule]. It carries a
// fixed user-facing message.
type ValidationError struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface and returns the user-facing message.
func (e *ValidationError) Error() string {
	return e.Message
}

// Error descriptors used by the login form.
var (
	ErrInvalidEmail   = &ValidationError{Kind: InvalidPattern, Message: "Email address is invalid"}
	ErrPasswordLength = &ValidationError{Kind: InsufficientLength, Message: "Password must be at least 8 characters"}
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides the field validation engine used by the login
// form and by the services that receive credentials from it.
//
// Core concepts:
//   - Rule: a predicate over a string value paired with an error descriptor.
//     [PatternRule] and [LengthRule] are the built-in variants.
//   - Field: a named input holding its current value and an ordered rule list.
//   - Result: Valid, or Invalid with a non-empty ordered list of descriptors.
//   - FormValidator: a set of fields built once from [FieldDefinition] values
//     and evaluated on demand.
//   - Validator: generic interface to validate arbitrary values or structures,
//     with optional field-level scoping.
//
// Validation failures are data: they are reported as [*ValidationError]
// descriptors and never cause a panic.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// Rule is a single validation predicate with its associated error descriptor.
type Rule interface {
	// Check reports whether value satisfies the rule.
	Check(value string) bool

	// Descriptor returns the error reported when Check fails.
	Descriptor() *ValidationError
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-login-kit/models"
)

// Field name constants of the login form. They are also passed to
// [CredentialsValidator.Validate] to restrict validation to a subset of fields.
const (
	// FieldEmail targets the account e-mail address.
	FieldEmail = "email"

	// FieldPassword targets the account password.
	FieldPassword = "password"
)

// LoginFieldDefinitions returns the login form fields in tab order with their
// rules.
func LoginFieldDefinitions() []FieldDefinition {
	return []FieldDefinition{
		{Name: FieldEmail, Rules: []Rule{EmailRule()}},
		{Name: FieldPassword, Rules: []Rule{PasswordLengthRule()}},
	}
}

// ResetFieldDefinitions returns the fields of the password reset form.
func ResetFieldDefinitions() []FieldDefinition {
	return []FieldDefinition{
		{Name: FieldEmail, Rules: []Rule{EmailRule()}},
	}
}

// CredentialsValidator implements the Validator interface for
// [models.Credentials]. It applies the same rules as the login form, so that
// credentials reaching a service are checked even when they did not come
// through the form.
type CredentialsValidator struct {
	rules map[string][]Rule
}

// NewCredentialsValidator constructs a new CredentialsValidator
// and returns it as the Validator interface.
func NewCredentialsValidator() Validator {
	rules := make(map[string][]Rule)
	for _, def := range LoginFieldDefinitions() {
		rules[def.Name] = def.Rules
	}
	return &CredentialsValidator{rules: rules}
}

// Validate accepts models.Credentials or *models.Credentials. Optional fields
// restrict validation to the named subset; when omitted, email and password
// are both validated.
//
// Every failed descriptor is returned, joined with [errors.Join]; use
// [errors.As] or [errors.Is] with the package descriptors to inspect them.
// Returns ErrUnsupportedType for other types and ErrUnknownField for an
// unrecognised field name.
func (v *CredentialsValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCredentials(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	var errs []error
	for _, name := range fields {
		var value string
		switch name {
		case FieldEmail:
			value = c.Email
		case FieldPassword:
			value = c.Password
		default:
			return ErrUnknownField
		}

		if err := ValidateField(Field{Name: name, Value: value, Rules: v.rules[name]}).Err(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Credentials are the values the login form hands to the host application
// once validation succeeds. They are sent to the auth server as JSON and must
// never be logged.
type Credentials struct {
	// Email is the account e-mail address, whitespace-trimmed.
	Email string `json:"email"`

	// Password is the account password exactly as typed.
	Password string `json:"password"`
}

// NewCredentials builds Credentials from raw form values. The email is
// trimmed; the password is kept verbatim.
func NewCredentials(email, password string) Credentials {
	return Credentials{
		Email:    strings.TrimSpace(email),
		Password: password,
	}
}

// PasswordResetRequest asks the auth server to send password reset
// instructions to Email.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

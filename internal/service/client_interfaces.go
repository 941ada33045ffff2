// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-login-kit/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_auth_service_mock.go -package=mock

// ClientAuthService defines the host-side contract that receives what the
// login form submits. Implementations re-validate their input and talk to the
// auth server through an adapter.
type ClientAuthService interface {
	// Login authenticates creds against the server and returns the resulting
	// session. Returns an error wrapping [ErrInvalidCredentials] when creds
	// fail validation, [ErrLoginOnServer] when the server call fails, or
	// [ErrInvalidToken] / [ErrTokenIsExpired] when the issued token is
	// unusable.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// RequestPasswordReset asks the server to send reset instructions to
	// email. Returns an error wrapping [ErrInvalidCredentials] when the email
	// fails validation or [ErrPasswordReset] when the server call fails.
	RequestPasswordReset(ctx context.Context, email string) error
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the auth server.
//
// The primary abstraction is [AuthAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPAuthAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrServerUnavailable] for 5xx).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-login-kit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/auth_adapter_mock.go -package=mock

// AuthAdapter defines transport-agnostic communication with the auth server.
// Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type AuthAdapter interface {
	// Login sends the credentials to the server. On success it returns the
	// bearer token issued by the server with its claims parsed. Returns
	// [ErrUnauthorized] (wrapped) for rejected credentials.
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)

	// RequestPasswordReset asks the server to send password reset
	// instructions to req.Email.
	RequestPasswordReset(ctx context.Context, req models.PasswordResetRequest) error
}

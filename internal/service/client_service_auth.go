// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-login-kit/internal/adapter"
	"github.com/MKhiriev/go-login-kit/internal/logger"
	"github.com/MKhiriev/go-login-kit/internal/validators"
	"github.com/MKhiriev/go-login-kit/models"
)

type clientAuthService struct {
	adapter   adapter.AuthAdapter
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

func NewClientAuthService(authAdapter adapter.AuthAdapter, validator validators.Validator, log *logger.Logger) ClientAuthService {
	if log == nil {
		log = logger.Nop()
	}
	return &clientAuthService{
		adapter:   authAdapter,
		validator: validator,
		now:       time.Now,
		logger:    log,
	}
}

func (a *clientAuthService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	creds.Email = strings.TrimSpace(creds.Email)

	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	token, err := a.adapter.Login(ctx, creds)
	if err != nil {
		a.logger.Error().Err(err).Msg("login on server failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	userID, err := token.GetUserID()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	session := models.Session{
		UserID: userID,
		Email:  creds.Email,
		Token:  token.String(),
	}
	if token.ExpiresAt != nil {
		session.ExpiresAt = token.ExpiresAt.Time
	}
	if session.Expired(a.now()) {
		return models.Session{}, ErrTokenIsExpired
	}

	a.logger.Info().
		Int64("user_id", session.UserID).
		Time("expires_at", session.ExpiresAt).
		Msg("user logged in")

	return session, nil
}

func (a *clientAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)

	if err := a.validator.Validate(ctx, models.Credentials{Email: email}, validators.FieldEmail); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	if err := a.adapter.RequestPasswordReset(ctx, models.PasswordResetRequest{Email: email}); err != nil {
		a.logger.Error().Err(err).Msg("password reset request failed")
		return fmt.Errorf("%w: %w", ErrPasswordReset, err)
	}

	a.logger.Info().Msg("password reset requested")
	return nil
}

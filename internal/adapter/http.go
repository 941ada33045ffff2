// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-login-kit/internal/config"
	"github.com/MKhiriev/go-login-kit/internal/logger"
	"github.com/MKhiriev/go-login-kit/internal/utils"
	"github.com/MKhiriev/go-login-kit/models"
	"github.com/go-resty/resty/v2"
)

const traceIDHeader = "X-Trace-ID"

const (
	loginPath         = "/api/auth/login"
	passwordResetPath = "/api/auth/password-reset"
)

type httpAuthAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPAuthAdapter constructs an HTTP/REST implementation of [AuthAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout. Every request gets a fresh X-Trace-ID header and a child logger
// carrying the same id, which logs the response status and duration.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPAuthAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (AuthAdapter, error) {
	baseURL, err := utils.NormalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	if log == nil {
		log = logger.Nop()
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	traceIDs := utils.NewUUIDGenerator()

	client.
		SetHeader("Content-Type", "application/json").
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			traceID := traceIDs.Generate()
			r.SetHeader(traceIDHeader, traceID)

			reqLog := log.GetChildLogger()
			reqLog.Logger = reqLog.With().Str("trace_id", traceID).Logger()
			r.SetContext(reqLog.WithContext(r.Context()))
			return nil
		}).
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			logger.FromContext(resp.Request.Context()).Debug().
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL).
				Int("status", resp.StatusCode()).
				Dur("elapsed", resp.Time()).
				Msg("auth server response")
			return nil
		})

	return &httpAuthAdapter{client: client, logger: log}, nil
}

// Login implements [AuthAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and its claims are parsed. Returns an error
// if the request fails, the server returns a non-2xx status, or the token
// cannot be parsed.
func (h *httpAuthAdapter) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(creds).
		Post(loginPath)
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	header := resp.Header().Get("Authorization")
	if header == "" {
		return models.Token{}, ErrMissingToken
	}

	signed, err := utils.ParseBearerToken(header)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	token, err := models.ParseToken(signed)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse token claims: %w", err)
	}

	return token, nil
}

// RequestPasswordReset implements [AuthAdapter]. It POSTs the e-mail to
// POST /api/auth/password-reset.
func (h *httpAuthAdapter) RequestPasswordReset(ctx context.Context, req models.PasswordResetRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(passwordResetPath)
	if err != nil {
		return fmt.Errorf("password reset request: %w", err)
	}

	return mapHTTPError(resp)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-login-kit/internal/adapter"
	"github.com/MKhiriev/go-login-kit/internal/service"
)

var ErrUserQuit = errors.New("user quit the program")

const serverUnavailableMessage = "No network connection or the server is unavailable"

// humanizeServerError turns an auth service error into the line shown on the
// page.
func humanizeServerError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Wrong email or password"
	case errors.Is(err, adapter.ErrNotFound):
		return "No account is registered with this email"
	case errors.Is(err, adapter.ErrTooManyRequests):
		return "Too many attempts, try again later"
	case errors.Is(err, adapter.ErrServerUnavailable):
		return serverUnavailableMessage
	case errors.Is(err, service.ErrTokenIsExpired), errors.Is(err, service.ErrInvalidToken):
		return "The server issued an unusable session, try again"
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return serverUnavailableMessage
	}

	return err.Error()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials provided")
	ErrLoginOnServer      = errors.New("login on server failed")
	ErrPasswordReset      = errors.New("password reset request failed")

	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenIsExpired = errors.New("token is expired")
)

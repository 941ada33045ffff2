// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors mapped from auth server responses by mapHTTPError.
var (
	ErrBadRequest        = errors.New("bad request")
	ErrUnauthorized      = errors.New("client unauthorized")
	ErrNotFound          = errors.New("not found")
	ErrTooManyRequests   = errors.New("too many requests")
	ErrServerUnavailable = errors.New("server unavailable")

	ErrMissingToken = errors.New("authorization token missing in response")
)

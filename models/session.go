// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the outcome of a successful login: who signed in and the bearer
// token to use for later requests.
type Session struct {
	UserID    int64
	Email     string
	Token     string
	ExpiresAt time.Time
}

// Expired reports whether the session token has an expiry that lies before now.
// A session without an expiry never expires.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

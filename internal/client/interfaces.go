// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-login-kit/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// LoginUI is the interactive part of the client. It blocks until the user
// either signs in or leaves.
type LoginUI interface {
	LoginFlow(ctx context.Context) (models.Session, error)
}

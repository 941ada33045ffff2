// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-login-kit/internal/adapter"
	"github.com/MKhiriev/go-login-kit/internal/logger"
	"github.com/MKhiriev/go-login-kit/internal/validators"
)

type ClientServices struct {
	AuthService ClientAuthService
}

func NewClientServices(authAdapter adapter.AuthAdapter, log *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(authAdapter, validators.NewCredentialsValidator(), log),
	}
}

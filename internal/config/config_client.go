// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the auth server address used by the client.
	HTTPAddress string `validate:"required,hostname_port|url"`
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration `validate:"gt=0"`
}

// ClientLog holds the client logging settings.
type ClientLog struct {
	// File is the log file path; empty selects the default location.
	File string
	// Level is the zerolog level name.
	Level string `validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Log contains logging settings.
	Log ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. args are the command-line arguments
// without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: cfg.Log.Level,
		},
	}

	return clientCfg, clientCfg.validate()
}

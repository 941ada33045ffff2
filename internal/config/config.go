// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-login-kit client. It aggregates all sub-configurations and is
// populated by merging defaults, environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the auth server address and outbound request settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Log holds the log destination and level.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds configuration of the HTTP adapter talking to the auth server.
type Adapter struct {
	// HTTPAddress is the auth server address, either "host:port" or a full
	// base URL (e.g. "https://auth.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request (e.g. "10s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds logging settings.
type Log struct {
	// File is the path of the log file. Empty means a "logs" file next to
	// the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name (trace, debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Default values applied before any other source.
const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 10 * time.Second
	DefaultLogLevel       = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (later sources override earlier
// non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags parsed from args
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

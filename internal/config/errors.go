// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// ErrUnexpectedArguments is returned when positional arguments follow the flags.
var ErrUnexpectedArguments = errors.New("unexpected command-line arguments")

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a malformed server address or a zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidLogConfigs indicates invalid logging settings
	// (for example, an unknown log level).
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)

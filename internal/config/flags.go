// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
)

// parseFlags parses the command-line layer of the configuration from args
// (without the program name). Flags that are not given stay zero.
//
// Flags:
//
//	-a               auth server address, host:port or base URL
//	-request-timeout request timeout (e.g., "10s", "1m")
//	-log-file        log file path
//	-log-level       log level (trace, debug, info, warn, error)
//	-c, -config      json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet("go-login-kit", flag.ContinueOnError)
	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", "", "Auth server address, host:port or base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s, 1m)")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Log file path")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedArguments, fs.Args())
	}

	return cfg, nil
}

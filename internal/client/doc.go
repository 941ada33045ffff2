// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It runs the terminal login flow and reports the resulting session to the
// user once the program leaves the alternate screen.
package client

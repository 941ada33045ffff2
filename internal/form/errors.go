// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import "errors"

var (
	ErrNilValidator = errors.New("form validator is nil")
	ErrNoFields     = errors.New("form has no fields")
)

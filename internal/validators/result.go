// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"
)

// Result is the outcome of validating one field. The zero value is Valid.
// An Invalid result always carries at least one descriptor: it can only be
// produced by the evaluation functions of this package.
type Result struct {
	errs []*ValidationError
}

func invalid(errs []*ValidationError) Result {
	if len(errs) == 0 {
		return Result{}
	}
	return Result{errs: errs}
}

// IsValid reports whether every rule passed.
func (r Result) IsValid() bool {
	return len(r.errs) == 0
}

// Errors returns the descriptors of the failed rules in rule-declaration
// order, or nil for a Valid result.
func (r Result) Errors() []*ValidationError {
	if len(r.errs) == 0 {
		return nil
	}
	out := make([]*ValidationError, len(r.errs))
	copy(out, r.errs)
	return out
}

// First returns the first failed descriptor, or nil for a Valid result.
func (r Result) First() *ValidationError {
	if len(r.errs) == 0 {
		return nil
	}
	return r.errs[0]
}

// Message returns the message of the first failed descriptor, or "" when valid.
func (r Result) Message() string {
	if first := r.First(); first != nil {
		return first.Message
	}
	return ""
}

// Err returns nil for a Valid result, otherwise all descriptors joined with
// [errors.Join].
func (r Result) Err() error {
	if r.IsValid() {
		return nil
	}
	errs := make([]error, 0, len(r.errs))
	for _, e := range r.errs {
		errs = append(errs, e)
	}
	return errors.Join(errs...)
}

// String renders the result for logs: "valid" or "invalid(msg; msg)".
func (r Result) String() string {
	if r.IsValid() {
		return "valid"
	}
	msgs := make([]string, 0, len(r.errs))
	for _, e := range r.errs {
		msgs = append(msgs, e.Message)
	}
	return "invalid(" + strings.Join(msgs, "; ") + ")"
}

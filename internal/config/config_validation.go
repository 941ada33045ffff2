// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var structValidator = validator.New()

// validate checks the `validate` struct tags of the client config and maps
// every failure to the sentinel error of its configuration group.
//
// Returns nil if the configuration is valid, or the joined sentinel errors
// (each wrapped with the failing field) otherwise.
func (cfg *ClientConfig) validate() error {
	err := structValidator.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("error validating client config: %w", err)
	}

	var errs []error
	for _, fe := range fieldErrs {
		switch {
		case strings.HasPrefix(fe.StructNamespace(), "ClientConfig.Adapter."):
			errs = append(errs, fmt.Errorf("%w: %s failed %q", ErrInvalidAdapterConfigs, fe.Field(), fe.Tag()))
		case strings.HasPrefix(fe.StructNamespace(), "ClientConfig.Log."):
			errs = append(errs, fmt.Errorf("%w: %s failed %q", ErrInvalidLogConfigs, fe.Field(), fe.Tag()))
		default:
			errs = append(errs, fmt.Errorf("invalid config field %s: %q", fe.StructNamespace(), fe.Tag()))
		}
	}

	return errors.Join(errs...)
}

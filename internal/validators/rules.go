// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// EmailPatternStandard is the standard email-address pattern: a dot-separated
// local part, an "@", dot-separated domain labels and an alphabetic top-level
// domain of at least two letters.
const EmailPatternStandard = `^[_A-Za-z0-9+-]+(\.[_A-Za-z0-9+-]+)*@[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)*(\.[A-Za-z]{2,})$`

var emailRegexp = regexp.MustCompile(EmailPatternStandard)

// PatternRule requires the whole value to match a regular expression.
type PatternRule struct {
	pattern *regexp.Regexp
	err     *ValidationError
}

// NewPatternRule compiles pattern and binds it to the error descriptor err.
func NewPatternRule(pattern string, err *ValidationError) (*PatternRule, error) {
	if err == nil {
		return nil, ErrNilDescriptor
	}

	re, compileErr := regexp.Compile(pattern)
	if compileErr != nil {
		return nil, fmt.Errorf("error compiling pattern %q: %w", pattern, compileErr)
	}

	return &PatternRule{pattern: re, err: err}, nil
}

// Check implements [Rule].
func (r *PatternRule) Check(value string) bool {
	return r.pattern.MatchString(value)
}

// Descriptor implements [Rule].
func (r *PatternRule) Descriptor() *ValidationError {
	return r.err
}

// Pattern returns the source text of the rule's regular expression.
func (r *PatternRule) Pattern() string {
	return r.pattern.String()
}

// LengthRule bounds the number of characters (runes) in a value.
// Max == 0 means the value has no upper bound.
type LengthRule struct {
	Min int
	Max int
	Err *ValidationError
}

// NewLengthRule returns a LengthRule after checking that the bounds make sense.
func NewLengthRule(minLen, maxLen int, err *ValidationError) (*LengthRule, error) {
	if err == nil {
		return nil, ErrNilDescriptor
	}
	if minLen < 0 || maxLen < 0 || (maxLen > 0 && maxLen < minLen) {
		return nil, fmt.Errorf("%w: min=%d max=%d", ErrInvalidLengthRange, minLen, maxLen)
	}

	return &LengthRule{Min: minLen, Max: maxLen, Err: err}, nil
}

// Check implements [Rule].
func (r *LengthRule) Check(value string) bool {
	n := utf8.RuneCountInString(value)
	if n < r.Min {
		return false
	}
	return r.Max == 0 || n <= r.Max
}

// Descriptor implements [Rule].
func (r *LengthRule) Descriptor() *ValidationError {
	return r.Err
}

// EmailRule returns the pattern rule applied to the login form's email field.
func EmailRule() Rule {
	return &PatternRule{pattern: emailRegexp, err: ErrInvalidEmail}
}

// PasswordLengthRule returns the length rule applied to the login form's
// password field.
func PasswordLengthRule() Rule {
	return &LengthRule{Min: MinPasswordLength, Err: ErrPasswordLength}
}

// MinPasswordLength is the shortest password accepted by the login form.
const MinPasswordLength = 8

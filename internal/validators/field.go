// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

// Field is a named input with its current value and ordered rules.
// ErrorMessage holds the message currently displayed for the field; it is
// maintained by the owning form, not by the evaluation functions.
type Field struct {
	Name         string
	Value        string
	Rules        []Rule
	ErrorMessage string
}

// ValidateField evaluates every rule of f in declared order against f.Value.
// The result lists the descriptor of every failed rule, in declaration order.
// It has no side effects.
func ValidateField(f Field) Result {
	var failed []*ValidationError
	for _, rule := range f.Rules {
		if rule == nil {
			continue
		}
		if !rule.Check(f.Value) {
			failed = append(failed, rule.Descriptor())
		}
	}

	return invalid(failed)
}

// ValidateAll runs [ValidateField] for every field in order. The boolean is
// true iff every result is Valid. Results are keyed by field name.
func ValidateAll(fields []Field) (bool, map[string]Result) {
	results := make(map[string]Result, len(fields))
	overallValid := true
	for _, f := range fields {
		res := ValidateField(f)
		if !res.IsValid() {
			overallValid = false
		}
		results[f.Name] = res
	}

	return overallValid, results
}

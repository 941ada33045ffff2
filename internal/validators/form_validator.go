// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "fmt"

// FieldDefinition declares a field and its rules when a [FormValidator] is
// constructed.
type FieldDefinition struct {
	Name  string
	Rules []Rule
}

// FormValidator owns a fixed, ordered set of fields. The field set is built
// once by [NewFormValidator]; only values and displayed messages change
// afterwards.
type FormValidator struct {
	fields []*Field
	index  map[string]int
}

// NewFormValidator builds a FormValidator from defs, keeping their order as
// the field-declaration (and tab) order. It fails on an empty or duplicate
// field name and on nil rules or descriptors.
func NewFormValidator(defs ...FieldDefinition) (*FormValidator, error) {
	v := &FormValidator{
		fields: make([]*Field, 0, len(defs)),
		index:  make(map[string]int, len(defs)),
	}

	for _, def := range defs {
		if def.Name == "" {
			return nil, ErrEmptyFieldName
		}
		if _, exists := v.index[def.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateFieldName, def.Name)
		}
		for i, rule := range def.Rules {
			if rule == nil {
				return nil, fmt.Errorf("%w: field %s, rule #%d", ErrNilRule, def.Name, i)
			}
			if rule.Descriptor() == nil {
				return nil, fmt.Errorf("%w: field %s, rule #%d", ErrNilDescriptor, def.Name, i)
			}
		}

		rules := make([]Rule, len(def.Rules))
		copy(rules, def.Rules)

		v.index[def.Name] = len(v.fields)
		v.fields = append(v.fields, &Field{Name: def.Name, Rules: rules})
	}

	return v, nil
}

// Len returns the number of fields.
func (v *FormValidator) Len() int {
	return len(v.fields)
}

// Names returns field names in declaration order.
func (v *FormValidator) Names() []string {
	names := make([]string, len(v.fields))
	for i, f := range v.fields {
		names[i] = f.Name
	}
	return names
}

// Field returns a copy of the named field.
func (v *FormValidator) Field(name string) (Field, error) {
	f, err := v.lookup(name)
	if err != nil {
		return Field{}, err
	}
	return *f, nil
}

// Value returns the current value of the named field, or "" if it is unknown.
func (v *FormValidator) Value(name string) string {
	f, err := v.lookup(name)
	if err != nil {
		return ""
	}
	return f.Value
}

// Values returns the current values keyed by field name.
func (v *FormValidator) Values() map[string]string {
	out := make(map[string]string, len(v.fields))
	for _, f := range v.fields {
		out[f.Name] = f.Value
	}
	return out
}

// SetValue replaces the value of the named field.
func (v *FormValidator) SetValue(name, value string) error {
	f, err := v.lookup(name)
	if err != nil {
		return err
	}
	f.Value = value
	return nil
}

// ErrorMessage returns the message currently displayed for the named field.
func (v *FormValidator) ErrorMessage(name string) string {
	f, err := v.lookup(name)
	if err != nil {
		return ""
	}
	return f.ErrorMessage
}

// SetErrorMessage sets (or, with "", clears) the displayed message of the
// named field.
func (v *FormValidator) SetErrorMessage(name, message string) error {
	f, err := v.lookup(name)
	if err != nil {
		return err
	}
	f.ErrorMessage = message
	return nil
}

// ValidateField evaluates the named field against its current value.
func (v *FormValidator) ValidateField(name string) (Result, error) {
	f, err := v.lookup(name)
	if err != nil {
		return Result{}, err
	}
	return ValidateField(*f), nil
}

// ValidateAll evaluates every field in declaration order.
func (v *FormValidator) ValidateAll() (bool, map[string]Result) {
	fields := make([]Field, len(v.fields))
	for i, f := range v.fields {
		fields[i] = *f
	}
	return ValidateAll(fields)
}

func (v *FormValidator) lookup(name string) (*Field, error) {
	i, ok := v.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return v.fields[i], nil
}

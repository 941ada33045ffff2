// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"github.com/MKhiriev/go-login-kit/internal/logger"
	"github.com/MKhiriev/go-login-kit/internal/validators"
)

// SubmitFunc receives the field values, keyed by field name, once a
// submission passes validation.
type SubmitFunc func(values map[string]string)

// Form tracks one input form across user events.
type Form struct {
	validator *validators.FormValidator
	onSubmit  SubmitFunc

	focus               int
	submissionAttempted bool
	inProgress          bool
	state               State

	logger *logger.Logger
}

// New creates a Form over the fields of v. Focus starts on the first field.
// onSubmit may be nil. A nil log is replaced with a no-op logger.
func New(v *validators.FormValidator, onSubmit SubmitFunc, log *logger.Logger) (*Form, error) {
	if v == nil {
		return nil, ErrNilValidator
	}
	if v.Len() == 0 {
		return nil, ErrNoFields
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Form{
		validator: v,
		onSubmit:  onSubmit,
		state:     StateIdle,
		logger:    log,
	}, nil
}

// Change is the per-keystroke trigger: it stores value and re-validates the
// field. The visible message is only updated once a submission has been
// attempted; before that the computed result is returned but not shown.
func (f *Form) Change(name, value string) (validators.Result, error) {
	if err := f.validator.SetValue(name, value); err != nil {
		return validators.Result{}, err
	}

	res, err := f.validator.ValidateField(name)
	if err != nil {
		return validators.Result{}, err
	}

	if f.submissionAttempted {
		if err = f.validator.SetErrorMessage(name, res.Message()); err != nil {
			return validators.Result{}, err
		}
	}

	return res, nil
}

// Submit is the submit action. It marks the submission as attempted,
// validates every field and shows the first message of each invalid field
// (clearing the others). When the form is valid it moves to Submitted and
// calls the submit callback; otherwise it returns to Idle.
//
// Submit is ignored while the form is in progress. It reports whether the
// callback was invoked.
func (f *Form) Submit() bool {
	if f.inProgress {
		f.logger.Debug().Msg("submit ignored: submission in progress")
		return false
	}

	f.submissionAttempted = true

	overallValid, results := f.validator.ValidateAll()
	for _, name := range f.validator.Names() {
		// names come from the validator itself, lookup cannot fail
		_ = f.validator.SetErrorMessage(name, results[name].Message())
	}

	if !overallValid {
		f.transition(StateAttemptedInvalid)
		f.transition(StateIdle)
		return false
	}

	f.transition(StateAttemptedValid)
	f.transition(StateSubmitted)
	if f.onSubmit != nil {
		f.onSubmit(f.validator.Values())
	}

	return true
}

// Return is the "next field" action of the focused field. Focus moves to the
// next field in tab order if there is one; on the last field the action is
// treated as [Form.Submit]. It reports whether focus moved.
func (f *Form) Return() bool {
	if f.focus+1 < f.validator.Len() {
		f.focus++
		return true
	}

	f.Submit()
	return false
}

// FocusNext moves focus to the next field, wrapping around.
func (f *Form) FocusNext() {
	f.focus = (f.focus + 1) % f.validator.Len()
}

// FocusPrev moves focus to the previous field, wrapping around.
func (f *Form) FocusPrev() {
	n := f.validator.Len()
	f.focus = (f.focus - 1 + n) % n
}

// SetFocus moves focus to the named field.
func (f *Form) SetFocus(name string) error {
	for i, n := range f.validator.Names() {
		if n == name {
			f.focus = i
			return nil
		}
	}
	return validators.ErrUnknownField
}

// Focused returns the name of the focused field.
func (f *Form) Focused() string {
	return f.validator.Names()[f.focus]
}

// FocusIndex returns the tab-order position of the focused field.
func (f *Form) FocusIndex() int {
	return f.focus
}

// Names returns the field names in tab order.
func (f *Form) Names() []string {
	return f.validator.Names()
}

// Value returns the current value of the named field.
func (f *Form) Value(name string) string {
	return f.validator.Value(name)
}

// Values returns all current values keyed by field name.
func (f *Form) Values() map[string]string {
	return f.validator.Values()
}

// ErrorMessage returns the visible message of the named field, "" if none.
func (f *Form) ErrorMessage(name string) string {
	return f.validator.ErrorMessage(name)
}

// ErrorVisible reports whether the named field currently shows a message.
func (f *Form) ErrorVisible(name string) bool {
	return f.validator.ErrorMessage(name) != ""
}

// SubmissionAttempted reports whether Submit has been called at least once.
func (f *Form) SubmissionAttempted() bool {
	return f.submissionAttempted
}

// InProgress reports whether the host is still processing a submission.
func (f *Form) InProgress() bool {
	return f.inProgress
}

// SetInProgress blocks (true) or re-enables (false) submission. Hosts set it
// while they process submitted values.
func (f *Form) SetInProgress(inProgress bool) {
	f.inProgress = inProgress
}

// State returns the current submission state.
func (f *Form) State() State {
	return f.state
}

func (f *Form) transition(to State) {
	f.logger.Debug().
		Str("from", f.state.String()).
		Str("to", to.String()).
		Msg("form state transition")
	f.state = to
}

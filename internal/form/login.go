// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"github.com/MKhiriev/go-login-kit/internal/logger"
	"github.com/MKhiriev/go-login-kit/internal/validators"
	"github.com/MKhiriev/go-login-kit/models"
)

// Delegate is the callback contract between the login form and the host
// application. The form holds no ownership over the delegate.
type Delegate interface {
	// OnSubmit is invoked once the form passes validation, with the trimmed
	// email and the password as typed.
	OnSubmit(email, password string)

	// OnForgotPassword is invoked by the forgot-password action.
	OnForgotPassword()

	// OnCancel is invoked by the cancel (back) action.
	OnCancel()
}

// DelegateFuncs adapts plain functions to [Delegate]. Nil functions are
// skipped.
type DelegateFuncs struct {
	Submit         func(email, password string)
	ForgotPassword func()
	Cancel         func()
}

// OnSubmit implements [Delegate].
func (d DelegateFuncs) OnSubmit(email, password string) {
	if d.Submit != nil {
		d.Submit(email, password)
	}
}

// OnForgotPassword implements [Delegate].
func (d DelegateFuncs) OnForgotPassword() {
	if d.ForgotPassword != nil {
		d.ForgotPassword()
	}
}

// OnCancel implements [Delegate].
func (d DelegateFuncs) OnCancel() {
	if d.Cancel != nil {
		d.Cancel()
	}
}

// LoginForm is the email/password form of the login screen.
type LoginForm struct {
	*Form
	delegate Delegate
}

// NewLoginForm builds the login form with its email pattern rule and password
// length rule. delegate may be nil, in which case all actions are no-ops
// beyond the form's own state changes.
func NewLoginForm(delegate Delegate, log *logger.Logger) (*LoginForm, error) {
	v, err := validators.NewFormValidator(validators.LoginFieldDefinitions()...)
	if err != nil {
		return nil, err
	}

	l := &LoginForm{delegate: delegate}
	f, err := New(v, l.submit, log)
	if err != nil {
		return nil, err
	}
	l.Form = f

	return l, nil
}

// ForgotPassword is the forgot-password action. It has no precondition.
func (l *LoginForm) ForgotPassword() {
	if l.delegate != nil {
		l.delegate.OnForgotPassword()
	}
}

// Cancel is the cancel action. It has no precondition.
func (l *LoginForm) Cancel() {
	if l.delegate != nil {
		l.delegate.OnCancel()
	}
}

func (l *LoginForm) submit(values map[string]string) {
	if l.delegate == nil {
		return
	}

	creds := models.NewCredentials(values[validators.FieldEmail], values[validators.FieldPassword])
	l.delegate.OnSubmit(creds.Email, creds.Password)
}

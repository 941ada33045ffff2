// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-login-kit/internal/form"
	"github.com/MKhiriev/go-login-kit/internal/logger"
	"github.com/MKhiriev/go-login-kit/internal/service"
	"github.com/MKhiriev/go-login-kit/internal/validators"
)

// ResetModel asks the server to send password reset instructions. It has a
// single email field; on success it returns to the menu with a [ResetNotice].
type ResetModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form   *form.Form
	input  textinput.Model
	errMsg string

	pending tea.Cmd
	logger  *logger.Logger
}

func NewResetModel(ctx context.Context, auth service.ClientAuthService, log *logger.Logger) (*ResetModel, error) {
	if log == nil {
		log = logger.Nop()
	}
	m := &ResetModel{ctx: ctx, auth: auth, logger: log}

	v, err := validators.NewFormValidator(validators.ResetFieldDefinitions()...)
	if err != nil {
		return nil, err
	}
	f, err := form.New(v, m.submit, log)
	if err != nil {
		return nil, err
	}
	m.form = f

	m.input = textinput.New()
	m.input.Placeholder = "user@example.com"
	m.input.CharLimit = 254
	m.input.Width = 40
	m.input.Focus()

	return m, nil
}

func (m *ResetModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ResetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(ResetResult); ok {
		m.form.SetInProgress(false)
		if result.Err != nil {
			m.errMsg = humanizeServerError(result.Err)
			return m, nil
		}
		m.errMsg = ""
		return m, navigateCmd(pageMenu, ResetNotice{Email: result.Email})
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.errMsg = ""
			return m, navigateCmd(pageMenu, nil)
		case key.Matches(keyMsg, keys.enter):
			m.form.Return()
			cmd := m.pending
			m.pending = nil
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if _, err := m.form.Change(validators.FieldEmail, m.input.Value()); err != nil {
		m.logger.Error().Err(err).Msg("reset form change failed")
	}
	return m, cmd
}

func (m *ResetModel) View() string {
	var b strings.Builder
	b.WriteString("Enter the email of your account.\n\n")
	b.WriteString(padLabel(fieldLabels[validators.FieldEmail]))
	b.WriteString("│ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")
	b.WriteString(renderFieldError(m.form.ErrorMessage(validators.FieldEmail)))

	if m.form.InProgress() {
		b.WriteString("\n[Sending...]\n")
	} else {
		b.WriteString("\n[Send reset link]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("RESET PASSWORD", strings.TrimRight(b.String(), "\n"), "esc: back │ enter: send")
}

func (m *ResetModel) submit(values map[string]string) {
	email := strings.TrimSpace(values[validators.FieldEmail])
	ctx := m.ctx
	auth := m.auth

	m.errMsg = ""
	m.form.SetInProgress(true)
	m.pending = func() tea.Msg {
		return ResetResult{Email: email, Err: auth.RequestPasswordReset(ctx, email)}
	}
}

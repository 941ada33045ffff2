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
	"github.com/MKhiriev/go-login-kit/models"
)

var fieldLabels = map[string]string{
	validators.FieldEmail:    "Email",
	validators.FieldPassword: "Password",
}

// LoginModel is the Bubble Tea model for the login screen. It renders the
// email and password inputs of a [form.LoginForm] and acts as the form's
// delegate: a valid submission dispatches an async login command whose
// [LoginResult] is handled by [RootModel] to finish the flow.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form   *form.LoginForm
	inputs []textinput.Model
	errMsg string

	// pending is the command queued by a delegate callback during Update.
	pending tea.Cmd
	logger  *logger.Logger
}

// NewLoginModel creates a [LoginModel]. The email input receives focus
// immediately; the password input uses masked echo.
func NewLoginModel(ctx context.Context, auth service.ClientAuthService, log *logger.Logger) (*LoginModel, error) {
	if log == nil {
		log = logger.Nop()
	}
	m := &LoginModel{ctx: ctx, auth: auth, logger: log}

	f, err := form.NewLoginForm(m, log)
	if err != nil {
		return nil, err
	}
	m.form = f

	emailInput := textinput.New()
	emailInput.Placeholder = "user@example.com"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	m.inputs = []textinput.Model{emailInput, passwordInput}
	return m, nil
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult]: re-enables submission; on error, populates errMsg.
//   - esc: the cancel action.
//   - ctrl+r: the forgot-password action.
//   - tab / shift+tab: focus cycling.
//   - enter: the return action of the focused field.
//
// All other key events are forwarded to the focused input and then to the
// form as a change of that field.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.form.SetInProgress(false)
		m.errMsg = humanizeServerError(result.Err)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.errMsg = ""
			m.form.Cancel()
			return m, m.takePending()
		case key.Matches(keyMsg, keys.forgotPassword):
			m.form.ForgotPassword()
			return m, m.takePending()
		case key.Matches(keyMsg, keys.tab):
			m.form.FocusNext()
			m.syncFocus()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.FocusPrev()
			m.syncFocus()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.form.Return()
			m.syncFocus()
			return m, m.takePending()
		}
	}

	idx := m.form.FocusIndex()
	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	if _, err := m.form.Change(m.form.Focused(), m.inputs[idx].Value()); err != nil {
		m.logger.Error().Err(err).Msg("login form change failed")
	}
	return m, cmd
}

// View implements [tea.Model]. Renders the inputs with their visible
// validation messages, a submission indicator, and an optional server error.
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	for i, name := range m.form.Names() {
		b.WriteString(padLabel(fieldLabels[name]))
		b.WriteString("│ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
		b.WriteString(renderFieldError(m.form.ErrorMessage(name)))
	}

	if m.form.InProgress() {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ enter: next/confirm │ ctrl+r: forgot password")
}

// OnSubmit implements [form.Delegate]. It blocks further submissions until
// the login result arrives.
func (m *LoginModel) OnSubmit(email, password string) {
	m.errMsg = ""
	m.form.SetInProgress(true)
	m.pending = m.cmdLogin(email, password)
}

// OnForgotPassword implements [form.Delegate].
func (m *LoginModel) OnForgotPassword() {
	m.pending = navigateCmd(pageReset, nil)
}

// OnCancel implements [form.Delegate].
func (m *LoginModel) OnCancel() {
	m.pending = navigateCmd(pageMenu, nil)
}

func (m *LoginModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.Login(ctx, models.NewCredentials(email, password))
		return LoginResult{Session: session, Err: err}
	}
}

func (m *LoginModel) takePending() tea.Cmd {
	cmd := m.pending
	m.pending = nil
	return cmd
}

func (m *LoginModel) syncFocus() {
	for i := range m.inputs {
		if i == m.form.FocusIndex() {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func padLabel(label string) string {
	const width = 9
	if len(label) >= width {
		return label + " "
	}
	return label + strings.Repeat(" ", width-len(label))
}

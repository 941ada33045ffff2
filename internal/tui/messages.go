// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-login-kit/models"
)

// Page names registered in the router.
const (
	pageMenu  = "menu"
	pageLogin = "login"
	pageReset = "reset"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page as the next message instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the async login command.
type LoginResult struct {
	Session models.Session
	Err     error
}

// ResetResult is produced by the async password reset command.
type ResetResult struct {
	Email string
	Err   error
}

// ResetNotice tells the menu that reset instructions were requested.
type ResetNotice struct {
	Email string
}

func navigateCmd(page string, payload tea.Msg) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}

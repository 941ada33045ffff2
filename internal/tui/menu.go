// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuItem struct {
	title string
	hint  string
	page  string
}

// MenuModel is the start page. It lists the entry points of the flow and shows
// the notice left by the reset page.
type MenuModel struct {
	items  []menuItem
	idx    int
	status string
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []menuItem{
			{title: "Sign in", hint: "email and password", page: pageLogin},
			{title: "Forgot password", hint: "send a reset link", page: pageReset},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if notice, ok := msg.(ResetNotice); ok {
		m.status = "Password reset instructions were sent to " + notice.Email
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.idx = max(m.idx-1, 0)
	case key.Matches(keyMsg, keys.down):
		m.idx = min(m.idx+1, len(m.items)-1)
	case key.Matches(keyMsg, keys.enter):
		m.status = ""
		return m, navigateCmd(m.items[m.idx].page, nil)
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString(noticeStyle.Render("OK: " + m.status))
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		line := "  " + item.title
		if i == m.idx {
			line = selectedStyle.Render("> " + item.title)
		}
		b.WriteString(line)
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(item.hint))
		b.WriteString("\n")
	}

	return renderPage("MAIN MENU", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: version")
}

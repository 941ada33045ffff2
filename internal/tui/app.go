// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-login-kit/internal/logger"
	"github.com/MKhiriev/go-login-kit/models"
)

// RootModel routes messages between the pages of the login flow. It owns the
// global hotkeys (ctrl+c, the build info window on the menu), switches pages
// on [NavigateTo] and ends the program once a [LoginResult] succeeds. Failed
// login and reset results go to the page that sent the request, even after
// the user left it. Every other message goes to the active page.
type RootModel struct {
	pages map[string]tea.Model
	page  string

	quitByUser    bool
	session       models.Session
	buildInfo     models.AppBuildInfo
	showBuildInfo bool

	logger *logger.Logger
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo, log *logger.Logger) RootModel {
	if log == nil {
		log = logger.Nop()
	}
	return RootModel{
		pages:     pages,
		page:      startPage,
		buildInfo: buildInfo,
		logger:    log,
	}
}

func (r RootModel) Init() tea.Cmd {
	if current := r.current(); current != nil {
		return current.Init()
	}
	return nil
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := r.handleGlobalKey(msg); handled {
			return r, cmd
		}
	case NavigateTo:
		return r.navigate(msg)
	case LoginResult:
		if msg.Err == nil {
			r.session = msg.Session
			return r, tea.Quit
		}
		return r.deliver(pageLogin, msg)
	case ResetResult:
		return r.deliverReset(msg)
	}

	current := r.current()
	if current == nil {
		return r, nil
	}

	updated, cmd := current.Update(msg)
	r.pages[r.page] = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if current := r.current(); current != nil {
		return current.View()
	}
	return renderPage("TUI", "", "")
}

// handleGlobalKey reports whether the key was consumed by the router.
func (r *RootModel) handleGlobalKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		r.quitByUser = true
		return true, tea.Quit
	case key.Matches(msg, keys.buildInfo) && r.page == pageMenu:
		r.showBuildInfo = !r.showBuildInfo
		return true, nil
	case key.Matches(msg, keys.esc) && r.showBuildInfo:
		r.showBuildInfo = false
		return true, nil
	}

	// the build info window swallows everything else
	return r.showBuildInfo, nil
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		r.logger.Warn().Str("page", nav.Page).Msg("navigation to unknown page")
		return r, nil
	}

	r.logger.Debug().Str("from", r.page).Str("to", nav.Page).Msg("page change")
	r.showBuildInfo = false
	r.page = nav.Page

	if nav.Payload != nil {
		payload := nav.Payload
		return r, func() tea.Msg { return payload }
	}
	return r, next.Init()
}

// deliver hands msg to the named page whether or not it is showing.
func (r RootModel) deliver(page string, msg tea.Msg) (RootModel, tea.Cmd) {
	target, ok := r.pages[page]
	if !ok {
		return r, nil
	}

	updated, cmd := target.Update(msg)
	r.pages[page] = updated
	return r, cmd
}

func (r RootModel) deliverReset(msg ResetResult) (tea.Model, tea.Cmd) {
	r, cmd := r.deliver(pageReset, msg)
	if r.page == pageReset {
		return r, cmd
	}

	// user already left the reset page
	if msg.Err == nil {
		r, _ = r.deliver(pageMenu, ResetNotice{Email: msg.Email})
	}
	return r, nil
}

func (r RootModel) current() tea.Model {
	return r.pages[r.page]
}

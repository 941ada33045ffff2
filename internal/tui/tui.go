// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-login-kit/internal/logger"
	"github.com/MKhiriev/go-login-kit/internal/service"
	"github.com/MKhiriev/go-login-kit/models"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: log}, nil
}

// pages builds the router pages of the login flow.
func (t *TUI) pages(ctx context.Context) (map[string]tea.Model, error) {
	login, err := NewLoginModel(ctx, t.services.AuthService, t.logger)
	if err != nil {
		return nil, err
	}
	reset, err := NewResetModel(ctx, t.services.AuthService, t.logger)
	if err != nil {
		return nil, err
	}

	return map[string]tea.Model{
		pageMenu:  NewMenuModel(),
		pageLogin: login,
		pageReset: reset,
	}, nil
}

// LoginFlow runs the terminal UI until the user signs in or quits. It returns
// [ErrUserQuit] when the user leaves without signing in.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	pages, err := t.pages(ctx)
	if err != nil {
		return models.Session{}, err
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo, t.logger)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return models.Session{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Session{}, ErrUserQuit
	}

	return result.session, nil
}

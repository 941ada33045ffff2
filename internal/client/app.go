// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-login-kit/internal/logger"
	"github.com/MKhiriev/go-login-kit/internal/tui"
)

type App struct {
	ui     LoginUI
	out    io.Writer
	logger *logger.Logger
}

func NewApp(ui LoginUI, out io.Writer, log *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("login ui is required")
	}
	if out == nil {
		out = os.Stdout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &App{ui: ui, out: out, logger: log}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	session, err := a.ui.LoginFlow(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Msg("user left without signing in")
			return nil
		}
		return fmt.Errorf("login flow: %w", err)
	}

	a.logger.Info().Int64("user_id", session.UserID).Msg("login flow finished")

	if _, err = fmt.Fprintf(a.out, "Signed in as %s (user %d)\n", session.Email, session.UserID); err != nil {
		return err
	}
	if !session.ExpiresAt.IsZero() {
		_, err = fmt.Fprintf(a.out, "Session expires at %s\n", session.ExpiresAt.Local().Format("2006-01-02 15:04:05"))
	}
	return err
}

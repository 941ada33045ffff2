// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-login-kit/internal/adapter"
	"github.com/MKhiriev/go-login-kit/internal/client"
	"github.com/MKhiriev/go-login-kit/internal/config"
	"github.com/MKhiriev/go-login-kit/internal/logger"
	"github.com/MKhiriev/go-login-kit/internal/service"
	"github.com/MKhiriev/go-login-kit/internal/tui"
	"github.com/MKhiriev/go-login-kit/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("go-login-client", cfg.Log.File, cfg.Log.Level)
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("client started")

	authAdapter, err := adapter.NewHTTPAuthAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create auth adapter")
	}

	services := service.NewClientServices(authAdapter, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

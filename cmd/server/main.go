// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"

	"github.com/MKhiriev/pro-directory/internal/config"
	"github.com/MKhiriev/pro-directory/internal/crypto"
	"github.com/MKhiriev/pro-directory/internal/handler"
	"github.com/MKhiriev/pro-directory/internal/logger"
	"github.com/MKhiriev/pro-directory/internal/mailer"
	"github.com/MKhiriev/pro-directory/internal/server"
	"github.com/MKhiriev/pro-directory/internal/service"
	"github.com/MKhiriev/pro-directory/internal/store"
	"github.com/MKhiriev/pro-directory/internal/validators"
	"github.com/MKhiriev/pro-directory/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("pro-directory-server")
	logBuildInfo(log)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	credentials, err := crypto.NewCredentialService(cfg.App.PasswordHashCost)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating credential service")
	}

	mailWorker := workers.NewMailWorker(mailer.NewSender(cfg.Mailer, log), cfg.Workers, log)
	backgroundWorkers := workers.NewWorkers(mailWorker)
	backgroundWorkers.Run(ctx)

	services := service.NewServices(store.NewRepositories(db, log), credentials, mailWorker, *cfg, log)

	handlers, err := handler.NewHandlers(services, validators.NewRequestValidator(), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()

	// let queued verification mails go out before exiting
	cancel()
	backgroundWorkers.Wait()
}

func logBuildInfo(log *logger.Logger) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	log.Info().
		Str("build_version", buildVersion).
		Str("build_date", buildDate).
		Str("build_commit", buildCommit).
		Msg("starting")
}

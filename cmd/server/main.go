// main.go
//
// guardroster: guard, inspection and exercise records service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of guardroster.
// guardroster is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// guardroster is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with guardroster.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/localnerve/guardroster/internal/config"
	"github.com/localnerve/guardroster/internal/logging"
	"github.com/localnerve/guardroster/internal/observability"
	"github.com/localnerve/guardroster/internal/server"
	"github.com/localnerve/guardroster/internal/services"
	"github.com/localnerve/guardroster/internal/store"
)

// @title Guardroster API
// @version 1.0.0
// @description Guard, inspection and exercise records over a tRPC style RPC surface
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/guardroster
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logs, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logs.Closer()
	logger := logs.Sugar

	flush, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, cfg.Release)
	if err != nil {
		logger.Warnw("Sentry disabled", "error", err)
	}
	defer flush()

	ctx := context.Background()

	repo, err := store.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatalw("Failed to open store", "backend", cfg.StoreBackend, "error", err)
	}
	defer repo.Close()

	auth, err := services.NewAuthService(ctx, repo, cfg.Auth, logger)
	if err != nil {
		logger.Fatalw("Failed to load credential", "error", err)
	}

	app := server.New(server.Deps{
		Config:    cfg,
		Log:       logger,
		Repo:      repo,
		Auth:      auth,
		Metrics:   true,
		AccessLog: true,
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	logger.Infow("Starting server", "port", cfg.Port, "store", cfg.StoreBackend)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatalw("Failed to start server", "error", err)
	}

	logger.Info("Server stopped")
}

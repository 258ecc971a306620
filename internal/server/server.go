// server.go
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

package server

import (
	"strings"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/localnerve/guardroster/internal/config"
	"github.com/localnerve/guardroster/internal/handlers"
	"github.com/localnerve/guardroster/internal/middleware"
	"github.com/localnerve/guardroster/internal/services"
	"github.com/localnerve/guardroster/internal/store"
	"github.com/localnerve/guardroster/internal/utils"
	"go.uber.org/zap"

	_ "github.com/localnerve/guardroster/docs/api" // Swagger docs
)

// Deps are the long lived collaborators of the HTTP app
type Deps struct {
	Config *config.Config
	Log    *zap.SugaredLogger
	Repo   store.Repository
	Auth   *services.AuthService

	// Metrics registers the Prometheus HTTP collectors, which can only happen once per process
	Metrics bool
	// AccessLog enables the Fiber request logger
	AccessLog bool
}

// New builds the Fiber app with every route mounted
func New(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "guardroster",
		ErrorHandler: handlers.ErrorHandler(deps.Log),
	})

	// Global middleware
	app.Use(recover.New())
	if deps.AccessLog {
		app.Use(logger.New())
	}
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  strings.Join(deps.Config.AllowedOrigins(), ","),
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, " + middleware.HeaderAPIVersion,
		ExposeHeaders: middleware.HeaderAPIVersion,
	}))

	if deps.Metrics {
		prometheus := fiberprometheus.New("guardroster")
		prometheus.RegisterAt(app, "/metrics")
		app.Use(prometheus.Middleware)
	}

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		result := services.HealthCheck(c.UserContext(), deps.Config, deps.Repo, deps.Log)
		status := fiber.StatusOK
		if result.Status != "healthy" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(result)
	})

	// API routes under /api
	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())

	trpc := api.Group("/trpc")
	authHandler := &handlers.AuthHandler{Auth: deps.Auth}
	guardHandler := &handlers.GuardHandler{Repo: deps.Repo}
	inspectionHandler := &handlers.InspectionHandler{Repo: deps.Repo}
	exerciseHandler := &handlers.ExerciseHandler{Repo: deps.Repo}

	var procedures []handlers.Procedure
	procedures = append(procedures, authHandler.Procedures()...)
	procedures = append(procedures, guardHandler.Procedures()...)
	procedures = append(procedures, inspectionHandler.Procedures()...)
	procedures = append(procedures, exerciseHandler.Procedures()...)
	handlers.Mount(trpc, deps.Auth, procedures)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return utils.NotFoundResponse(c, "[404] Resource Not Found")
	})

	return app
}

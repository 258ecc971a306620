// containers.go
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

// Package testutil starts the database and redis containers used by the
// store integration tests and by cmd/testcontainers.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/localnerve/guardroster/internal/config"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Options selects images and credentials for the containers
type Options struct {
	DBType       string // mariadb, mysql or postgres
	DBImage      string
	RedisImage   string
	Database     string
	User         string
	Password     string
	RootPassword string
}

// OptionsFromEnv reads DB_TYPE, DB_IMAGE, REDIS_IMAGE, DB_DATABASE, DB_USER,
// DB_PASSWORD and DB_ROOT_PASSWORD with local defaults
func OptionsFromEnv() Options {
	opts := Options{
		DBType:       envOr("DB_TYPE", "mariadb"),
		RedisImage:   envOr("REDIS_IMAGE", "redis:7-alpine"),
		Database:     envOr("DB_DATABASE", "guardroster"),
		User:         envOr("DB_USER", "guardroster"),
		Password:     envOr("DB_PASSWORD", "guardroster"),
		RootPassword: envOr("DB_ROOT_PASSWORD", "rootpass"),
	}
	if opts.DBType == "postgres" {
		opts.DBImage = envOr("DB_IMAGE", "postgres:17-alpine")
	} else {
		opts.DBImage = envOr("DB_IMAGE", "mariadb:11")
	}
	return opts
}

// Containers holds the running containers and how to reach them
type Containers struct {
	DB        testcontainers.Container
	Redis     testcontainers.Container
	DBConfig  config.Config
	RedisAddr string
}

// Logf receives progress messages, t.Logf or log.Printf
type Logf func(format string, args ...any)

// Start runs the database and redis containers and waits for both to accept connections
func Start(ctx context.Context, opts Options, logf Logf) (*Containers, error) {
	tc := &Containers{}

	if err := tc.startDB(ctx, opts, logf); err != nil {
		tc.Terminate(ctx, logf)
		return nil, err
	}
	if err := tc.startRedis(ctx, opts, logf); err != nil {
		tc.Terminate(ctx, logf)
		return nil, err
	}

	logf("DB_TYPE=%s DB_HOST=%s DB_PORT=%s", tc.DBConfig.DBType, tc.DBConfig.DBHost, tc.DBConfig.DBPort)
	logf("REDIS_ADDR=%s", tc.RedisAddr)
	return tc, nil
}

// Terminate stops whatever was started
func (tc *Containers) Terminate(ctx context.Context, logf Logf) {
	if tc.Redis != nil {
		if err := tc.Redis.Terminate(ctx); err != nil {
			logf("Failed to terminate redis: %v", err)
		}
	}
	if tc.DB != nil {
		if err := tc.DB.Terminate(ctx); err != nil {
			logf("Failed to terminate database: %v", err)
		}
	}
}

func (tc *Containers) startDB(ctx context.Context, opts Options, logf Logf) error {
	port := nat.Port("3306/tcp")
	env := map[string]string{
		"MARIADB_ROOT_PASSWORD": opts.RootPassword,
		"MYSQL_ROOT_PASSWORD":   opts.RootPassword,
		"MYSQL_DATABASE":        opts.Database,
		"MYSQL_USER":            opts.User,
		"MYSQL_PASSWORD":        opts.Password,
	}
	var waitFor wait.Strategy = wait.ForListeningPort(port).WithStartupTimeout(90 * time.Second)
	if opts.DBType == "postgres" {
		port = nat.Port("5432/tcp")
		env = map[string]string{
			"POSTGRES_DB":       opts.Database,
			"POSTGRES_USER":     opts.User,
			"POSTGRES_PASSWORD": opts.Password,
		}
		waitFor = wait.ForAll(
			wait.ForListeningPort(port),
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		).WithDeadline(90 * time.Second)
	}

	logImage(ctx, opts.DBImage, logf)
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        opts.DBImage,
			ExposedPorts: []string{string(port)},
			Env:          env,
			WaitingFor:   waitFor,
		},
		Started: true,
	})
	if err != nil {
		return fmt.Errorf("failed to start database: %w", err)
	}
	tc.DB = c

	host, err := c.Host(ctx)
	if err != nil {
		return fmt.Errorf("failed to get database host: %w", err)
	}
	mapped, err := c.MappedPort(ctx, port)
	if err != nil {
		return fmt.Errorf("failed to get database port: %w", err)
	}

	tc.DBConfig = config.Config{
		StoreBackend:      config.BackendSQL,
		DBType:            opts.DBType,
		DBHost:            host,
		DBPort:            mapped.Port(),
		DBDatabase:        opts.Database,
		DBUser:            opts.User,
		DBPassword:        opts.Password,
		DBConnectionLimit: 5,
		Env:               "prod",
	}

	if opts.DBType != "postgres" {
		return waitForMySQL(ctx, &tc.DBConfig)
	}
	return nil
}

// waitForMySQL pings until the server accepts the application user.
// The listening port opens before the init scripts have created it.
func waitForMySQL(ctx context.Context, cfg *config.Config) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBDatabase)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database for readiness check: %w", err)
	}
	defer db.Close()

	for i := 0; i < 30; i++ {
		if err = db.PingContext(ctx); err == nil {
			return nil
		}
		time.Sleep(time.Second)
	}
	return fmt.Errorf("database not ready after 30 seconds: %w", err)
}

func (tc *Containers) startRedis(ctx context.Context, opts Options, logf Logf) error {
	port := nat.Port("6379/tcp")

	logImage(ctx, opts.RedisImage, logf)
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        opts.RedisImage,
			ExposedPorts: []string{string(port)},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return fmt.Errorf("failed to start redis: %w", err)
	}
	tc.Redis = c

	host, err := c.Host(ctx)
	if err != nil {
		return fmt.Errorf("failed to get redis host: %w", err)
	}
	mapped, err := c.MappedPort(ctx, port)
	if err != nil {
		return fmt.Errorf("failed to get redis port: %w", err)
	}
	tc.RedisAddr = fmt.Sprintf("%s:%s", host, mapped.Port())
	return nil
}

func logImage(ctx context.Context, name string, logf Logf) {
	exists, err := imageExists(ctx, name)
	switch {
	case err != nil:
		logf("Could not list local images: %v", err)
	case exists:
		logf("Image %s exists, reusing...", name)
	default:
		logf("Image %s does not exist, pulling...", name)
	}
}

func imageExists(ctx context.Context, imageName string) (bool, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return false, err
	}
	defer cli.Close()

	images, err := cli.ImageList(ctx, image.ListOptions{})
	if err != nil {
		return false, err
	}

	for _, img := range images {
		for _, tag := range img.RepoTags {
			if tag == imageName {
				return true, nil
			}
		}
	}
	return false, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Package store persists guards, inspections, exercises and the shared
// credential. Backends are chosen once at startup and hidden behind Repository.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/localnerve/guardroster/internal/config"
	"github.com/localnerve/guardroster/internal/models"
	"github.com/localnerve/guardroster/internal/types"
	"go.uber.org/zap"
)

// ErrUnauthorized is returned by VerifyCredential on any mismatch
var ErrUnauthorized = types.ErrUnauthorized

// Repository is the storage contract shared by every backend.
// Deleting an id that does not exist is not an error.
type Repository interface {
	ListGuards(ctx context.Context) ([]models.Guard, error)
	AddGuard(ctx context.Context, g models.Guard) (models.Guard, error)
	DeleteGuard(ctx context.Context, guardID string) error

	ListInspections(ctx context.Context) ([]models.Inspection, error)
	AddInspection(ctx context.Context, i models.Inspection) (models.Inspection, error)
	DeleteInspection(ctx context.Context, inspectionID string) error

	ListExercises(ctx context.Context) ([]models.Exercise, error)
	AddExercise(ctx context.Context, e models.Exercise) (models.Exercise, error)
	DeleteExercise(ctx context.Context, exerciseID string) error

	SeedCredential(ctx context.Context, u models.User) (models.User, error)
	VerifyCredential(ctx context.Context, username, password string) (string, error)

	Ping(ctx context.Context) error
	Close() error
}

// Open creates the repository selected by cfg.StoreBackend
func Open(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (Repository, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		return NewMemory(), nil
	case config.BackendSQL:
		return OpenSQL(cfg, log)
	case config.BackendRedis:
		return OpenRedis(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", cfg.StoreBackend)
	}
}

// newID returns a time-ordered unique id
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// now is truncated to milliseconds so stored and returned times compare equal on every backend
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func verify(u models.User, found bool, username, password string) (string, error) {
	if !found || u.Username != username || !u.CheckPassword(password) {
		return "", ErrUnauthorized
	}
	return u.Token, nil
}

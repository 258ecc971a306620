package services

import (
	"context"
	"fmt"

	"github.com/localnerve/guardroster/internal/config"
	"github.com/localnerve/guardroster/internal/store"
	"go.uber.org/zap"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Store        string            `json:"store"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthCheck pings the configured store
func HealthCheck(ctx context.Context, cfg *config.Config, repo store.Repository, log *zap.SugaredLogger) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: map[string]string{"store_backend": cfg.StoreBackend},
	}

	if err := repo.Ping(ctx); err != nil {
		result.Status = "unhealthy"
		result.Store = "unreachable"
		result.Details["store_ping_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Store ping failed: %v", err)
		if log != nil {
			log.Warnw("Health check failed - store ping", "error", err)
		}
		return result
	}

	result.Store = "ok"
	if cfg.StoreBackend == config.BackendSQL {
		result.Details["database_type"] = cfg.DBType
	}
	return result
}

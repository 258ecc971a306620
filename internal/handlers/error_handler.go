package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/guardroster/internal/observability"
	"github.com/localnerve/guardroster/internal/types"
	"github.com/localnerve/guardroster/internal/utils"
	"go.uber.org/zap"
)

// ErrorHandler renders every failure in the JSON error envelope.
// Unexpected errors are logged and reported, and their detail is not sent to the caller.
func ErrorHandler(log *zap.SugaredLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var ce *types.CustomError
		if errors.As(err, &ce) {
			return utils.ErrorResponse(c, ce.Message, ce.Code, ce.Type)
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			if fe.Code == fiber.StatusNotFound {
				return utils.NotFoundResponse(c, "[404] Resource Not Found")
			}
			return utils.ErrorResponse(c, fe.Message, fe.Code, "rpc.http")
		}

		if log != nil {
			log.Errorw("Request failed", "url", c.OriginalURL(), "error", err)
		}
		observability.CaptureErr(err)

		return utils.ErrorResponse(c, "Internal server error", fiber.StatusInternalServerError, types.TypeInternal)
	}
}

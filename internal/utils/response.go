package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// ResultResponse sends a procedure result in the RPC envelope
func ResultResponse(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(ResultEnvelope{Result: ResultData{Data: data}})
}

// ErrorResponse sends a standard error response
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return c.Status(status).JSON(ErrorResponseStruct{
		Status:    status,
		Message:   message,
		Ok:        false,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		URL:       c.OriginalURL(),
		Type:      errorType,
	})
}

// NotFoundResponse sends a 404 not found response
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, message, fiber.StatusNotFound, "rpc.not_found")
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Ok        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
	Type      string `json:"type,omitempty"`
}

// ResultEnvelope defines the schema for procedure results
type ResultEnvelope struct {
	Result ResultData `json:"result"`
}

// ResultData holds the procedure output
type ResultData struct {
	Data interface{} `json:"data"`
}

// SuccessOutput is returned by delete mutations
type SuccessOutput struct {
	Success bool `json:"success"`
}

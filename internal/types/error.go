package types

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error taxonomy surfaced to RPC callers.
var (
	ErrValidation         = errors.New("validation error")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Error types rendered in the response envelope
const (
	TypeValidation         = "rpc.validation"
	TypeUnauthorized       = "rpc.unauthorized"
	TypeInvalidCredentials = "auth.invalid_credentials"
	TypeInternal           = "rpc.internal"
)

type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
	Err     error  `json:"-"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError rejects malformed input before any side effect
func NewValidationError(message string) *CustomError {
	return &CustomError{
		Code:    fiber.StatusBadRequest,
		Message: message,
		Type:    TypeValidation,
		Err:     ErrValidation,
	}
}

// NewUnauthorizedError rejects a missing or unknown bearer token
func NewUnauthorizedError(message string) *CustomError {
	return &CustomError{
		Code:    fiber.StatusUnauthorized,
		Message: message,
		Type:    TypeUnauthorized,
		Err:     ErrUnauthorized,
	}
}

// NewInvalidCredentialsError rejects a login mismatch
func NewInvalidCredentialsError() *CustomError {
	return &CustomError{
		Code:    fiber.StatusUnauthorized,
		Message: "Invalid credentials",
		Type:    TypeInvalidCredentials,
		Err:     ErrInvalidCredentials,
	}
}

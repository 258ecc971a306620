package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/guardroster/internal/types"
	"golang.org/x/mod/semver"
)

// HeaderAPIVersion carries the client's API version
const HeaderAPIVersion = "X-Api-Version"

// SupportedAPIMajor is the only API major version served
const SupportedAPIMajor = "v1"

// VersionMiddleware parses the X-Api-Version header, stores it in context
// and echoes it on the response
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := c.Get(HeaderAPIVersion, "1.0.0")

		// Support version aliases
		if version == "1" || version == "1.0" {
			version = "1.0.0"
		}

		canonical := "v" + version
		if !semver.IsValid(canonical) {
			return types.NewValidationError(fmt.Sprintf("Invalid API version %q", version))
		}
		if semver.Major(canonical) != SupportedAPIMajor {
			return types.NewValidationError(fmt.Sprintf("Unsupported API version %q", version))
		}

		c.Locals("apiVersion", version)
		c.Set(HeaderAPIVersion, version)

		return c.Next()
	}
}

// auth.go
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

package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/guardroster/internal/types"
)

// LocalUserID is the Locals key holding the authenticated user id
const LocalUserID = "userId"

// Authenticator resolves a bearer token to a user id
type Authenticator interface {
	Authenticate(token string) (string, bool)
}

// BearerToken reads the Authorization header. Both "Bearer <token>" and a
// bare token are accepted.
func BearerToken(c *fiber.Ctx) string {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}

// Auth rejects requests that do not carry the session token
func Auth(auth Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := BearerToken(c)
		if token == "" {
			return types.NewUnauthorizedError("Missing authorization token")
		}

		userID, ok := auth.Authenticate(token)
		if !ok {
			return types.NewUnauthorizedError("Invalid authorization token")
		}

		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

package middleware

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/guardroster/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticAuth struct{ token string }

func (s staticAuth) Authenticate(token string) (string, bool) {
	if token == s.token {
		return "admin", true
	}
	return "", false
}

func newApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var ce *types.CustomError
			if errors.As(err, &ce) {
				return c.Status(ce.Code).SendString(ce.Type)
			}
			return c.SendStatus(fiber.StatusInternalServerError)
		},
	})
	handlers = append(handlers, func(c *fiber.Ctx) error {
		user, _ := c.Locals(LocalUserID).(string)
		return c.SendString(user)
	})
	app.Get("/", handlers...)
	return app
}

func do(t *testing.T, app *fiber.App, headers map[string]string) (int, string, string) {
	t.Helper()
	req := httptest.NewRequest("GET", "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body), resp.Header.Get(HeaderAPIVersion)
}

func TestAuth(t *testing.T) {
	app := newApp(Auth(staticAuth{token: "secret"}))

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"bearer", "Bearer secret", 200, "admin"},
		{"lowercase bearer", "bearer secret", 200, "admin"},
		{"raw token", "secret", 200, "admin"},
		{"missing", "", 401, types.TypeUnauthorized},
		{"wrong", "Bearer nope", 401, types.TypeUnauthorized},
		{"empty bearer", "Bearer ", 401, types.TypeUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.header != "" {
				headers["Authorization"] = tt.header
			}
			status, body, _ := do(t, app, headers)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.body, body)
		})
	}
}

func TestVersionMiddleware(t *testing.T) {
	app := newApp(VersionMiddleware())

	status, _, echoed := do(t, app, nil)
	assert.Equal(t, 200, status)
	assert.Equal(t, "1.0.0", echoed)

	status, _, echoed = do(t, app, map[string]string{HeaderAPIVersion: "1.0"})
	assert.Equal(t, 200, status)
	assert.Equal(t, "1.0.0", echoed)

	status, _, echoed = do(t, app, map[string]string{HeaderAPIVersion: "1.4.2"})
	assert.Equal(t, 200, status)
	assert.Equal(t, "1.4.2", echoed)

	status, body, _ := do(t, app, map[string]string{HeaderAPIVersion: "2.0.0"})
	assert.Equal(t, 400, status)
	assert.Equal(t, types.TypeValidation, body)

	status, _, _ = do(t, app, map[string]string{HeaderAPIVersion: "latest"})
	assert.Equal(t, 400, status)
}

package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/guardroster/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenAuth string

func (a tokenAuth) Authenticate(token string) (string, bool) {
	return "admin", token == string(a)
}

func newRPCApp(procedures []Procedure) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(nil)})
	Mount(app.Group("/trpc"), tokenAuth("secret"), procedures)
	return app
}

func echo(c *fiber.Ctx) error {
	in, err := bindInput[DeleteGuardInput](c)
	if err != nil {
		return err
	}
	return c.SendString(in.GuardID)
}

func TestMount_KindsAndProtection(t *testing.T) {
	app := newRPCApp([]Procedure{
		{Path: "open.get", Kind: Query, Handler: func(c *fiber.Ctx) error { return c.SendString("ok") }},
		{Path: "closed.set", Kind: Mutation, Protected: true, Handler: echo},
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/trpc/open.get", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/trpc/open.get", nil))
	require.NoError(t, err)
	assert.Equal(t, 405, resp.StatusCode)

	req := httptest.NewRequest("POST", "/trpc/closed.set", bytes.NewBufferString(`{"guardId":"g1"}`))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	req = httptest.NewRequest("POST", "/trpc/closed.set", bytes.NewBufferString(`{"guardId":"g1"}`))
	req.Header.Set("Authorization", "Bearer secret")
	resp, err = app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "g1", string(body))
}

func TestBindInput(t *testing.T) {
	app := newRPCApp([]Procedure{{Path: "x.set", Kind: Mutation, Handler: echo}})

	tests := []struct {
		name   string
		body   string
		status int
		want   string
	}{
		{"plain", `{"guardId":"g1"}`, 200, "g1"},
		{"superjson", `{"json":{"guardId":"g2"}}`, 200, "g2"},
		{"extra fields ignored", `{"guardId":"g3","score":9}`, 200, "g3"},
		{"missing field", `{}`, 400, ""},
		{"empty body", ``, 400, ""},
		{"malformed", `{"guardId":`, 400, ""},
		{"wrong type", `{"guardId":7}`, 400, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("POST", "/trpc/x.set", bytes.NewBufferString(tt.body)))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.status == 200 {
				body, _ := io.ReadAll(resp.Body)
				assert.Equal(t, tt.want, string(body))
			}
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	err := validate.Struct(LoginInput{Username: "u"})
	require.Error(t, err)

	ce := validationError(err)
	assert.True(t, errors.Is(ce, types.ErrValidation))
	assert.Equal(t, "Invalid input: password failed on 'required'", ce.Message)
}

func TestErrorHandler_Internal(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(nil)})
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("disk on fire") })

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, 500, resp.StatusCode)
	assert.Contains(t, string(body), types.TypeInternal)
	assert.NotContains(t, string(body), "disk on fire")
}

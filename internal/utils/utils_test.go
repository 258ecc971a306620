package utils

import (
	"encoding/json"
	"io"
	"net"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultResponse(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return ResultResponse(c, SuccessOutput{Success: true})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `{"result":{"data":{"success":true}}}`, string(body))
}

func TestErrorResponse(t *testing.T) {
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return ErrorResponse(c, "nope", 401, "rpc.unauthorized")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/x?a=1", nil))
	require.NoError(t, err)
	var out ErrorResponseStruct
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 401, out.Status)
	assert.False(t, out.Ok)
	assert.Equal(t, "/x?a=1", out.URL)
	assert.Equal(t, "rpc.unauthorized", out.Type)
	assert.NotEmpty(t, out.Timestamp)
}

func TestPingService(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	assert.NoError(t, PingService("http://"+addr, 0))

	ln.Close()
	assert.Error(t, PingService("http://"+addr, 0))
	assert.Error(t, PingService("://bad", 0))
}

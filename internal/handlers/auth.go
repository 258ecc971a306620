package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/guardroster/internal/middleware"
	"github.com/localnerve/guardroster/internal/services"
	"github.com/localnerve/guardroster/internal/utils"
)

// Authority is what the auth procedures need from the credential owner
type Authority interface {
	middleware.Authenticator
	Login(ctx context.Context, username, password string) (services.LoginResult, error)
}

// AuthHandler serves the auth procedures
type AuthHandler struct {
	Auth Authority
}

// LoginInput is the auth.login input
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /api/trpc/auth.login
// @Summary Log in
// @Description Exchange the shared username and password for the session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param input body LoginInput true "Credential"
// @Success 200 {object} utils.ResultEnvelope{result=utils.ResultData{data=services.LoginResult}}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /trpc/auth.login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	in, err := bindInput[LoginInput](c)
	if err != nil {
		return err
	}

	res, err := h.Auth.Login(c.UserContext(), in.Username, in.Password)
	if err != nil {
		return err
	}

	return utils.ResultResponse(c, res)
}

// Check handles GET /api/trpc/auth.check
// @Summary Check session
// @Description Report whether the bearer token is the session token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.ResultEnvelope{result=utils.ResultData{data=services.CheckResult}}
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /trpc/auth.check [get]
func (h *AuthHandler) Check(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.LocalUserID).(string)
	return utils.ResultResponse(c, services.CheckResult{
		IsAuthenticated: userID != "",
		UserID:          userID,
	})
}

// Procedures lists the auth procedures
func (h *AuthHandler) Procedures() []Procedure {
	return []Procedure{
		{Path: "auth.login", Kind: Mutation, Protected: false, Handler: h.Login},
		{Path: "auth.check", Kind: Query, Protected: true, Handler: h.Check},
	}
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/guardroster/internal/metrics"
	"github.com/localnerve/guardroster/internal/models"
	"github.com/localnerve/guardroster/internal/store"
	"github.com/localnerve/guardroster/internal/utils"
)

// GuardHandler serves the guards procedures
type GuardHandler struct {
	Repo store.Repository
}

// AddGuardInput is the guards.add input. Identity and phone formats are checked by callers.
type AddGuardInput struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	IDNumber  string `json:"idNumber" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
}

// DeleteGuardInput is the guards.delete input
type DeleteGuardInput struct {
	GuardID string `json:"guardId" validate:"required"`
}

// GetAll handles GET /api/trpc/guards.getAll
// @Summary List guards
// @Tags Guards
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.ResultEnvelope{result=utils.ResultData{data=[]models.Guard}}
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /trpc/guards.getAll [get]
func (h *GuardHandler) GetAll(c *fiber.Ctx) error {
	guards, err := h.Repo.ListGuards(c.UserContext())
	if err != nil {
		return err
	}
	return utils.ResultResponse(c, guards)
}

// Add handles POST /api/trpc/guards.add
// @Summary Add a guard
// @Tags Guards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body AddGuardInput true "Guard"
// @Success 200 {object} utils.ResultEnvelope{result=utils.ResultData{data=models.Guard}}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /trpc/guards.add [post]
func (h *GuardHandler) Add(c *fiber.Ctx) error {
	in, err := bindInput[AddGuardInput](c)
	if err != nil {
		return err
	}

	guard, err := h.Repo.AddGuard(c.UserContext(), models.Guard{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		IDNumber:  in.IDNumber,
		Phone:     in.Phone,
	})
	if err != nil {
		return err
	}

	metrics.Created(metrics.ResourceGuards)
	return utils.ResultResponse(c, guard)
}

// Delete handles POST /api/trpc/guards.delete
// @Summary Delete a guard
// @Description Deletes the guard with all its inspections and exercises. A missing id succeeds.
// @Tags Guards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body DeleteGuardInput true "Guard id"
// @Success 200 {object} utils.ResultEnvelope{result=utils.ResultData{data=utils.SuccessOutput}}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /trpc/guards.delete [post]
func (h *GuardHandler) Delete(c *fiber.Ctx) error {
	in, err := bindInput[DeleteGuardInput](c)
	if err != nil {
		return err
	}

	if err := h.Repo.DeleteGuard(c.UserContext(), in.GuardID); err != nil {
		return err
	}

	metrics.Deleted(metrics.ResourceGuards)
	return utils.ResultResponse(c, utils.SuccessOutput{Success: true})
}

// Procedures lists the guards procedures
func (h *GuardHandler) Procedures() []Procedure {
	return []Procedure{
		{Path: "guards.getAll", Kind: Query, Protected: true, Handler: h.GetAll},
		{Path: "guards.add", Kind: Mutation, Protected: true, Handler: h.Add},
		{Path: "guards.delete", Kind: Mutation, Protected: true, Handler: h.Delete},
	}
}

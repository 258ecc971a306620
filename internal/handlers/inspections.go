package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/guardroster/internal/metrics"
	"github.com/localnerve/guardroster/internal/models"
	"github.com/localnerve/guardroster/internal/store"
	"github.com/localnerve/guardroster/internal/utils"
)

// InspectionHandler serves the inspections procedures
type InspectionHandler struct {
	Repo store.Repository
}

// ProcedureTestInput is one rated procedure check
type ProcedureTestInput struct {
	Procedure string             `json:"procedure" validate:"required"`
	Rating    models.RatingValue `json:"rating" validate:"rating"`
}

// AddInspectionInput is the inspections.add input: every Inspection field except id and date
type AddInspectionInput struct {
	GuardID       string `json:"guardId" validate:"required"`
	InspectorName string `json:"inspectorName" validate:"required"`

	UniformComplete models.RatingValue `json:"uniformComplete" validate:"rating"`
	GuardBadgeValid models.RatingValue `json:"guardBadgeValid" validate:"rating"`
	PersonalWeapon  models.RatingValue `json:"personalWeapon" validate:"rating"`
	FullMagazine    models.RatingValue `json:"fullMagazine" validate:"rating"`

	ValidCommunication      models.RatingValue `json:"validCommunication" validate:"rating"`
	EntranceGateOperational models.RatingValue `json:"entranceGateOperational" validate:"rating"`
	ScanLogComplete         models.RatingValue `json:"scanLogComplete" validate:"rating"`
	ProceduresBooklet       models.RatingValue `json:"proceduresBooklet" validate:"rating"`

	SelectedProcedures       []ProcedureTestInput `json:"selectedProcedures" validate:"dive"`
	EntranceProcedures       models.RatingValue   `json:"entranceProcedures" validate:"rating"`
	SecurityOfficerKnowledge models.RatingValue   `json:"securityOfficerKnowledge" validate:"rating"`

	InspectorNotes string `json:"inspectorNotes"`
	GuardSignature string `json:"guardSignature"`
}

// DeleteInspectionInput is the inspections.delete input
type DeleteInspectionInput struct {
	InspectionID string `json:"inspectionId" validate:"required"`
}

func (in AddInspectionInput) model() models.Inspection {
	procedures := make([]models.ProcedureTest, 0, len(in.SelectedProcedures))
	for _, p := range in.SelectedProcedures {
		procedures = append(procedures, models.ProcedureTest{Procedure: p.Procedure, Rating: p.Rating})
	}

	return models.Inspection{
		GuardID:                  in.GuardID,
		InspectorName:            in.InspectorName,
		UniformComplete:          in.UniformComplete,
		GuardBadgeValid:          in.GuardBadgeValid,
		PersonalWeapon:           in.PersonalWeapon,
		FullMagazine:             in.FullMagazine,
		ValidCommunication:       in.ValidCommunication,
		EntranceGateOperational:  in.EntranceGateOperational,
		ScanLogComplete:          in.ScanLogComplete,
		ProceduresBooklet:        in.ProceduresBooklet,
		SelectedProcedures:       procedures,
		EntranceProcedures:       in.EntranceProcedures,
		SecurityOfficerKnowledge: in.SecurityOfficerKnowledge,
		InspectorNotes:           in.InspectorNotes,
		GuardSignature:           in.GuardSignature,
	}
}

// GetAll handles GET /api/trpc/inspections.getAll
// @Summary List inspections
// @Tags Inspections
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.ResultEnvelope{result=utils.ResultData{data=[]models.Inspection}}
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /trpc/inspections.getAll [get]
func (h *InspectionHandler) GetAll(c *fiber.Ctx) error {
	inspections, err := h.Repo.ListInspections(c.UserContext())
	if err != nil {
		return err
	}
	return utils.ResultResponse(c, inspections)
}

// Add handles POST /api/trpc/inspections.add
// @Summary Add an inspection
// @Description The date is assigned by the server. Scores are derived on read and never stored.
// @Tags Inspections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body AddInspectionInput true "Inspection"
// @Success 200 {object} utils.ResultEnvelope{result=utils.ResultData{data=models.Inspection}}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /trpc/inspections.add [post]
func (h *InspectionHandler) Add(c *fiber.Ctx) error {
	in, err := bindInput[AddInspectionInput](c)
	if err != nil {
		return err
	}

	inspection, err := h.Repo.AddInspection(c.UserContext(), in.model())
	if err != nil {
		return err
	}

	metrics.Created(metrics.ResourceInspections)
	return utils.ResultResponse(c, inspection)
}

// Delete handles POST /api/trpc/inspections.delete
// @Summary Delete an inspection
// @Tags Inspections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body DeleteInspectionInput true "Inspection id"
// @Success 200 {object} utils.ResultEnvelope{result=utils.ResultData{data=utils.SuccessOutput}}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /trpc/inspections.delete [post]
func (h *InspectionHandler) Delete(c *fiber.Ctx) error {
	in, err := bindInput[DeleteInspectionInput](c)
	if err != nil {
		return err
	}

	if err := h.Repo.DeleteInspection(c.UserContext(), in.InspectionID); err != nil {
		return err
	}

	metrics.Deleted(metrics.ResourceInspections)
	return utils.ResultResponse(c, utils.SuccessOutput{Success: true})
}

// Procedures lists the inspections procedures
func (h *InspectionHandler) Procedures() []Procedure {
	return []Procedure{
		{Path: "inspections.getAll", Kind: Query, Protected: true, Handler: h.GetAll},
		{Path: "inspections.add", Kind: Mutation, Protected: true, Handler: h.Add},
		{Path: "inspections.delete", Kind: Mutation, Protected: true, Handler: h.Delete},
	}
}

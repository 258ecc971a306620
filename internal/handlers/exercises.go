package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/guardroster/internal/metrics"
	"github.com/localnerve/guardroster/internal/models"
	"github.com/localnerve/guardroster/internal/store"
	"github.com/localnerve/guardroster/internal/types"
	"github.com/localnerve/guardroster/internal/utils"
)

// ExerciseHandler serves the exercises procedures
type ExerciseHandler struct {
	Repo store.Repository
}

// AddExerciseInput is the exercises.add input: every Exercise field except id and date.
// Derived qualitative scores sent by older clients are ignored.
type AddExerciseInput struct {
	GuardID             string `json:"guardId" validate:"required"`
	InstructorName      string `json:"instructorName" validate:"required"`
	ExerciseType        string `json:"exerciseType" validate:"required"`
	ScenarioDescription string `json:"scenarioDescription"`

	IdentifiedThreat   types.FlexBool `json:"identifiedThreat" swaggertype:"boolean"`
	ReportedOnRadio    types.FlexBool `json:"reportedOnRadio" swaggertype:"boolean"`
	UpdatedKabt        types.FlexBool `json:"updatedKabt" swaggertype:"boolean"`
	UpdatedCoordinator types.FlexBool `json:"updatedCoordinator" swaggertype:"boolean"`

	IdentifiedThreatScore   types.FlexInt `json:"identifiedThreatScore" validate:"min=0,max=10" swaggertype:"integer"`
	ReportedOnRadioScore    types.FlexInt `json:"reportedOnRadioScore" validate:"min=0,max=10" swaggertype:"integer"`
	UpdatedKabtScore        types.FlexInt `json:"updatedKabtScore" validate:"min=0,max=10" swaggertype:"integer"`
	UpdatedCoordinatorScore types.FlexInt `json:"updatedCoordinatorScore" validate:"min=0,max=10" swaggertype:"integer"`

	ResponseSpeed           models.QualitativeRating `json:"responseSpeed" validate:"qualitative"`
	SituationControl        models.QualitativeRating `json:"situationControl" validate:"qualitative"`
	ConfidenceUnderPressure models.QualitativeRating `json:"confidenceUnderPressure" validate:"qualitative"`
	WorkedByProcedure       models.QualitativeRating `json:"workedByProcedure" validate:"qualitative"`

	KabtEvaluation types.FlexInt `json:"kabtEvaluation" validate:"min=0,max=20" swaggertype:"integer"`

	ToMaintain      string        `json:"toMaintain"`
	ToImprove       string        `json:"toImprove"`
	AdditionalNotes string        `json:"additionalNotes"`
	GuardSignature  string        `json:"guardSignature"`
	Duration        types.FlexInt `json:"duration" validate:"min=0" swaggertype:"integer"`
	Notes           string        `json:"notes"`
}

// DeleteExerciseInput is the exercises.delete input
type DeleteExerciseInput struct {
	ExerciseID string `json:"exerciseId" validate:"required"`
}

func (in AddExerciseInput) model() models.Exercise {
	return models.Exercise{
		GuardID:                 in.GuardID,
		InstructorName:          in.InstructorName,
		ExerciseType:            in.ExerciseType,
		ScenarioDescription:     in.ScenarioDescription,
		IdentifiedThreat:        in.IdentifiedThreat.Bool(),
		ReportedOnRadio:         in.ReportedOnRadio.Bool(),
		UpdatedKabt:             in.UpdatedKabt.Bool(),
		UpdatedCoordinator:      in.UpdatedCoordinator.Bool(),
		IdentifiedThreatScore:   in.IdentifiedThreatScore.Int(),
		ReportedOnRadioScore:    in.ReportedOnRadioScore.Int(),
		UpdatedKabtScore:        in.UpdatedKabtScore.Int(),
		UpdatedCoordinatorScore: in.UpdatedCoordinatorScore.Int(),
		ResponseSpeed:           in.ResponseSpeed,
		SituationControl:        in.SituationControl,
		ConfidenceUnderPressure: in.ConfidenceUnderPressure,
		WorkedByProcedure:       in.WorkedByProcedure,
		KabtEvaluation:          in.KabtEvaluation.Int(),
		ToMaintain:              in.ToMaintain,
		ToImprove:               in.ToImprove,
		AdditionalNotes:         in.AdditionalNotes,
		GuardSignature:          in.GuardSignature,
		Duration:                in.Duration.Int(),
		Notes:                   in.Notes,
	}
}

// GetAll handles GET /api/trpc/exercises.getAll
// @Summary List exercises
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.ResultEnvelope{result=utils.ResultData{data=[]models.Exercise}}
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /trpc/exercises.getAll [get]
func (h *ExerciseHandler) GetAll(c *fiber.Ctx) error {
	exercises, err := h.Repo.ListExercises(c.UserContext())
	if err != nil {
		return err
	}
	return utils.ResultResponse(c, exercises)
}

// Add handles POST /api/trpc/exercises.add
// @Summary Add an exercise
// @Description Checklist scores are stored as supplied, independent of their flags. Totals are derived on read.
// @Tags Exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body AddExerciseInput true "Exercise"
// @Success 200 {object} utils.ResultEnvelope{result=utils.ResultData{data=models.Exercise}}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /trpc/exercises.add [post]
func (h *ExerciseHandler) Add(c *fiber.Ctx) error {
	in, err := bindInput[AddExerciseInput](c)
	if err != nil {
		return err
	}

	exercise, err := h.Repo.AddExercise(c.UserContext(), in.model())
	if err != nil {
		return err
	}

	metrics.Created(metrics.ResourceExercises)
	return utils.ResultResponse(c, exercise)
}

// Delete handles POST /api/trpc/exercises.delete
// @Summary Delete an exercise
// @Tags Exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body DeleteExerciseInput true "Exercise id"
// @Success 200 {object} utils.ResultEnvelope{result=utils.ResultData{data=utils.SuccessOutput}}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /trpc/exercises.delete [post]
func (h *ExerciseHandler) Delete(c *fiber.Ctx) error {
	in, err := bindInput[DeleteExerciseInput](c)
	if err != nil {
		return err
	}

	if err := h.Repo.DeleteExercise(c.UserContext(), in.ExerciseID); err != nil {
		return err
	}

	metrics.Deleted(metrics.ResourceExercises)
	return utils.ResultResponse(c, utils.SuccessOutput{Success: true})
}

// Procedures lists the exercises procedures
func (h *ExerciseHandler) Procedures() []Procedure {
	return []Procedure{
		{Path: "exercises.getAll", Kind: Query, Protected: true, Handler: h.GetAll},
		{Path: "exercises.add", Kind: Mutation, Protected: true, Handler: h.Add},
		{Path: "exercises.delete", Kind: Mutation, Protected: true, Handler: h.Delete},
	}
}

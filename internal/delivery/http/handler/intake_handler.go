package handler

import (
	"strconv"

	"sportmed/internal/delivery/http/dto"
	"sportmed/internal/delivery/http/middleware"
	"sportmed/internal/pkg/response"
	"sportmed/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type IntakeHandler struct {
	uc usecase.IntakeUsecase
}

func NewIntakeHandler(uc usecase.IntakeUsecase) *IntakeHandler {
	return &IntakeHandler{uc: uc}
}

func (h *IntakeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Submit)
	r.Post("/steps/:step/validate", h.ValidateStep)
	r.Get("/history", h.History)
}

func (h *IntakeHandler) Submit(c fiber.Ctx) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	var req dto.IntakeRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	rec, err := h.uc.Submit(c.Context(), req.ToRecord())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, rec)
}

func (h *IntakeHandler) ValidateStep(c fiber.Ctx) error {
	step, err := strconv.Atoi(c.Params("step"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid step", nil, err)
	}

	var req dto.IntakeRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	if err := h.uc.ValidateStep(c.Context(), step, req.ToRecord()); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.StepValidResponse{Step: step, Valid: true})
}

func (h *IntakeHandler) History(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	items, err := h.uc.History(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAssessmentResponses(items))
}

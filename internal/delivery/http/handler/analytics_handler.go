package handler

import (
	"sportmed/internal/delivery/http/dto"
	"sportmed/internal/delivery/http/middleware"
	"sportmed/internal/pkg/response"
	"sportmed/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AnalyticsHandler struct {
	uc usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(uc usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

func (h *AnalyticsHandler) Recommendations(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	items, err := h.uc.Recommendations(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSpecialistResponses(items))
}

func (h *AnalyticsHandler) Archetypes(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	items, err := h.uc.Archetypes(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewArchetypeResponses(items))
}

func (h *AnalyticsHandler) Comparison(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	archetypeID, err := uuid.Parse(c.Params("archetype_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid archetype id", nil, err)
	}

	view, err := h.uc.Compare(c.Context(), userID, archetypeID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewComparisonResponse(view))
}

func (h *AnalyticsHandler) Evolution(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	view, err := h.uc.Evolution(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewEvolutionResponse(view))
}

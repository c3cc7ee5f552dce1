package handler

import (
	"strconv"

	"sportmed/internal/delivery/http/dto"
	"sportmed/internal/delivery/http/middleware"
	"sportmed/internal/pkg/response"
	"sportmed/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const defaultFeedbackLimit = 30

type FeedbackHandler struct {
	uc usecase.FeedbackUsecase
}

func NewFeedbackHandler(uc usecase.FeedbackUsecase) *FeedbackHandler {
	return &FeedbackHandler{uc: uc}
}

func (h *FeedbackHandler) Submit(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.FeedbackRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	date, err := req.Date()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid workout date", nil, err)
	}

	f, err := h.uc.Submit(c.Context(), userID, usecase.FeedbackInput{
		WorkoutDate:       date,
		PerceivedExertion: req.PerceivedExertion,
		FatigueLevel:      req.FatigueLevel,
		Notes:             req.Notes,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, dto.NewFeedbackResponse(f))
}

func (h *FeedbackHandler) List(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	limit := defaultFeedbackLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
		}
		limit = n
	}

	items, err := h.uc.List(c.Context(), userID, limit)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewFeedbackResponses(items))
}

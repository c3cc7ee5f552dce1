package handler

import (
	"sportmed/internal/delivery/http/dto"
	"sportmed/internal/pkg/response"
	"sportmed/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SportHandler struct {
	uc usecase.SportUsecase
}

func NewSportHandler(uc usecase.SportUsecase) *SportHandler {
	return &SportHandler{uc: uc}
}

func (h *SportHandler) List(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSportResponses(h.uc.List()))
}

func (h *SportHandler) Select(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.SelectSportRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	s, err := h.uc.Select(c.Context(), userID, req.Sport)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSportResponse(s))
}

package handler

import (
	"sportmed/internal/delivery/http/middleware"
	"sportmed/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type WSHandler struct {
	ws *ws.Handler
}

func NewWSHandler(h *ws.Handler) *WSHandler {
	return &WSHandler{ws: h}
}

func (h *WSHandler) Connect(c fiber.Ctx) error {
	if h == nil || !h.ws.Available() {
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Realtime unavailable", nil, nil)
	}
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	return h.ws.Handle(userID)(c)
}

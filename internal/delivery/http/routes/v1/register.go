package v1

import (
	"sportmed/internal/delivery/http/handler"
	"sportmed/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Auth      *handler.AuthHandler
	User      *handler.UserHandler
	Intake    *handler.IntakeHandler
	Sport     *handler.SportHandler
	Analytics *handler.AnalyticsHandler
	Feedback  *handler.FeedbackHandler
	WS        *handler.WSHandler
}

func Register(r fiber.Router, h Handlers, authMw *middleware.AuthMiddleware) {
	if r == nil || authMw == nil {
		return
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"))
	}
	if h.Sport != nil {
		r.Get("/sports", h.Sport.List)
	}

	protected := r.Group("", authMw.Middleware())

	if h.Intake != nil {
		h.Intake.RegisterRoutes(protected.Group("/intake"))
	}
	if h.Analytics != nil {
		protected.Get("/archetypes", h.Analytics.Archetypes)
	}
	if h.WS != nil {
		protected.Get("/ws", h.WS.Connect)
	}

	RegisterMe(protected.Group("/me"), h)
}

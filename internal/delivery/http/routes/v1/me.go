package v1

import "github.com/gofiber/fiber/v3"

// RegisterMe mounts the routes scoped to the authenticated user.
func RegisterMe(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.User != nil {
		r.Get("/", h.User.GetMe)
		r.Patch("/profile", h.User.UpdateProfile)
	}
	if h.Sport != nil {
		r.Put("/sport", h.Sport.Select)
	}
	if h.Analytics != nil {
		r.Get("/recommendations", h.Analytics.Recommendations)
		r.Get("/comparison/:archetype_id", h.Analytics.Comparison)
		r.Get("/evolution", h.Analytics.Evolution)
	}
	if h.Feedback != nil {
		r.Post("/feedback", h.Feedback.Submit)
		r.Get("/feedback", h.Feedback.List)
	}
}

package app

import (
	"fmt"
	"strings"

	"sportmed/internal/delivery/http/handler"
	"sportmed/internal/delivery/http/middleware"
	"sportmed/internal/delivery/http/routes"
	"sportmed/internal/repository"
	"sportmed/internal/usecase"
	"sportmed/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"go.uber.org/zap"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.Name})

	registerGlobalMiddleware(f, c)
	routes.NewRegistry(newHealthHandler(c), newV1Handlers(c), middleware.NewAuthMiddleware(c.JWT)).Register(f)

	return &App{Fiber: f}
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())

	corsCfg := cors.Config{
		AllowHeaders:  []string{fiber.HeaderAuthorization, fiber.HeaderContentType, middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
	}
	if origins := c.Config.App.AllowedOrigins(); len(origins) > 0 {
		corsCfg.AllowOrigins = origins
	}
	app.Use(cors.New(corsCfg))
}

func newHealthHandler(c *Container) *handler.HealthHandler {
	checks := map[string]handler.Pinger{"postgres": nil, "redis": nil}
	if c.DB != nil {
		checks["postgres"] = c.DB
	}
	if c.Cache.Enabled() {
		checks["redis"] = c.Cache
	}
	return handler.NewHealthHandler(checks)
}

func newV1Handlers(c *Container) routes.V1Handlers {
	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	store := repository.NewStore(c.DB)
	users := repository.NewPostgresUserRepository(c.DB)
	profiles := repository.NewPostgresProfileRepository(c.DB)
	feedbacks := repository.NewPostgresFeedbackRepository(c.DB)

	var cache usecase.Cache
	if c.Cache != nil {
		cache = c.Cache
	}
	var notifier usecase.Notifier
	if c.Hub != nil {
		notifier = c.Hub
	}

	return routes.V1Handlers{
		Auth:      handler.NewAuthHandler(usecase.NewAuthUsecase(users, c.JWT)),
		User:      handler.NewUserHandler(usecase.NewUserUsecase(users, profiles, cache, logger)),
		Intake:    handler.NewIntakeHandler(usecase.NewIntakeUsecase(store, cache, notifier, logger)),
		Sport:     handler.NewSportHandler(usecase.NewSportUsecase(profiles, cache, notifier, logger)),
		Analytics: handler.NewAnalyticsHandler(usecase.NewAnalyticsUsecase(store, cache, c.Config.Redis.CacheTTL, logger)),
		Feedback:  handler.NewFeedbackHandler(usecase.NewFeedbackUsecase(feedbacks, notifier, logger)),
		WS:        handler.NewWSHandler(ws.NewHandler(c.Hub, logger, c.Config.App.AllowedOrigins())),
	}
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}

package routes

import (
	"log"

	"talentdesk/internal/config"
	"talentdesk/internal/database"
	"talentdesk/internal/delivery/http/handler"
	v1 "talentdesk/internal/delivery/http/routes/v1"
	"talentdesk/internal/infrastructure/cache"
	"talentdesk/internal/pkg/jwt"
	"talentdesk/internal/usecase"
	"talentdesk/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Config   config.Config
	DB       database.DB
	Cache    *cache.Redis
	JWT      jwt.Service
	Notifier usecase.Notifier
	WS       *ws.Handler
	Health   *handler.HealthHandler
	Logger   *log.Logger
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}
	if r.WS != nil {
		app.Get("/ws/events", r.WS.HandleEventsWS)
	}

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.Config, r.DB, r.Cache, r.JWT, r.Notifier, r.Logger)
}

package app

import (
	"fmt"
	"strings"

	"talentdesk/internal/config"
	"talentdesk/internal/delivery/http/handler"
	"talentdesk/internal/delivery/http/middleware"
	"talentdesk/internal/delivery/http/routes"
	"talentdesk/internal/pkg/jwt"
	"talentdesk/internal/usecase"
	"talentdesk/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config, c *Container) (*App, func() error, error) {
	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	errMw := middleware.NewErrorMiddleware(c.Logger)
	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	f.Use(errMw.Middleware())
	f.Use(accessMw.Middleware())

	jwtSvc := jwt.NewHMACService(
		cfg.Auth.AccessSecret,
		cfg.Auth.RefreshSecret,
		cfg.Auth.AccessExpiresIn,
		cfg.Auth.RefreshExpiresIn,
	)

	registry := &routes.Registry{
		Config:   cfg,
		DB:       c.DB,
		Cache:    c.Cache,
		JWT:      jwtSvc,
		Notifier: ws.NewEventNotifier(c.Hub),
		WS:       ws.NewHandler(c.Hub, jwtSvc, c.Logger),
		Health:   handler.NewHealthHandler(usecase.NewHealthUsecase(c.DB, c.Cache)),
		Logger:   c.Logger,
	}
	registry.Register(f)

	cleanup := func() error {
		return c.Close()
	}
	return &App{Fiber: f, Container: c}, cleanup, nil
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

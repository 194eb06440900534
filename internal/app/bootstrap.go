package app

import (
	"fmt"
	"strings"

	"intern-match/internal/delivery/http/middleware"
	"intern-match/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func Bootstrap(c *Container) (*App, func() error, error) {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	errMw := middleware.NewErrorMiddleware(c.Logger)
	f.Use(errMw.Middleware())

	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	f.Use(accessMw.Middleware())

	registry := routes.NewRegistry(c.Config, c.DB, c.Cache, c.Logger)
	registry.Register(f)

	cleanup := func() error { return c.Close() }
	return &App{Fiber: f}, cleanup, nil
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

package routes

import (
	"intern-match/internal/config"
	"intern-match/internal/database"
	"intern-match/internal/delivery/http/handler"
	"intern-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type Registry struct {
	cfg    config.Config
	db     database.DB
	cache  usecase.MatchCache
	logger *zap.Logger

	health *handler.HealthHandler
}

func NewRegistry(cfg config.Config, db database.DB, cache usecase.MatchCache, logger *zap.Logger) *Registry {
	return &Registry{
		cfg:    cfg,
		db:     db,
		cache:  cache,
		logger: logger,
		health: handler.NewHealthHandler(),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.cfg, r.db, r.cache, r.logger)
}

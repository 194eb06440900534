package routes

import (
	"intern-match/internal/config"
	"intern-match/internal/database"
	v1 "intern-match/internal/delivery/http/routes/v1"
	"intern-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, cache usecase.MatchCache, logger *zap.Logger) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, cache, logger)
}

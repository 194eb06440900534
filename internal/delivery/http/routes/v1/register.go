package v1

import (
	"intern-match/internal/config"
	"intern-match/internal/database"
	"intern-match/internal/delivery/http/handler"
	"intern-match/internal/delivery/http/middleware"
	"intern-match/internal/domain/matching"
	"intern-match/internal/pkg/jwt"
	"intern-match/internal/repository"
	"intern-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, cache usecase.MatchCache, logger *zap.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	accountRepo := repository.NewPostgresAccountRepository(db)
	authUC := usecase.NewAuthUsecase(accountRepo, jwtSvc)
	authHandler := handler.NewAuthHandler(authUC)

	engine := matching.NewEngine(matching.Config{
		NoRequirementsScore: cfg.Matching.NoRequirementsScore,
		CulturalFitScore:    cfg.Matching.CulturalFitScore,
	})

	matchingUC := usecase.NewMatchingUsecase(
		repository.NewPostgresStudentRepository(db),
		repository.NewPostgresInternshipRepository(db),
		repository.NewPostgresStudentSkillRepository(db),
		repository.NewPostgresInternshipSkillRepository(db),
		engine,
		cache,
		cfg.Matching.CacheTTL,
		logger,
	)
	matchHandler := handler.NewMatchHandler(matchingUC)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())
	matchHandler.RegisterRoutes(protected)
}

package v1

import (
	"log"

	"talentdesk/internal/config"
	"talentdesk/internal/database"
	"talentdesk/internal/delivery/http/handler"
	"talentdesk/internal/delivery/http/middleware"
	"talentdesk/internal/infrastructure/cache"
	"talentdesk/internal/pkg/jwt"
	"talentdesk/internal/repository"
	"talentdesk/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Register wires every v1 route. Public surfaces (auth, intake) sit outside
// the auth middleware; everything else requires a bearer token.
func Register(r fiber.Router, cfg config.Config, db database.DB, redis *cache.Redis, jwtSvc jwt.Service, notifier usecase.Notifier, logger *log.Logger) {
	if r == nil || jwtSvc == nil {
		return
	}

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	candidateRepo := repository.NewPostgresCandidateRepository(db)
	applicationRepo := repository.NewPostgresApplicationRepository(db)
	meetingRepo := repository.NewPostgresMeetingRepository(db)

	var searchCache usecase.SearchCache
	var invalidator usecase.SearchInvalidator
	if redis != nil {
		searchCache = redis
		invalidator = redis
	}

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	jobUC := usecase.NewJobUsecase(jobRepo, invalidator, logger)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, invalidator, logger)
	searchUC := usecase.NewCandidateSearchUsecase(jobRepo, candidateRepo, searchCache, cfg.Search, logger)
	pipelineUC := usecase.NewPipelineUsecase(applicationRepo, jobRepo, notifier, logger)
	intakeUC := usecase.NewIntakeUsecase(jobRepo, candidateRepo, applicationRepo, invalidator, notifier, logger)
	meetingUC := usecase.NewMeetingUsecase(meetingRepo, candidateRepo)

	authHandler := handler.NewAuthHandler(authUC)
	jobHandler := handler.NewJobHandler(jobUC)
	candidateHandler := handler.NewCandidateHandler(candidateUC, meetingUC)
	searchHandler := handler.NewSearchHandler(searchUC)
	applicationHandler := handler.NewApplicationHandler(pipelineUC)
	intakeHandler := handler.NewIntakeHandler(intakeUC)
	meetingHandler := handler.NewMeetingHandler(meetingUC)

	authHandler.RegisterRoutes(r.Group("/auth"))
	intakeHandler.RegisterRoutes(r.Group("/public"))

	protected := r.Group("", authMw.Middleware())

	jobs := protected.Group("/jobs")
	jobHandler.RegisterRoutes(jobs)
	searchHandler.RegisterRoutes(jobs)
	applicationHandler.RegisterJobRoutes(jobs)

	candidateHandler.RegisterRoutes(protected.Group("/candidates"))
	applicationHandler.RegisterRoutes(protected.Group("/applications"))
	meetingHandler.RegisterRoutes(protected.Group("/meetings"))
}

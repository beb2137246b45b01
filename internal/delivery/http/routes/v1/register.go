package v1

import (
	"log"

	"mes-workforce/internal/config"
	"mes-workforce/internal/database"
	"mes-workforce/internal/delivery/http/handler"
	"mes-workforce/internal/delivery/http/middleware"
	"mes-workforce/internal/domain/matching"
	"mes-workforce/internal/pkg/jwt"
	"mes-workforce/internal/repository"
	"mes-workforce/internal/usecase"
	"mes-workforce/internal/ws"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, cache usecase.MatchCache, hub *ws.Hub, logger *log.Logger) {
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

	userRepo := repository.NewPostgresUserRepository(db)
	workerRepo := repository.NewPostgresWorkerRepository(db)
	taskRepo := repository.NewPostgresTaskRepository(db)
	assignmentRepo := repository.NewPostgresTaskAssignmentRepository(db)
	scheduleRepo := repository.NewPostgresWorkerScheduleRepository(db)

	notifier := ws.NewNotifier(hub, logger)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	workforceUC := usecase.NewWorkforceUsecase(workerRepo, notifier, cache, logger)
	matchUC := usecase.NewWorkerMatchUsecase(workerRepo, taskRepo, assignmentRepo, matching.DefaultTypeSkills(), cache, logger)
	workloadUC := usecase.NewWorkloadUsecase(workerRepo, scheduleRepo, assignmentRepo, cache, logger)

	authHandler := handler.NewAuthHandler(authUC)
	workerHandler := handler.NewWorkerHandler(workforceUC)
	matchHandler := handler.NewMatchHandler(matchUC)
	workloadHandler := handler.NewWorkloadHandler(workloadUC)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())

	workersGroup := protected.Group("/workers")
	matchHandler.RegisterRoutes(workersGroup, nil)
	workloadHandler.RegisterRoutes(workersGroup)
	workerHandler.RegisterRoutes(workersGroup)

	tasksGroup := protected.Group("/tasks")
	matchHandler.RegisterRoutes(nil, tasksGroup)
}

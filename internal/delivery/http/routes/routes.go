package routes

import (
	"log"

	"hirehub/internal/config"
	"hirehub/internal/database"
	"hirehub/internal/delivery/http/handler"
	"hirehub/internal/delivery/http/middleware"
	"hirehub/internal/pkg/jwt"
	"hirehub/internal/repository"
	"hirehub/internal/usecase"
	"hirehub/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  usecase.ListingCache
	Hub    *ws.Hub
	Logger *log.Logger
}

// Register wires repositories, usecases and handlers and mounts every route.
func Register(app *fiber.App, d Deps) {
	if app == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		d.Config.JWT.AccessSecret,
		d.Config.JWT.RefreshSecret,
		d.Config.JWT.AccessExpiresIn,
		d.Config.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(d.DB)
	jobRepo := repository.NewPostgresJobRepository(d.DB)
	appRepo := repository.NewPostgresApplicationRepository(d.DB)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	userUC := usecase.NewUserUsecase(userRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, userRepo, d.Cache, d.Logger)
	appUC := usecase.NewApplicationUsecase(appRepo, jobRepo, ws.NewNotifier(d.Hub))

	handler.NewHealthHandler(d.DB).RegisterRoutes(app)

	api := app.Group("/api")

	authHandler := handler.NewAuthHandler(authUC, userUC)
	authGroup := api.Group("/auth")
	authHandler.RegisterRoutes(authGroup)
	authHandler.RegisterProtectedRoutes(authGroup.Group("", authMw.Middleware()))

	jobHandler := handler.NewJobHandler(jobUC)
	jobHandler.RegisterPublicRoutes(api.Group("/jobs"))
	jobHandler.RegisterProtectedRoutes(api.Group("/jobs", authMw.Middleware()))

	appHandler := handler.NewApplicationHandler(appUC)
	appHandler.RegisterRoutes(api.Group("/applications", authMw.Middleware()))

	userHandler := handler.NewUserHandler(userUC)
	userHandler.RegisterRoutes(api.Group("/users", authMw.Middleware()))

	if d.Hub != nil {
		wsHandler := ws.NewHandler(d.Hub, jwtSvc, d.Logger)
		app.Get("/ws", wsHandler.Handle)
	}
}

package app

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tasklab/go-tasks/auth"
	"github.com/tasklab/go-tasks/config"
	"github.com/tasklab/go-tasks/database"
	"github.com/tasklab/go-tasks/handlers"
	"github.com/tasklab/go-tasks/repository"
	"github.com/tasklab/go-tasks/router"
	"github.com/tasklab/go-tasks/service"
)

// SetupAndRunApp wires configuration, storage, services and routes, then
// serves until the listener stops.
func SetupAndRunApp() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := database.Connect(cfg.PostgresURI)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("closing database: %v", err)
		}
	}()

	tokens := auth.NewTokenService([]byte(cfg.JWTSecret), cfg.TokenTTL)
	users := repository.NewPostgresUserRepository(db)
	tasks := repository.NewPostgresTaskRepository(db)

	authHandler := handlers.NewAuthHandler(service.NewAuthService(users, tokens))
	taskHandler := handlers.NewTaskHandler(service.NewTaskService(tasks))

	app := NewFiberApp(authHandler, taskHandler, tokens)

	return app.Listen(":" + cfg.Port)
}

// NewFiberApp builds the HTTP application around the given handlers. Split
// from SetupAndRunApp so tests can serve the same middleware and routes over
// fake storage.
func NewFiberApp(authHandler *handlers.AuthHandler, taskHandler *handlers.TaskHandler, tokens *auth.TokenService) *fiber.App {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path} ${latency}\n",
	}))

	router.SetupRoutes(app, authHandler, taskHandler, tokens)

	config.AddSwaggerRoutes(app)

	return app
}

package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tasklab/go-tasks/auth"
	"github.com/tasklab/go-tasks/handlers"
	"github.com/tasklab/go-tasks/middleware"
)

// SetupRoutes wires the public auth endpoints and the token-guarded task
// endpoints onto app.
func SetupRoutes(app *fiber.App, authHandler *handlers.AuthHandler, taskHandler *handlers.TaskHandler, tokens *auth.TokenService) {
	app.Get("/health", handlers.HandleHealthCheck)

	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)

	tasks := app.Group("/tasks", middleware.JWTMiddleware(tokens))
	tasks.Post("/", taskHandler.Create)
	tasks.Get("/", taskHandler.List)
	tasks.Get("/:id", taskHandler.Get)
	tasks.Put("/:id", taskHandler.Update)
	tasks.Patch("/:id", taskHandler.Update)
	tasks.Delete("/:id", taskHandler.Delete)
}

package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tasklab/go-tasks/middleware"
	"github.com/tasklab/go-tasks/service"
)

// currentUserID returns the user id the auth middleware resolved from the
// bearer token.
func currentUserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(middleware.UserIDKey).(int64)
	return id
}

// respondError maps a service error onto the HTTP status and body the API
// promises. Anything outside the taxonomy is an internal failure.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrConflict):
		return c.Status(400).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, service.ErrUnauthenticated):
		return c.Status(401).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(500).JSON(fiber.Map{"error": err.Error()})
}

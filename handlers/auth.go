package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tasklab/go-tasks/service"
)

// AuthHandler serves the public registration and login endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a new user account
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Missing data..."})
	}

	if err := h.auth.Register(c.Context(), req.Username, req.Password); err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "User registered successfully"})
}

// Login checks the credentials and returns a fresh access token
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(401).JSON(fiber.Map{"message": "Invalid Credentials..."})
	}

	token, err := h.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(200).JSON(fiber.Map{"access_token": token})
}

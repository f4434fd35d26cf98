package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/groupup/groupup-backend/internal/httpx"
	"github.com/groupup/groupup-backend/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input service.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return httpx.BadRequest(c, "Invalid request body")
	}

	if input.Email == "" || input.Password == "" || input.Username == "" {
		return httpx.BadRequest(c, "Email, username, and password are required")
	}

	result, err := h.authService.Register(input)
	if err != nil {
		return httpx.BadRequest(c, err.Error())
	}

	return httpx.Created(c, fiber.Map{"token": result.Token, "user": result.User})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input service.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return httpx.BadRequest(c, "Invalid request body")
	}

	if input.Email == "" || input.Password == "" {
		return httpx.BadRequest(c, "Email and password are required")
	}

	result, err := h.authService.Login(input)
	if err != nil {
		return httpx.Unauthorized(c, err.Error())
	}

	return httpx.OK(c, fiber.Map{"token": result.Token, "user": result.User})
}

func (h *AuthHandler) GetCurrentUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := h.authService.GetUser(userID)
	if err != nil {
		return httpx.NotFound(c, "User not found")
	}
	return httpx.OK(c, fiber.Map{"user": user.ToResponse()})
}

package httpx

import (
	"github.com/gofiber/fiber/v2"
)

// Every response carries the success flag: 1 with payload fields on
// the happy path, 0 with a message otherwise.

func OK(c *fiber.Ctx, payload fiber.Map) error {
	return JSON(c, fiber.StatusOK, payload)
}

func Created(c *fiber.Ctx, payload fiber.Map) error {
	return JSON(c, fiber.StatusCreated, payload)
}

func JSON(c *fiber.Ctx, status int, payload fiber.Map) error {
	body := fiber.Map{"success": 1}
	for k, v := range payload {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}

func Error(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = "Request failed"
	}
	return c.Status(status).JSON(fiber.Map{
		"success": 0,
		"message": message,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, message)
}

func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

func Conflict(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusConflict, message)
}

func Internal(c *fiber.Ctx) error {
	return Error(c, fiber.StatusInternalServerError, "Internal server error")
}

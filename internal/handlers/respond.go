package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/groupup/groupup-backend/internal/httpx"
	"github.com/groupup/groupup-backend/internal/service"
)

// serviceError maps domain errors to HTTP responses. Unknown errors
// are persistence failures and must not leak detail.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return httpx.NotFound(c, err.Error())
	case errors.Is(err, service.ErrForbidden):
		return httpx.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrBlocked):
		return httpx.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrAlreadyMember),
		errors.Is(err, service.ErrDuplicateRequest),
		errors.Is(err, service.ErrDuplicateInvite),
		errors.Is(err, service.ErrCodeCollision):
		return httpx.Conflict(c, err.Error())
	default:
		return httpx.Internal(c)
	}
}

package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/groupup/groupup-backend/internal/httpx"
	"github.com/groupup/groupup-backend/internal/service"
)

type InviteHandler struct {
	inviteService *service.InviteService
}

func NewInviteHandler(inviteService *service.InviteService) *InviteHandler {
	return &InviteHandler{inviteService: inviteService}
}

type CreateInviteRequest struct {
	UserID uint `json:"userId"`
}

func (h *InviteHandler) CreateInvite(c *fiber.Ctx) error {
	groupID, err := strconv.ParseUint(c.Params("groupId"), 10, 32)
	if err != nil {
		return httpx.BadRequest(c, "Invalid group ID")
	}

	var req CreateInviteRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(c, "Invalid request body")
	}
	if req.UserID == 0 {
		return httpx.BadRequest(c, "User ID is required")
	}

	userID := c.Locals("userID").(uint)
	invite, err := h.inviteService.CreateInvite(uint(groupID), userID, req.UserID)
	if err != nil {
		return serviceError(c, err)
	}

	return httpx.Created(c, fiber.Map{"invite": invite})
}

func (h *InviteHandler) GetPendingInvites(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	invites, err := h.inviteService.ListPendingInvites(userID)
	if err != nil {
		return httpx.Internal(c)
	}

	return httpx.OK(c, fiber.Map{"invites": invites})
}

func (h *InviteHandler) AcceptInvite(c *fiber.Ctx) error {
	inviteID, err := strconv.ParseUint(c.Params("inviteId"), 10, 32)
	if err != nil {
		return httpx.BadRequest(c, "Invalid invite ID")
	}

	userID := c.Locals("userID").(uint)
	invite, err := h.inviteService.AcceptInvite(uint(inviteID), userID)
	if err != nil {
		return serviceError(c, err)
	}

	return httpx.OK(c, fiber.Map{
		"groupId": invite.GroupID,
		"message": "Invite accepted",
	})
}

// AcceptInviteByToken accepts an invite via its share token, for
// invite links sent outside the app.
func (h *InviteHandler) AcceptInviteByToken(c *fiber.Ctx) error {
	token := c.Params("token")
	if token == "" {
		return httpx.BadRequest(c, "Invalid invite token")
	}

	userID := c.Locals("userID").(uint)
	invite, err := h.inviteService.AcceptInviteByToken(token, userID)
	if err != nil {
		return serviceError(c, err)
	}

	return httpx.OK(c, fiber.Map{
		"groupId": invite.GroupID,
		"message": "Invite accepted",
	})
}

func (h *InviteHandler) RevokeInvite(c *fiber.Ctx) error {
	inviteID, err := strconv.ParseUint(c.Params("inviteId"), 10, 32)
	if err != nil {
		return httpx.BadRequest(c, "Invalid invite ID")
	}

	userID := c.Locals("userID").(uint)
	if err := h.inviteService.RevokeInvite(uint(inviteID), userID); err != nil {
		return serviceError(c, err)
	}

	return httpx.OK(c, fiber.Map{"message": "Invite revoked"})
}

package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/groupup/groupup-backend/internal/httpx"
	"github.com/groupup/groupup-backend/internal/service"
	"github.com/groupup/groupup-backend/internal/validation"
)

type GroupHandler struct {
	groupService *service.GroupService
}

func NewGroupHandler(groupService *service.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

type CreateGroupRequest struct {
	Name string `json:"name"`
}

func (h *GroupHandler) CreateGroup(c *fiber.Ctx) error {
	var req CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(c, "Invalid request body")
	}

	req.Name = validation.NormalizeGroupName(req.Name)
	if !validation.ValidateGroupName(req.Name) {
		return httpx.BadRequest(c, "Group name is required")
	}

	userID := c.Locals("userID").(uint)
	group, err := h.groupService.CreateGroup(req.Name, userID)
	if err != nil {
		return serviceError(c, err)
	}

	return httpx.Created(c, fiber.Map{
		"groupId":   group.ID,
		"groupCode": group.Code,
	})
}

func (h *GroupHandler) GetMyGroups(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	groups, err := h.groupService.GetUserGroups(userID)
	if err != nil {
		return httpx.Internal(c)
	}

	return httpx.OK(c, fiber.Map{"groups": groups})
}

func (h *GroupHandler) GetGroup(c *fiber.Ctx) error {
	groupID, err := strconv.ParseUint(c.Params("groupId"), 10, 32)
	if err != nil {
		return httpx.BadRequest(c, "Invalid group ID")
	}

	group, err := h.groupService.GetGroup(uint(groupID))
	if err != nil {
		return serviceError(c, err)
	}

	return httpx.OK(c, fiber.Map{"group": group})
}

func (h *GroupHandler) DeleteGroup(c *fiber.Ctx) error {
	groupID, err := strconv.ParseUint(c.Params("groupId"), 10, 32)
	if err != nil {
		return httpx.BadRequest(c, "Invalid group ID")
	}

	userID := c.Locals("userID").(uint)
	if err := h.groupService.DeleteGroup(uint(groupID), userID); err != nil {
		return serviceError(c, err)
	}

	return httpx.OK(c, fiber.Map{"message": "Group deleted"})
}

package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/groupup/groupup-backend/internal/httpx"
	"github.com/groupup/groupup-backend/internal/service"
	"github.com/groupup/groupup-backend/internal/validation"
)

type MembershipHandler struct {
	groupService      *service.GroupService
	membershipService *service.MembershipService
}

func NewMembershipHandler(groupService *service.GroupService, membershipService *service.MembershipService) *MembershipHandler {
	return &MembershipHandler{
		groupService:      groupService,
		membershipService: membershipService,
	}
}

type JoinGroupRequest struct {
	GroupCode string `json:"groupCode"`
}

type ModerationRequest struct {
	Reason string `json:"reason"`
}

func (h *MembershipHandler) JoinByCode(c *fiber.Ctx) error {
	var req JoinGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(c, "Invalid request body")
	}

	code := validation.NormalizeGroupCode(req.GroupCode)
	if !validation.ValidateGroupCode(code) {
		return httpx.BadRequest(c, "Invalid group code")
	}

	group, err := h.groupService.GetGroupByCode(code)
	if err != nil {
		return serviceError(c, err)
	}

	userID := c.Locals("userID").(uint)
	if _, err := h.membershipService.SubmitJoinRequest(group, userID); err != nil {
		return serviceError(c, err)
	}

	return httpx.OK(c, fiber.Map{
		"groupId": group.ID,
		"status":  "pending",
	})
}

func (h *MembershipHandler) GetMembers(c *fiber.Ctx) error {
	groupID, err := strconv.ParseUint(c.Params("groupId"), 10, 32)
	if err != nil {
		return httpx.BadRequest(c, "Invalid group ID")
	}

	members, err := h.membershipService.ListMembers(uint(groupID))
	if err != nil {
		return httpx.Internal(c)
	}

	return httpx.OK(c, fiber.Map{"members": members})
}

func (h *MembershipHandler) GetPendingRequests(c *fiber.Ctx) error {
	groupID, err := strconv.ParseUint(c.Params("groupId"), 10, 32)
	if err != nil {
		return httpx.BadRequest(c, "Invalid group ID")
	}

	userID := c.Locals("userID").(uint)
	requests, err := h.membershipService.ListPendingRequests(uint(groupID), userID)
	if err != nil {
		return serviceError(c, err)
	}

	return httpx.OK(c, fiber.Map{"requests": requests})
}

func (h *MembershipHandler) ApproveRequest(c *fiber.Ctx) error {
	groupID, requestID, err := groupAndParam(c, "requestId", "Invalid request ID")
	if err != nil {
		return httpx.BadRequest(c, err.Error())
	}

	userID := c.Locals("userID").(uint)
	if err := h.membershipService.ApproveRequest(groupID, requestID, userID); err != nil {
		return serviceError(c, err)
	}

	return httpx.OK(c, fiber.Map{"message": "Request approved"})
}

func (h *MembershipHandler) RejectRequest(c *fiber.Ctx) error {
	groupID, requestID, err := groupAndParam(c, "requestId", "Invalid request ID")
	if err != nil {
		return httpx.BadRequest(c, err.Error())
	}

	userID := c.Locals("userID").(uint)
	if err := h.membershipService.RejectRequest(groupID, requestID, userID); err != nil {
		return serviceError(c, err)
	}

	return httpx.OK(c, fiber.Map{"message": "Request rejected"})
}

func (h *MembershipHandler) BlockMember(c *fiber.Ctx) error {
	groupID, memberID, err := groupAndParam(c, "memberId", "Invalid member ID")
	if err != nil {
		return httpx.BadRequest(c, err.Error())
	}

	var req ModerationRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return httpx.BadRequest(c, "Invalid request body")
	}
	if !validation.ValidateReason(req.Reason) {
		return httpx.BadRequest(c, "Reason too long")
	}

	userID := c.Locals("userID").(uint)
	if err := h.membershipService.BlockMember(groupID, memberID, userID, req.Reason); err != nil {
		return serviceError(c, err)
	}

	return httpx.OK(c, fiber.Map{"message": "Member blocked"})
}

func (h *MembershipHandler) UnblockMember(c *fiber.Ctx) error {
	groupID, memberID, err := groupAndParam(c, "memberId", "Invalid member ID")
	if err != nil {
		return httpx.BadRequest(c, err.Error())
	}

	userID := c.Locals("userID").(uint)
	if err := h.membershipService.UnblockMember(groupID, memberID, userID); err != nil {
		return serviceError(c, err)
	}

	return httpx.OK(c, fiber.Map{"message": "Member unblocked"})
}

func (h *MembershipHandler) GetBlockedMembers(c *fiber.Ctx) error {
	groupID, err := strconv.ParseUint(c.Params("groupId"), 10, 32)
	if err != nil {
		return httpx.BadRequest(c, "Invalid group ID")
	}

	userID := c.Locals("userID").(uint)
	blocked, err := h.membershipService.ListBlocked(uint(groupID), userID)
	if err != nil {
		return serviceError(c, err)
	}

	return httpx.OK(c, fiber.Map{"blockedMembers": blocked})
}

func (h *MembershipHandler) RemoveMember(c *fiber.Ctx) error {
	groupID, memberID, err := groupAndParam(c, "memberId", "Invalid member ID")
	if err != nil {
		return httpx.BadRequest(c, err.Error())
	}

	var req ModerationRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return httpx.BadRequest(c, "Invalid request body")
	}
	if !validation.ValidateReason(req.Reason) {
		return httpx.BadRequest(c, "Reason too long")
	}

	userID := c.Locals("userID").(uint)
	if err := h.membershipService.RemoveMember(groupID, memberID, userID, req.Reason); err != nil {
		return serviceError(c, err)
	}

	return httpx.OK(c, fiber.Map{"message": "Member removed"})
}

func (h *MembershipHandler) VerifyMembership(c *fiber.Ctx) error {
	groupID, err := strconv.ParseUint(c.Params("groupId"), 10, 32)
	if err != nil {
		return httpx.BadRequest(c, "Invalid group ID")
	}

	exists, err := h.groupService.GroupExists(uint(groupID))
	if err != nil {
		return httpx.Internal(c)
	}
	if !exists {
		return httpx.NotFound(c, "Group not found")
	}

	userID := c.Locals("userID").(uint)
	verification, err := h.membershipService.VerifyMembership(uint(groupID), userID)
	if err != nil {
		return httpx.Internal(c)
	}

	return httpx.OK(c, fiber.Map{
		"isMember":          verification.IsMember,
		"role":              verification.Role,
		"status":            verification.Status,
		"hasPendingRequest": verification.HasPendingRequest,
	})
}

func (h *MembershipHandler) CheckBlocked(c *fiber.Ctx) error {
	code := validation.NormalizeGroupCode(c.Params("groupCode"))
	if !validation.ValidateGroupCode(code) {
		return httpx.BadRequest(c, "Invalid group code")
	}

	group, err := h.groupService.GetGroupByCode(code)
	if err != nil {
		return serviceError(c, err)
	}

	userID := c.Locals("userID").(uint)
	blocked, reason, err := h.membershipService.CheckBlocked(group, userID)
	if err != nil {
		return httpx.Internal(c)
	}

	return httpx.OK(c, fiber.Map{
		"isBlocked": blocked,
		"reason":    reason,
	})
}

// groupAndParam parses :groupId plus a second route parameter. The
// returned error message names whichever parameter failed so the
// client isn't told a bad group ID is a bad member ID.
func groupAndParam(c *fiber.Ctx, name, label string) (uint, uint, error) {
	groupID, err := strconv.ParseUint(c.Params("groupId"), 10, 32)
	if err != nil {
		return 0, 0, errors.New("Invalid group ID")
	}
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, 0, errors.New(label)
	}
	return uint(groupID), uint(id), nil
}

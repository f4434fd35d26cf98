package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/groupup/groupup-backend/internal/httpx"
	"github.com/groupup/groupup-backend/internal/service"
)

type NotificationHandler struct {
	notificationService *service.NotificationService
}

func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) GetNotifications(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	notifications, err := h.notificationService.ListNotifications(userID)
	if err != nil {
		return httpx.Internal(c)
	}

	return httpx.OK(c, fiber.Map{"notifications": notifications})
}

func (h *NotificationHandler) DismissNotification(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return httpx.BadRequest(c, "Invalid notification ID")
	}

	userID := c.Locals("userID").(uint)
	if err := h.notificationService.Dismiss(uint(id), userID); err != nil {
		return serviceError(c, err)
	}

	return httpx.OK(c, fiber.Map{"message": "Notification dismissed"})
}

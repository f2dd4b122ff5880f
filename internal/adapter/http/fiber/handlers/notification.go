package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/smartparking/internal/ports"
)

type NotificationHandler struct {
	service ports.NotificationService
	log     *zap.Logger
}

func NewNotificationHandler(service ports.NotificationService, log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		log:     log,
	}
}

func (h *NotificationHandler) ListMine(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	notifications, err := h.service.ListForUser(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(notifications)
}

package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/smartparking/internal/ports"
)

// JobsHandler exposes the daily maintenance sweeps as admin endpoints so
// operators can trigger them outside the scheduled window.
type JobsHandler struct {
	orders        ports.OrderService
	notifications ports.NotificationService
	log           *zap.Logger
}

func NewJobsHandler(orders ports.OrderService, notifications ports.NotificationService, log *zap.Logger) *JobsHandler {
	return &JobsHandler{
		orders:        orders,
		notifications: notifications,
		log:           log,
	}
}

func (h *JobsHandler) RunRenewals(c *fiber.Ctx) error {
	created, err := h.orders.CreateDueRenewals(c.Context(), time.Now())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"renewals_created": created})
}

func (h *JobsHandler) RunOverdueCancellation(c *fiber.Ctx) error {
	canceled, err := h.orders.CancelOverdueOrders(c.Context(), time.Now())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"orders_canceled": canceled})
}

func (h *JobsHandler) RunExpirationNotifications(c *fiber.Ctx) error {
	sent, err := h.notifications.SendExpirationNotifications(c.Context(), time.Now())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"notifications_sent": sent})
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/smartparking/internal/ports"
)

type PaymentHandler struct {
	service ports.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service ports.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log,
	}
}

type ProcessPaymentRequest struct {
	OrderID string  `json:"order_id"`
	Method  string  `json:"method"`
	Amount  float64 `json:"amount"`
}

func (h *PaymentHandler) Process(c *fiber.Ctx) error {
	var req ProcessPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	payment, err := h.service.ProcessPayment(c.Context(), req.OrderID, req.Method, req.Amount)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

func (h *PaymentHandler) List(c *fiber.Ctx) error {
	payments, err := h.service.ListPayments(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(payments)
}

func (h *PaymentHandler) ListByOrder(c *fiber.Ctx) error {
	payments, err := h.service.ListPaymentsForOrder(c.Context(), c.Params("orderId"))
	if err != nil {
		return err
	}
	return c.JSON(payments)
}

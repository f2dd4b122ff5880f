package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/smartparking/internal/ports"
)

type FeeHandler struct {
	service ports.FeeService
	log     *zap.Logger
}

func NewFeeHandler(service ports.FeeService, log *zap.Logger) *FeeHandler {
	return &FeeHandler{
		service: service,
		log:     log,
	}
}

type FeeRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

func (h *FeeHandler) Create(c *fiber.Ctx) error {
	var req FeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	approvedBy, _ := c.Locals("user_full_name").(string)
	fee, err := h.service.CreateFee(c.Context(), req.Name, req.Amount, req.Description, approvedBy)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fee)
}

func (h *FeeHandler) Update(c *fiber.Ctx) error {
	var req FeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	approvedBy, _ := c.Locals("user_full_name").(string)
	fee, err := h.service.UpdateFee(c.Context(), c.Params("id"), req.Name, req.Amount, req.Description, approvedBy)
	if err != nil {
		return err
	}
	return c.JSON(fee)
}

func (h *FeeHandler) Delete(c *fiber.Ctx) error {
	approvedBy, _ := c.Locals("user_full_name").(string)
	if err := h.service.DeleteFee(c.Context(), c.Params("id"), approvedBy); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

func (h *FeeHandler) Get(c *fiber.Ctx) error {
	fee, err := h.service.GetFee(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fee)
}

func (h *FeeHandler) List(c *fiber.Ctx) error {
	if c.QueryBool("include_deleted") {
		fees, err := h.service.ListFeesWithDeleted(c.Context())
		if err != nil {
			return err
		}
		return c.JSON(fees)
	}

	fees, err := h.service.ListFees(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fees)
}

func (h *FeeHandler) ListResident(c *fiber.Ctx) error {
	fees, err := h.service.ListResidentFees(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fees)
}

func (h *FeeHandler) History(c *fiber.Ctx) error {
	history, err := h.service.GetFeeHistory(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(history)
}

package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/smartparking/internal/domain"
	"github.com/seu-repo/smartparking/internal/ports"
)

type ParkingOrderHandler struct {
	service ports.OrderService
	log     *zap.Logger
}

func NewParkingOrderHandler(service ports.OrderService, log *zap.Logger) *ParkingOrderHandler {
	return &ParkingOrderHandler{
		service: service,
		log:     log,
	}
}

type CreateOrderRequest struct {
	BikeID        string `json:"bike_id"`
	ParkingTypeID string `json:"parking_type_id"`
}

func (h *ParkingOrderHandler) Preview(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	quote, err := h.service.PreviewOrder(c.Context(), req.BikeID, req.ParkingTypeID)
	if err != nil {
		return err
	}
	return c.JSON(quote)
}

func (h *ParkingOrderHandler) Create(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	order, err := h.service.CreateOrder(c.Context(), req.BikeID, req.ParkingTypeID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

func (h *ParkingOrderHandler) Cancel(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.CancelOrder(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "canceled"})
}

func (h *ParkingOrderHandler) Get(c *fiber.Ctx) error {
	order, err := h.service.GetOrder(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(order)
}

// List serves the admin order listing with optional status and
// creation-date filters (date_start/date_end, YYYY-MM-DD).
func (h *ParkingOrderHandler) List(c *fiber.Ctx) error {
	filter := domain.OrderFilter{
		Status: domain.OrderStatus(c.Query("status")),
	}
	if v := c.Query("date_start"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date_start"})
		}
		filter.DateStart = t
	}
	if v := c.Query("date_end"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date_end"})
		}
		filter.DateEnd = t.AddDate(0, 0, 1)
	}

	orders, err := h.service.ListOrders(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(orders)
}

func (h *ParkingOrderHandler) ListByBike(c *fiber.Ctx) error {
	orders, err := h.service.ListOrdersByBike(c.Context(), c.Params("bikeId"))
	if err != nil {
		return err
	}
	return c.JSON(orders)
}

func (h *ParkingOrderHandler) ListPendingByBike(c *fiber.Ctx) error {
	orders, err := h.service.ListPendingOrdersByBike(c.Context(), c.Params("bikeId"))
	if err != nil {
		return err
	}
	return c.JSON(orders)
}

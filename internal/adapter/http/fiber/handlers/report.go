package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/smartparking/internal/domain"
	"github.com/seu-repo/smartparking/internal/ports"
)

type ReportHandler struct {
	service ports.ReportService
	log     *zap.Logger
}

func NewReportHandler(service ports.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log,
	}
}

// Summary aggregates the individual report figures into one response so the
// dashboard needs a single call.
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return err
	}

	ctx := c.Context()
	checkins, err := h.service.TotalCheckins(ctx, from, to)
	if err != nil {
		return err
	}
	checkouts, err := h.service.TotalCheckouts(ctx, from, to)
	if err != nil {
		return err
	}
	income, err := h.service.TotalGuestIncome(ctx, from, to)
	if err != nil {
		return err
	}
	byDate, err := h.service.GuestIncomeByDate(ctx, from, to)
	if err != nil {
		return err
	}

	return c.JSON(domain.ParkingReport{
		TotalCheckins:  checkins,
		TotalCheckouts: checkouts,
		GuestIncome:    income,
		IncomeByDate:   byDate,
	})
}

func (h *ReportHandler) Checkins(c *fiber.Ctx) error {
	return h.totalFigure(c, h.service.TotalCheckins)
}

func (h *ReportHandler) Checkouts(c *fiber.Ctx) error {
	return h.totalFigure(c, h.service.TotalCheckouts)
}

func (h *ReportHandler) totalFigure(c *fiber.Ctx, fn func(ctx context.Context, from, to time.Time) (int64, error)) error {
	from, to, err := parseRange(c)
	if err != nil {
		return err
	}

	total, err := fn(c.Context(), from, to)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"total": total})
}

func (h *ReportHandler) GuestIncome(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return err
	}

	income, err := h.service.TotalGuestIncome(c.Context(), from, to)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"total": income})
}

func (h *ReportHandler) GuestIncomeByDate(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return err
	}

	byDate, err := h.service.GuestIncomeByDate(c.Context(), from, to)
	if err != nil {
		return err
	}
	return c.JSON(byDate)
}

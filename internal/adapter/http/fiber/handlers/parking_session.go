package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/smartparking/internal/ports"
)

type ParkingSessionHandler struct {
	service ports.SessionService
	log     *zap.Logger
}

func NewParkingSessionHandler(service ports.SessionService, log *zap.Logger) *ParkingSessionHandler {
	return &ParkingSessionHandler{
		service: service,
		log:     log,
	}
}

type CheckInRequest struct {
	CardID          string `json:"card_id"`
	PlateNumber     string `json:"plate_number"`
	FaceImage       string `json:"face_image"`
	PlateImage      string `json:"plate_image"`
	ParkingTypeName string `json:"parking_type_name"`
}

func (h *ParkingSessionHandler) CheckIn(c *fiber.Ctx) error {
	var req CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	approvedBy, _ := c.Locals("user_full_name").(string)
	session, err := h.service.CheckIn(c.Context(), &ports.CheckInRequest{
		CardID:          req.CardID,
		PlateNumber:     req.PlateNumber,
		FaceImage:       req.FaceImage,
		PlateImage:      req.PlateImage,
		ParkingTypeName: req.ParkingTypeName,
		ApprovedBy:      approvedBy,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

type CheckOutRequest struct {
	CardID     string  `json:"card_id"`
	FaceImage  string  `json:"face_image"`
	PlateImage string  `json:"plate_image"`
	ParkingFee float64 `json:"parking_fee"`
}

func (h *ParkingSessionHandler) CheckOut(c *fiber.Ctx) error {
	var req CheckOutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	session, err := h.service.CheckOut(c.Context(), &ports.CheckOutRequest{
		SessionID:  c.Params("id"),
		CardID:     req.CardID,
		FaceImage:  req.FaceImage,
		PlateImage: req.PlateImage,
		ParkingFee: req.ParkingFee,
	})
	if err != nil {
		return err
	}
	return c.JSON(session)
}

type EvaluateRequest struct {
	CardID    string `json:"card_id"`
	FaceImage string `json:"face_image"`
}

func (h *ParkingSessionHandler) EvaluateGuest(c *fiber.Ctx) error {
	var req EvaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	eval, err := h.service.EvaluateGuest(c.Context(), req.CardID, req.FaceImage)
	if err != nil {
		return err
	}
	return c.JSON(eval)
}

func (h *ParkingSessionHandler) EvaluateOwner(c *fiber.Ctx) error {
	var req EvaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	eval, err := h.service.EvaluateOwner(c.Context(), req.CardID, req.FaceImage)
	if err != nil {
		return err
	}
	return c.JSON(eval)
}

func (h *ParkingSessionHandler) Get(c *fiber.Ctx) error {
	session, err := h.service.GetSession(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(session)
}

func (h *ParkingSessionHandler) List(c *fiber.Ctx) error {
	sessions, err := h.service.ListSessions(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(sessions)
}

// ListByPlate serves the admin plate history; from/to are required
// YYYY-MM-DD query params.
func (h *ParkingSessionHandler) ListByPlate(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return err
	}

	sessions, err := h.service.ListSessionsByPlate(c.Context(), c.Params("plate"), from, to)
	if err != nil {
		return err
	}
	return c.JSON(sessions)
}

// ListMyHistory is the resident-facing variant, restricted to the caller's
// own bikes.
func (h *ParkingSessionHandler) ListMyHistory(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return err
	}

	userID, _ := c.Locals("user_id").(string)
	sessions, err := h.service.ListSessionsByPlateForUser(c.Context(), userID, c.Params("plate"), from, to)
	if err != nil {
		return err
	}
	return c.JSON(sessions)
}

func parseRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Invalid or missing 'from' date")
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Invalid or missing 'to' date")
	}
	return from, to.AddDate(0, 0, 1), nil
}

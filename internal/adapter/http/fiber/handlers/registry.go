package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/smartparking/internal/domain"
	"github.com/seu-repo/smartparking/internal/ports"
)

// RegistryHandler serves the admin reference-data surface: bikes, user
// accounts, owners, cards and parking types.
type RegistryHandler struct {
	service ports.RegistryService
	log     *zap.Logger
}

func NewRegistryHandler(service ports.RegistryService, log *zap.Logger) *RegistryHandler {
	return &RegistryHandler{
		service: service,
		log:     log,
	}
}

type CreateBikeRequest struct {
	PlateNumber string `json:"plate_number"`
	UserID      string `json:"user_id"`
}

func (h *RegistryHandler) CreateBike(c *fiber.Ctx) error {
	var req CreateBikeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	bike, err := h.service.CreateBike(c.Context(), req.PlateNumber, req.UserID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(bike)
}

func (h *RegistryHandler) GetBike(c *fiber.Ctx) error {
	bike, err := h.service.GetBike(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(bike)
}

func (h *RegistryHandler) ListBikes(c *fiber.Ctx) error {
	bikes, err := h.service.ListBikes(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(bikes)
}

func (h *RegistryHandler) ListMyBikes(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	bikes, err := h.service.ListBikesForUser(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(bikes)
}

func (h *RegistryHandler) ActivateBike(c *fiber.Ctx) error {
	bike, err := h.service.SetBikeStatus(c.Context(), c.Params("id"), domain.BikeStatusActive)
	if err != nil {
		return err
	}
	return c.JSON(bike)
}

func (h *RegistryHandler) DeactivateBike(c *fiber.Ctx) error {
	bike, err := h.service.SetBikeStatus(c.Context(), c.Params("id"), domain.BikeStatusInactive)
	if err != nil {
		return err
	}
	return c.JSON(bike)
}

type CreateSecurityAccountRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

func (h *RegistryHandler) CreateSecurityAccount(c *fiber.Ctx) error {
	var req CreateSecurityAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	user, err := h.service.CreateSecurityAccount(c.Context(), req.FullName, req.Email)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *RegistryHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.service.GetUser(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(user)
}

func (h *RegistryHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.service.ListUsers(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

func (h *RegistryHandler) ActivateUser(c *fiber.Ctx) error {
	user, err := h.service.SetUserStatus(c.Context(), c.Params("id"), "active")
	if err != nil {
		return err
	}
	return c.JSON(user)
}

func (h *RegistryHandler) DeactivateUser(c *fiber.Ctx) error {
	user, err := h.service.SetUserStatus(c.Context(), c.Params("id"), "inactive")
	if err != nil {
		return err
	}
	return c.JSON(user)
}

type RegisterOwnerRequest struct {
	PlateNumber  string `json:"plate_number"`
	FullName     string `json:"full_name"`
	Gender       string `json:"gender"`
	Relationship string `json:"relationship"`
	FaceImage    string `json:"face_image"`
}

func (h *RegistryHandler) RegisterOwner(c *fiber.Ctx) error {
	var req RegisterOwnerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	owner, err := h.service.RegisterOwner(c.Context(), &ports.RegisterOwnerRequest{
		PlateNumber:  req.PlateNumber,
		FullName:     req.FullName,
		Gender:       req.Gender,
		Relationship: req.Relationship,
		FaceImage:    req.FaceImage,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(owner)
}

func (h *RegistryHandler) ListOwnersByPlate(c *fiber.Ctx) error {
	plate := c.Query("plate_number")
	if plate == "" {
		return fiber.NewError(fiber.StatusBadRequest, "plate_number is required")
	}

	owners, err := h.service.ListOwnersByPlate(c.Context(), plate)
	if err != nil {
		return err
	}
	return c.JSON(owners)
}

type AssignCardRequest struct {
	CardID        string `json:"card_id"`
	BikeID        string `json:"bike_id"`
	ParkingTypeID string `json:"parking_type_id"`
}

func (h *RegistryHandler) AssignCard(c *fiber.Ctx) error {
	var req AssignCardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	card, err := h.service.AssignCard(c.Context(), req.CardID, req.BikeID, req.ParkingTypeID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(card)
}

func (h *RegistryHandler) RevokeCard(c *fiber.Ctx) error {
	card, err := h.service.RevokeCard(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(card)
}

func (h *RegistryHandler) ListCardsByBike(c *fiber.Ctx) error {
	cards, err := h.service.ListCardsByBike(c.Context(), c.Params("bikeId"))
	if err != nil {
		return err
	}
	return c.JSON(cards)
}

type ParkingTypeRequest struct {
	Name     string  `json:"name"`
	Fee      float64 `json:"fee"`
	Interval string  `json:"interval"`
}

func (h *RegistryHandler) CreateParkingType(c *fiber.Ctx) error {
	var req ParkingTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	pt, err := h.service.CreateParkingType(c.Context(), req.Name, req.Fee, domain.BillingInterval(req.Interval))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(pt)
}

func (h *RegistryHandler) UpdateParkingType(c *fiber.Ctx) error {
	var req ParkingTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	pt, err := h.service.UpdateParkingType(c.Context(), c.Params("id"), req.Name, req.Fee, domain.BillingInterval(req.Interval))
	if err != nil {
		return err
	}
	return c.JSON(pt)
}

func (h *RegistryHandler) ActivateParkingType(c *fiber.Ctx) error {
	pt, err := h.service.SetParkingTypeActive(c.Context(), c.Params("id"), true)
	if err != nil {
		return err
	}
	return c.JSON(pt)
}

func (h *RegistryHandler) DeactivateParkingType(c *fiber.Ctx) error {
	pt, err := h.service.SetParkingTypeActive(c.Context(), c.Params("id"), false)
	if err != nil {
		return err
	}
	return c.JSON(pt)
}

func (h *RegistryHandler) ListParkingTypes(c *fiber.Ctx) error {
	types, err := h.service.ListParkingTypes(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(types)
}

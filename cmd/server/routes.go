package main

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/smartparking/internal/adapter/http/fiber/handlers"
	"github.com/seu-repo/smartparking/internal/adapter/http/fiber/middleware"
	"github.com/seu-repo/smartparking/internal/domain"
	"github.com/seu-repo/smartparking/internal/ports"
	"github.com/seu-repo/smartparking/internal/service/auth"
)

type routeServices struct {
	orders        ports.OrderService
	sessions      ports.SessionService
	fees          ports.FeeService
	payments      ports.PaymentService
	reports       ports.ReportService
	notifications ports.NotificationService
	registry      ports.RegistryService
}

// registerRoutes wires the /api/v1 surface. Three audiences: residents
// (any authenticated user), gate staff (security role) and admins.
func registerRoutes(app *fiber.App, jwtService *auth.JWTService, logger *zap.Logger, svc routeServices) {
	orderHandler := handlers.NewParkingOrderHandler(svc.orders, logger)
	sessionHandler := handlers.NewParkingSessionHandler(svc.sessions, logger)
	feeHandler := handlers.NewFeeHandler(svc.fees, logger)
	paymentHandler := handlers.NewPaymentHandler(svc.payments, logger)
	reportHandler := handlers.NewReportHandler(svc.reports, logger)
	jobsHandler := handlers.NewJobsHandler(svc.orders, svc.notifications, logger)
	notificationHandler := handlers.NewNotificationHandler(svc.notifications, logger)
	registryHandler := handlers.NewRegistryHandler(svc.registry, logger)

	v1 := app.Group("/api/v1", middleware.AuthRequired(jwtService))

	adminOnly := middleware.RequireRoles(string(domain.UserRoleAdmin))
	gateStaff := middleware.RequireRoles(string(domain.UserRoleAdmin), string(domain.UserRoleSecurity))

	// Resident routes
	v1.Post("/orders/preview", orderHandler.Preview)
	v1.Post("/orders", orderHandler.Create)
	v1.Get("/orders/:id", orderHandler.Get)
	v1.Post("/orders/:id/cancel", orderHandler.Cancel)
	v1.Get("/bikes/:bikeId/orders", orderHandler.ListByBike)
	v1.Get("/bikes/:bikeId/orders/pending", orderHandler.ListPendingByBike)
	v1.Get("/fees/resident", feeHandler.ListResident)
	v1.Get("/my/sessions/:plate", sessionHandler.ListMyHistory)
	v1.Get("/my/bikes", registryHandler.ListMyBikes)
	v1.Get("/my/notifications", notificationHandler.ListMine)

	// Gate terminal routes
	security := v1.Group("/gate", gateStaff)
	security.Post("/checkin", sessionHandler.CheckIn)
	security.Post("/sessions/:id/checkout", sessionHandler.CheckOut)
	security.Post("/evaluate/guest", sessionHandler.EvaluateGuest)
	security.Post("/evaluate/owner", sessionHandler.EvaluateOwner)
	security.Post("/payments", paymentHandler.Process)

	// Admin routes
	admin := v1.Group("/admin", adminOnly)
	admin.Get("/orders", orderHandler.List)
	admin.Get("/sessions", sessionHandler.List)
	admin.Get("/sessions/:id", sessionHandler.Get)
	admin.Get("/sessions/plate/:plate", sessionHandler.ListByPlate)
	admin.Post("/fees", feeHandler.Create)
	admin.Get("/fees", feeHandler.List)
	admin.Get("/fees/:id", feeHandler.Get)
	admin.Put("/fees/:id", feeHandler.Update)
	admin.Delete("/fees/:id", feeHandler.Delete)
	admin.Get("/fees/:id/history", feeHandler.History)
	admin.Get("/payments", paymentHandler.List)
	admin.Get("/orders/:orderId/payments", paymentHandler.ListByOrder)
	admin.Get("/reports/summary", reportHandler.Summary)
	admin.Get("/reports/checkins", reportHandler.Checkins)
	admin.Get("/reports/checkouts", reportHandler.Checkouts)
	admin.Get("/reports/guest-income", reportHandler.GuestIncome)
	admin.Get("/reports/guest-income/daily", reportHandler.GuestIncomeByDate)
	admin.Post("/bikes", registryHandler.CreateBike)
	admin.Get("/bikes", registryHandler.ListBikes)
	admin.Get("/bikes/:id", registryHandler.GetBike)
	admin.Post("/bikes/:id/activate", registryHandler.ActivateBike)
	admin.Post("/bikes/:id/deactivate", registryHandler.DeactivateBike)
	admin.Get("/bikes/:bikeId/cards", registryHandler.ListCardsByBike)
	admin.Post("/users/security", registryHandler.CreateSecurityAccount)
	admin.Get("/users", registryHandler.ListUsers)
	admin.Get("/users/:id", registryHandler.GetUser)
	admin.Post("/users/:id/activate", registryHandler.ActivateUser)
	admin.Post("/users/:id/deactivate", registryHandler.DeactivateUser)
	admin.Post("/owners", registryHandler.RegisterOwner)
	admin.Get("/owners", registryHandler.ListOwnersByPlate)
	admin.Post("/cards", registryHandler.AssignCard)
	admin.Post("/cards/:id/revoke", registryHandler.RevokeCard)
	admin.Post("/parking-types", registryHandler.CreateParkingType)
	admin.Get("/parking-types", registryHandler.ListParkingTypes)
	admin.Put("/parking-types/:id", registryHandler.UpdateParkingType)
	admin.Post("/parking-types/:id/activate", registryHandler.ActivateParkingType)
	admin.Post("/parking-types/:id/deactivate", registryHandler.DeactivateParkingType)
	admin.Post("/jobs/renewals", jobsHandler.RunRenewals)
	admin.Post("/jobs/overdue-cancellations", jobsHandler.RunOverdueCancellation)
	admin.Post("/jobs/expiration-notifications", jobsHandler.RunExpirationNotifications)
}

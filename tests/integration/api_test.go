package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/smartparking/internal/adapter/cache"
	"github.com/seu-repo/smartparking/internal/adapter/http/fiber/handlers"
	"github.com/seu-repo/smartparking/internal/adapter/http/fiber/middleware"
	"github.com/seu-repo/smartparking/internal/domain"
	"github.com/seu-repo/smartparking/internal/mocks"
	"github.com/seu-repo/smartparking/internal/service/auth"
)

func setupTestApp(t *testing.T, orders *mocks.MockOrderService) (*fiber.App, *auth.JWTService) {
	t.Helper()

	logger, _ := zap.NewDevelopment()
	jwtService := auth.NewJWTService("integration-test-secret", 15*time.Minute, time.Hour, cache.NewLocalCache(time.Minute, logger), logger)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(logger),
	})

	orderHandler := handlers.NewParkingOrderHandler(orders, logger)

	v1 := app.Group("/api/v1", middleware.AuthRequired(jwtService))
	v1.Get("/orders/:id", orderHandler.Get)

	admin := v1.Group("/admin", middleware.RequireRoles("admin"))
	admin.Get("/orders", orderHandler.List)

	return app, jwtService
}

func bearerToken(t *testing.T, jwtService *auth.JWTService, role string) string {
	t.Helper()

	token, err := jwtService.GenerateAccessToken(&domain.User{
		ID:       "user-1",
		FullName: "Test Staff",
		Role:     domain.UserRole(role),
	})
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	return "Bearer " + token
}

// TestAPI_AuthRequired tests that protected routes reject anonymous callers
func TestAPI_AuthRequired(t *testing.T) {
	app, _ := setupTestApp(t, &mocks.MockOrderService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/abc", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to make request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", resp.StatusCode)
	}
}

// TestAPI_RoleGuard tests that admin routes reject non-admin roles
func TestAPI_RoleGuard(t *testing.T) {
	app, jwtService := setupTestApp(t, &mocks.MockOrderService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/orders", nil)
	req.Header.Set("Authorization", bearerToken(t, jwtService, "user"))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to make request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("Expected status 403, got %d", resp.StatusCode)
	}
}

// TestAPI_AdminListOrders tests the happy path through auth, role guard and handler
func TestAPI_AdminListOrders(t *testing.T) {
	orders := &mocks.MockOrderService{
		ListOrdersFunc: func(ctx context.Context, filter domain.OrderFilter) ([]domain.ParkingOrder, error) {
			return []domain.ParkingOrder{
				{ID: "order-1", Status: domain.OrderStatusActive},
			}, nil
		},
	}
	app, jwtService := setupTestApp(t, orders)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/orders", nil)
	req.Header.Set("Authorization", bearerToken(t, jwtService, "admin"))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to make request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var got []domain.ParkingOrder
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(got) != 1 || got[0].ID != "order-1" {
		t.Errorf("Unexpected order list: %+v", got)
	}
}

// TestAPI_ErrorTaxonomy tests the domain-error to status-code mapping
func TestAPI_ErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"NotFound", fmt.Errorf("order not found: %w", domain.ErrNotFound), http.StatusNotFound},
		{"Conflict", fmt.Errorf("order already canceled: %w", domain.ErrConflict), http.StatusConflict},
		{"Validation", fmt.Errorf("order id is required: %w", domain.ErrValidation), http.StatusBadRequest},
		{"Unknown", fmt.Errorf("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := &mocks.MockOrderService{
				GetOrderFunc: func(ctx context.Context, id string) (*domain.ParkingOrder, error) {
					return nil, tt.err
				},
			}
			app, jwtService := setupTestApp(t, orders)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/abc", nil)
			req.Header.Set("Authorization", bearerToken(t, jwtService, "user"))

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("Failed to make request: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantCode {
				t.Errorf("Expected status %d, got %d", tt.wantCode, resp.StatusCode)
			}

			if tt.wantCode == http.StatusInternalServerError {
				var body map[string]string
				if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
					t.Fatalf("Failed to decode body: %v", err)
				}
				if body["error"] != "Internal server error" {
					t.Errorf("Expected generic error body, got %q", body["error"])
				}
			}
		})
	}
}

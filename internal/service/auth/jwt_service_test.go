package auth

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/smartparking/internal/domain"
	"github.com/seu-repo/smartparking/internal/mocks"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func testUser() *domain.User {
	return &domain.User{
		ID:       "user-123",
		FullName: "Nguyen Van A",
		Email:    "a@example.com",
		Role:     domain.UserRoleSecurity,
	}
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service := NewJWTService("test-secret-key", time.Hour, 24*time.Hour, mocks.NewMockCache(), newTestLogger())

	// Act
	token, err := service.GenerateAccessToken(testUser())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	claims, err := service.ValidateToken(ctx, token)

	// Assert
	if err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	if claims.Subject != "user-123" {
		t.Errorf("expected subject 'user-123', got '%s'", claims.Subject)
	}
	if claims.FullName != "Nguyen Van A" {
		t.Errorf("expected full name carried in claims, got '%s'", claims.FullName)
	}
	if claims.Role != string(domain.UserRoleSecurity) {
		t.Errorf("expected security role, got '%s'", claims.Role)
	}
	if claims.Type != "access" {
		t.Errorf("expected access type, got '%s'", claims.Type)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	// Arrange
	ctx := context.Background()
	issuer := NewJWTService("secret-a", time.Hour, 24*time.Hour, mocks.NewMockCache(), newTestLogger())
	verifier := NewJWTService("secret-b", time.Hour, 24*time.Hour, mocks.NewMockCache(), newTestLogger())

	token, err := issuer.GenerateAccessToken(testUser())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Act
	_, err = verifier.ValidateToken(ctx, token)

	// Assert
	if err == nil {
		t.Fatal("expected validation to fail with wrong secret")
	}
}

func TestValidateToken_Revoked(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service := NewJWTService("test-secret-key", time.Hour, 24*time.Hour, mocks.NewMockCache(), newTestLogger())

	token, err := service.GenerateAccessToken(testUser())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	claims, err := service.ValidateToken(ctx, token)
	if err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}

	// Act
	if err := service.RevokeToken(ctx, claims.ID); err != nil {
		t.Fatalf("expected revocation to succeed, got %v", err)
	}
	_, err = service.ValidateToken(ctx, token)

	// Assert
	if err == nil {
		t.Fatal("expected revoked token to be rejected")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service := NewJWTService("test-secret-key", time.Hour, 24*time.Hour, mocks.NewMockCache(), newTestLogger())

	// Act
	_, err := service.ValidateToken(ctx, "not-a-jwt")

	// Assert
	if err == nil {
		t.Fatal("expected error for malformed token")
	}
}

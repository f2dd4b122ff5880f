package domain

import (
	"time"
)

type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleSecurity UserRole = "security"
	UserRoleUser     UserRole = "user"
)

// User is the identity record behind bikes and notifications. Login and
// registration live in the external auth layer; the backend only resolves
// tokens to a user and role.
type User struct {
	ID       string   `json:"id" gorm:"primaryKey"`
	FullName string   `json:"full_name"`
	Email    string   `json:"email" gorm:"uniqueIndex"`
	Role     UserRole `json:"role"`
	Status   string   `json:"status"` // active, inactive

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

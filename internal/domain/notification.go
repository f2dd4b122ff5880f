package domain

import (
	"time"
)

const (
	NotificationTypeExpiration = "order_expiration"
)

// Notification is a message recorded for a user, mirrored to the message
// queue and the email provider by the notification service.
type Notification struct {
	ID      string `json:"id" gorm:"primaryKey"`
	UserID  string `json:"user_id" gorm:"index"`
	Message string `json:"message"`
	Type    string `json:"type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package domain

import (
	"time"
)

// Owner is a person authorized to ride a registered bike. The stored face
// image is the reference the gate oracle compares riders against. Owner
// listing order matters: checkout evaluation matches owners in the order
// they are returned.
type Owner struct {
	ID           string `json:"id" gorm:"primaryKey"`
	BikeID       string `json:"bike_id" gorm:"index"`
	FullName     string `json:"full_name"`
	Gender       string `json:"gender,omitempty"`
	Relationship string `json:"relationship"`
	FaceImage    string `json:"face_image,omitempty"`
	Active       bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents a profile for data transfer between layers.
type Profile struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           *string   `json:"email,omitempty"`
	DefaultLanguage string    `json:"default_language"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/scanfolio/cv-scanner/internal/extract"
)

// CV represents a confirmed CV for data transfer between layers.
type CV struct {
	ID          uuid.UUID            `json:"id"`
	ProfileID   uuid.UUID            `json:"profile_id"`
	FirstName   string               `json:"first_name"`
	LastName    string               `json:"last_name"`
	Email       string               `json:"email"`
	Phone       string               `json:"phone"`
	Location    string               `json:"location"`
	Headline    string               `json:"headline"`
	Experiences []extract.Experience `json:"experiences"`
	Educations  []extract.Education  `json:"educations"`
	Skills      []extract.Skill      `json:"skills"`
	RawText     string               `json:"raw_text,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

package model

import (
	"time"

	"github.com/google/uuid"
)

const AssetCategory = "experience"

type Experience struct {
	ID               uuid.UUID `json:"id"`
	Position         string    `json:"position"`
	Company          string    `json:"company"`
	Duration         string    `json:"duration"`
	Location         string    `json:"location"`
	Description      string    `json:"description"`
	Technologies     []string  `json:"technologies"`
	Responsibilities []string  `json:"responsibilities"`
	Website          string    `json:"website"`
	Featured         bool      `json:"featured"`
	ImageURL         string    `json:"image_url"`

	CreatedBy *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type PublicExperience struct {
	ID           uuid.UUID `json:"id"`
	Position     string    `json:"position"`
	Company      string    `json:"company"`
	Duration     string    `json:"duration"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	ImageURL     string    `json:"image_url"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"created_at"`
}

func (e *Experience) ToPublic(resolve func(string) string) *PublicExperience {
	return &PublicExperience{
		ID:           e.ID,
		Position:     e.Position,
		Company:      e.Company,
		Duration:     e.Duration,
		Location:     e.Location,
		Description:  e.Description,
		Technologies: e.Technologies,
		ImageURL:     resolve(e.ImageURL),
		Featured:     e.Featured,
		CreatedAt:    e.CreatedAt,
	}
}

package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultLevel    = "Beginner"
	DefaultCategory = "Technical"

	// AssetCategory is the upload folder for skill images.
	AssetCategory = "skills"
)

// Skill is a row of the skills table.
type Skill struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Level       string    `json:"level"`
	Category    string    `json:"category"`
	Years       int       `json:"years"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	ImageURL    string    `json:"image_url"`

	CreatedBy *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// PublicSkill is the anonymous view of a skill.
type PublicSkill struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Level       string    `json:"level"`
	Category    string    `json:"category"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
	Years       int       `json:"years"`
	ImageURL    string    `json:"image_url"`
}

// ToPublic projects the skill; resolve turns the stored image reference into a URL.
func (s *Skill) ToPublic(resolve func(string) string) *PublicSkill {
	return &PublicSkill{
		ID:          s.ID,
		Name:        s.Name,
		Level:       s.Level,
		Category:    s.Category,
		Icon:        s.Icon,
		Description: s.Description,
		Years:       s.Years,
		ImageURL:    resolve(s.ImageURL),
	}
}

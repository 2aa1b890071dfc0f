package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive = "active"

	AssetCategory = "projects"
)

type Project struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Link         string    `json:"link"`
	Technologies []string  `json:"technologies"`
	Status       string    `json:"status"`
	Featured     bool      `json:"featured"`
	ImageURL     string    `json:"image_url"`

	CreatedBy *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// IsPublic reports whether anonymous visitors may see the project.
func (p *Project) IsPublic() bool {
	return p.Status == StatusActive
}

type PublicProject struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Link         string    `json:"link"`
	Technologies []string  `json:"technologies"`
	ImageURL     string    `json:"image_url"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"created_at"`
}

func (p *Project) ToPublic(resolve func(string) string) *PublicProject {
	return &PublicProject{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Link:         p.Link,
		Technologies: p.Technologies,
		ImageURL:     resolve(p.ImageURL),
		Featured:     p.Featured,
		CreatedAt:    p.CreatedAt,
	}
}

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const AssetCategory = "education"

// Education is one degree or course of study.
// StartDate and EndDate are free text such as "2019-09" or "Present".
type Education struct {
	ID           uuid.UUID        `json:"id"`
	Degree       string           `json:"degree"`
	Institution  string           `json:"institution"`
	FieldOfStudy string           `json:"field_of_study"`
	StartDate    string           `json:"start_date"`
	EndDate      string           `json:"end_date"`
	Description  string           `json:"description"`
	Courses      []string         `json:"courses"`
	GPA          *decimal.Decimal `json:"gpa"`
	Website      string           `json:"website"`
	Featured     bool             `json:"featured"`
	ImageURL     string           `json:"image_url"`

	CreatedBy *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type PublicEducation struct {
	ID           uuid.UUID `json:"id"`
	Degree       string    `json:"degree"`
	Institution  string    `json:"institution"`
	FieldOfStudy string    `json:"field_of_study"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"created_at"`
}

func (e *Education) ToPublic(resolve func(string) string) *PublicEducation {
	return &PublicEducation{
		ID:           e.ID,
		Degree:       e.Degree,
		Institution:  e.Institution,
		FieldOfStudy: e.FieldOfStudy,
		StartDate:    e.StartDate,
		EndDate:      e.EndDate,
		Description:  e.Description,
		ImageURL:     resolve(e.ImageURL),
		Featured:     e.Featured,
		CreatedAt:    e.CreatedAt,
	}
}

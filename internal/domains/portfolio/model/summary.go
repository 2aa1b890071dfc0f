package model

import (
	"time"

	"github.com/google/uuid"
)

// Summary is the public one-request overview of the whole portfolio.
type Summary struct {
	Skills       []SkillSummary       `json:"skills"`
	Projects     []ProjectSummary     `json:"projects"`
	Education    []EducationSummary   `json:"education"`
	Experience   []ExperienceSummary  `json:"experience"`
	Certificates []CertificateSummary `json:"certificates"`
	Blog         []BlogSummary        `json:"blog"`
}

type SkillSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Level string    `json:"level"`
}

type ProjectSummary struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
}

type EducationSummary struct {
	ID          uuid.UUID `json:"id"`
	Degree      string    `json:"degree"`
	Institution string    `json:"institution"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
}

type ExperienceSummary struct {
	ID       uuid.UUID `json:"id"`
	Position string    `json:"position"`
	Company  string    `json:"company"`
	Duration string    `json:"duration"`
}

type CertificateSummary struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Issuer    string     `json:"issuer"`
	IssueDate *time.Time `json:"issue_date"`
}

type BlogSummary struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Slug    string    `json:"slug"`
	Excerpt string    `json:"excerpt"`
	Date    time.Time `json:"date"`
}

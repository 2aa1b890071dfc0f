package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "Active"
	StatusExpired  = "Expired"
	StatusPending  = "Pending"
	StatusArchived = "Archived"

	DefaultCategory = "Cloud Computing"
	DefaultLevel    = "Professional"
	DefaultPriority = "Medium"

	// ExpiringSoonDays is the window in which an expiry is flagged.
	ExpiringSoonDays = 30

	AssetCategory = "certificates"
)

var (
	Statuses   = []interface{}{StatusActive, StatusExpired, StatusPending, StatusArchived}
	Levels     = []interface{}{"Foundation", "Associate", "Professional", "Expert", "Specialty"}
	Priorities = []interface{}{"Low", "Medium", "High", "Critical"}
)

type Certificate struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Issuer        string     `json:"issuer"`
	IssueDate     *time.Time `json:"issue_date"`
	ExpiryDate    *time.Time `json:"expiry_date"`
	CredentialID  string     `json:"credential_id"`
	CredentialURL string     `json:"credential_url"`
	Category      string     `json:"category"`
	Status        string     `json:"status"`
	Description   string     `json:"description"`
	Level         string     `json:"level"`
	Icon          string     `json:"icon"`
	Priority      string     `json:"priority"`
	Skills        []string   `json:"skills"`
	ImageURL      string     `json:"image_url"`

	CreatedBy *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Computed on every read, never stored.
	DaysUntilExpiry *int `json:"days_until_expiry"`
	IsExpiringSoon  bool `json:"is_expiring_soon"`
	SkillCount      int  `json:"skill_count"`
}

// DaysUntil counts whole calendar days (UTC) from now to expiry.
func DaysUntil(expiry, now time.Time) int {
	e := expiry.UTC()
	n := now.UTC()
	eDay := time.Date(e.Year(), e.Month(), e.Day(), 0, 0, 0, 0, time.UTC)
	nDay := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
	return int(eDay.Sub(nDay).Hours() / 24)
}

// Annotate fills the read-time fields relative to now.
func (c *Certificate) Annotate(now time.Time) *Certificate {
	c.SkillCount = len(c.Skills)
	c.DaysUntilExpiry = nil
	c.IsExpiringSoon = false
	if c.ExpiryDate != nil {
		days := DaysUntil(*c.ExpiryDate, now)
		c.DaysUntilExpiry = &days
		c.IsExpiringSoon = days > 0 && days <= ExpiringSoonDays
	}
	return c
}

type PublicCertificate struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Issuer          string     `json:"issuer"`
	IssueDate       *time.Time `json:"issue_date"`
	ExpiryDate      *time.Time `json:"expiry_date"`
	CredentialID    string     `json:"credential_id"`
	CredentialURL   string     `json:"credential_url"`
	Category        string     `json:"category"`
	Status          string     `json:"status"`
	Description     string     `json:"description"`
	Level           string     `json:"level"`
	Icon            string     `json:"icon"`
	Priority        string     `json:"priority"`
	Skills          []string   `json:"skills"`
	ImageURL        string     `json:"image_url"`
	DaysUntilExpiry *int       `json:"days_until_expiry"`
	IsExpiringSoon  bool       `json:"is_expiring_soon"`
}

// ToPublic expects an annotated certificate.
func (c *Certificate) ToPublic(resolve func(string) string) *PublicCertificate {
	return &PublicCertificate{
		ID:              c.ID,
		Name:            c.Name,
		Issuer:          c.Issuer,
		IssueDate:       c.IssueDate,
		ExpiryDate:      c.ExpiryDate,
		CredentialID:    c.CredentialID,
		CredentialURL:   c.CredentialURL,
		Category:        c.Category,
		Status:          c.Status,
		Description:     c.Description,
		Level:           c.Level,
		Icon:            c.Icon,
		Priority:        c.Priority,
		Skills:          c.Skills,
		ImageURL:        resolve(c.ImageURL),
		DaysUntilExpiry: c.DaysUntilExpiry,
		IsExpiringSoon:  c.IsExpiringSoon,
	}
}

// NameCount is one bucket of a group-by.
type NameCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type Stats struct {
	Total        int64       `json:"total"`
	Active       int64       `json:"active"`
	Expired      int64       `json:"expired"`
	Pending      int64       `json:"pending"`
	ExpiringSoon int64       `json:"expiring_soon"`
	Categories   []NameCount `json:"categories"`
	Levels       []NameCount `json:"levels"`
}

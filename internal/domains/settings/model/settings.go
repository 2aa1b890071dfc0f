package model

import (
	"errors"
	"time"
)

var ErrSettingsNotFound = errors.New("settings not found")

var Themes = []interface{}{"light", "dark", "system"}

type ContactInfo struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Settings is the site-wide singleton document.
type Settings struct {
	SiteTitle       string            `json:"site_title"`
	Theme           string            `json:"theme"`
	MaintenanceMode bool              `json:"maintenance_mode"`
	Social          map[string]string `json:"social"`
	ContactInfo     ContactInfo       `json:"contact_info"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// Defaults is the document written when none exists.
func Defaults() *Settings {
	return &Settings{
		SiteTitle: "Your Portfolio",
		Theme:     "light",
		Social: map[string]string{
			"github":   "",
			"linkedin": "",
			"twitter":  "",
		},
	}
}

// PublicContact is served by the public contact-info endpoint.
type PublicContact struct {
	ContactInfo ContactInfo       `json:"contact_info"`
	Social      map[string]string `json:"social"`
}

func (s *Settings) Contact() *PublicContact {
	social := s.Social
	if social == nil {
		social = map[string]string{}
	}
	return &PublicContact{ContactInfo: s.ContactInfo, Social: social}
}

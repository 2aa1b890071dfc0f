package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultSubject  = "No Subject"
	DefaultPlatform = "website"
)

// Message is a contact form submission. It has no public projection.
type Message struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Platform  string    `json:"platform"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Receipt is what an anonymous sender gets back.
type Receipt struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

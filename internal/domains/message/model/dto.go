package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"portfolio-backend/internal/shared/utils"
)

type ContactInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Subject  *string `json:"subject"`
	Message  *string `json:"message"`
	Platform *string `json:"platform"`
}

func (in *ContactInput) Validate() error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&in.Email, validation.Required, validation.Length(3, 255), is.EmailFormat),
		validation.Field(&in.Subject, validation.Length(0, 255)),
		validation.Field(&in.Message, validation.Required, validation.Length(1, 10000)),
		validation.Field(&in.Platform, validation.Length(0, 50)),
	)
}

func (in *ContactInput) NewMessage(now time.Time) *Message {
	return &Message{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(*in.Name),
		Email:     strings.TrimSpace(*in.Email),
		Subject:   utils.StringOrDefault(in.Subject, DefaultSubject),
		Message:   *in.Message,
		Platform:  utils.StringOrDefault(in.Platform, DefaultPlatform),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type MessageFilter struct {
	Read   *bool
	Search string
}

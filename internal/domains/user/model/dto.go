package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type LoginInput struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func (in *LoginInput) Validate() error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Email, validation.Required, validation.Length(1, 255)),
		validation.Field(&in.Password, validation.Required),
	)
}

type LoginResult struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
	User      PublicUser `json:"user"`
}

// AdminSeed is the credential the first admin is created with.
type AdminSeed struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in *AdminSeed) Validate() error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Username, validation.Required, validation.Length(1, 100)),
		validation.Field(&in.Email, validation.Required, validation.Length(1, 255), is.EmailFormat),
		validation.Field(&in.Password, validation.Required, validation.Length(8, 72)),
	)
}

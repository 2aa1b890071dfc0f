package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/utils"
)

type ExperienceInput struct {
	Position         *string  `json:"position"`
	Company          *string  `json:"company"`
	Duration         *string  `json:"duration"`
	Location         *string  `json:"location"`
	Description      *string  `json:"description"`
	Technologies     []string `json:"technologies"`
	Responsibilities []string `json:"responsibilities"`
	Website          *string  `json:"website"`
	Featured         *bool    `json:"featured"`
	ImageURL         *string  `json:"image_url"`
}

func (in *ExperienceInput) ValidateCreate() error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Position, validation.Required, validation.Length(1, 255)),
		validation.Field(&in.Company, validation.Required, validation.Length(1, 255)),
		validation.Field(&in.Description, validation.Required),
		validation.Field(&in.Duration, validation.Length(0, 100)),
		validation.Field(&in.Location, validation.Length(0, 255)),
		validation.Field(&in.Website, is.URL),
		validation.Field(&in.ImageURL, storage.RefRule(AssetCategory)),
	)
}

func (in *ExperienceInput) ValidateUpdate() error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Position, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&in.Company, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&in.Description, validation.NilOrNotEmpty),
		validation.Field(&in.Duration, validation.Length(0, 100)),
		validation.Field(&in.Location, validation.Length(0, 255)),
		validation.Field(&in.Website, is.URL),
		validation.Field(&in.ImageURL, storage.RefRule(AssetCategory)),
	)
}

func (in *ExperienceInput) NewExperience(createdBy uuid.UUID, now time.Time) *Experience {
	e := &Experience{
		ID:               uuid.New(),
		Position:         *in.Position,
		Company:          *in.Company,
		Duration:         utils.StringOr(in.Duration, ""),
		Location:         utils.StringOr(in.Location, ""),
		Description:      *in.Description,
		Technologies:     utils.StringsOr(in.Technologies),
		Responsibilities: utils.StringsOr(in.Responsibilities),
		Website:          utils.StringOr(in.Website, ""),
		Featured:         utils.BoolOr(in.Featured, false),
		ImageURL:         utils.StringOr(in.ImageURL, ""),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if createdBy != uuid.Nil {
		e.CreatedBy = &createdBy
	}
	return e
}

func (in *ExperienceInput) Apply(e *Experience) bool {
	changed := utils.SetString(&e.Position, in.Position)
	changed = utils.SetString(&e.Company, in.Company) || changed
	changed = utils.SetString(&e.Duration, in.Duration) || changed
	changed = utils.SetString(&e.Location, in.Location) || changed
	changed = utils.SetString(&e.Description, in.Description) || changed
	changed = utils.SetStrings(&e.Technologies, in.Technologies) || changed
	changed = utils.SetStrings(&e.Responsibilities, in.Responsibilities) || changed
	changed = utils.SetString(&e.Website, in.Website) || changed
	changed = utils.SetBool(&e.Featured, in.Featured) || changed
	changed = utils.SetString(&e.ImageURL, in.ImageURL) || changed
	return changed
}

type ExperienceFilter struct {
	Featured *bool
	Search   string
}

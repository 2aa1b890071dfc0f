package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/utils"
)

// ProjectInput holds the sent fields of a create or update. Nil means not sent.
type ProjectInput struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Link         *string  `json:"link"`
	Technologies []string `json:"technologies"`
	Status       *string  `json:"status"`
	Featured     *bool    `json:"featured"`
	ImageURL     *string  `json:"image_url"`
}

func (in *ProjectInput) ValidateCreate() error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&in.Description, validation.Required),
		validation.Field(&in.Link, is.URL),
		validation.Field(&in.Status, validation.Length(0, 50)),
		validation.Field(&in.ImageURL, storage.RefRule(AssetCategory)),
	)
}

func (in *ProjectInput) ValidateUpdate() error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Title, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&in.Description, validation.NilOrNotEmpty),
		validation.Field(&in.Link, is.URL),
		validation.Field(&in.Status, validation.NilOrNotEmpty, validation.Length(0, 50)),
		validation.Field(&in.ImageURL, storage.RefRule(AssetCategory)),
	)
}

func (in *ProjectInput) NewProject(createdBy uuid.UUID, now time.Time) *Project {
	p := &Project{
		ID:           uuid.New(),
		Title:        *in.Title,
		Description:  *in.Description,
		Link:         utils.StringOr(in.Link, ""),
		Technologies: utils.StringsOr(in.Technologies),
		Status:       utils.StringOrDefault(in.Status, StatusActive),
		Featured:     utils.BoolOr(in.Featured, false),
		ImageURL:     utils.StringOr(in.ImageURL, ""),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if createdBy != uuid.Nil {
		p.CreatedBy = &createdBy
	}
	return p
}

func (in *ProjectInput) Apply(p *Project) bool {
	changed := utils.SetString(&p.Title, in.Title)
	changed = utils.SetString(&p.Description, in.Description) || changed
	changed = utils.SetString(&p.Link, in.Link) || changed
	changed = utils.SetStrings(&p.Technologies, in.Technologies) || changed
	changed = utils.SetString(&p.Status, in.Status) || changed
	changed = utils.SetBool(&p.Featured, in.Featured) || changed
	changed = utils.SetString(&p.ImageURL, in.ImageURL) || changed
	return changed
}

type ProjectFilter struct {
	Status   string
	Featured *bool
	Search   string
}

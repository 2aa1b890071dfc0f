package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/utils"
)

// SkillInput carries the fields a create or update request sent. Nil means not sent.
type SkillInput struct {
	Name        *string `json:"name"`
	Level       *string `json:"level"`
	Category    *string `json:"category"`
	Years       *int    `json:"years"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	ImageURL    *string `json:"image_url"`
}

func (in *SkillInput) ValidateCreate() error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&in.Level, validation.Length(0, 50)),
		validation.Field(&in.Category, validation.Length(0, 100)),
		validation.Field(&in.Years, validation.Min(0), validation.Max(100)),
		validation.Field(&in.Icon, validation.Length(0, 255)),
		validation.Field(&in.ImageURL, storage.RefRule(AssetCategory)),
	)
}

func (in *SkillInput) ValidateUpdate() error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Name, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&in.Level, validation.NilOrNotEmpty, validation.Length(0, 50)),
		validation.Field(&in.Category, validation.NilOrNotEmpty, validation.Length(0, 100)),
		validation.Field(&in.Years, validation.Min(0), validation.Max(100)),
		validation.Field(&in.Icon, validation.Length(0, 255)),
		validation.Field(&in.ImageURL, storage.RefRule(AssetCategory)),
	)
}

// NewSkill builds a skill from a validated create request, filling defaults.
func (in *SkillInput) NewSkill(createdBy uuid.UUID, now time.Time) *Skill {
	s := &Skill{
		ID:          uuid.New(),
		Name:        *in.Name,
		Level:       utils.StringOrDefault(in.Level, DefaultLevel),
		Category:    utils.StringOrDefault(in.Category, DefaultCategory),
		Years:       utils.IntOr(in.Years, 0),
		Description: utils.StringOr(in.Description, ""),
		Icon:        utils.StringOr(in.Icon, ""),
		ImageURL:    utils.StringOr(in.ImageURL, ""),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if createdBy != uuid.Nil {
		s.CreatedBy = &createdBy
	}
	return s
}

// Apply merges the sent fields onto s and reports whether anything changed.
func (in *SkillInput) Apply(s *Skill) bool {
	changed := utils.SetString(&s.Name, in.Name)
	changed = utils.SetString(&s.Level, in.Level) || changed
	changed = utils.SetString(&s.Category, in.Category) || changed
	changed = utils.SetInt(&s.Years, in.Years) || changed
	changed = utils.SetString(&s.Description, in.Description) || changed
	changed = utils.SetString(&s.Icon, in.Icon) || changed
	changed = utils.SetString(&s.ImageURL, in.ImageURL) || changed
	return changed
}

// SkillFilter narrows a skill listing. Empty fields do not filter.
type SkillFilter struct {
	Category string
	Level    string
	Search   string
}

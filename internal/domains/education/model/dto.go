package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/utils"
)

// MaxGPA fits the NUMERIC(4,2) column.
var MaxGPA = decimal.NewFromInt(10)

type EducationInput struct {
	Degree       *string          `json:"degree"`
	Institution  *string          `json:"institution"`
	FieldOfStudy *string          `json:"field_of_study"`
	StartDate    *string          `json:"start_date"`
	EndDate      *string          `json:"end_date"`
	Description  *string          `json:"description"`
	Courses      []string         `json:"courses"`
	GPA          *decimal.Decimal `json:"gpa"`
	Website      *string          `json:"website"`
	Featured     *bool            `json:"featured"`
	ImageURL     *string          `json:"image_url"`
}

var gpaRule = validation.By(func(value interface{}) error {
	gpa, _ := value.(*decimal.Decimal)
	if gpa == nil {
		return nil
	}
	if gpa.IsNegative() || gpa.GreaterThan(MaxGPA) {
		return errors.New("must be between 0 and 10")
	}
	return nil
})

func (in *EducationInput) ValidateCreate() error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Degree, validation.Required, validation.Length(1, 255)),
		validation.Field(&in.Institution, validation.Required, validation.Length(1, 255)),
		validation.Field(&in.StartDate, validation.Length(0, 20)),
		validation.Field(&in.EndDate, validation.Length(0, 20)),
		validation.Field(&in.FieldOfStudy, validation.Length(0, 255)),
		validation.Field(&in.GPA, gpaRule),
		validation.Field(&in.Website, is.URL),
		validation.Field(&in.ImageURL, storage.RefRule(AssetCategory)),
	)
}

func (in *EducationInput) ValidateUpdate() error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Degree, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&in.Institution, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&in.StartDate, validation.Length(0, 20)),
		validation.Field(&in.EndDate, validation.Length(0, 20)),
		validation.Field(&in.FieldOfStudy, validation.Length(0, 255)),
		validation.Field(&in.GPA, gpaRule),
		validation.Field(&in.Website, is.URL),
		validation.Field(&in.ImageURL, storage.RefRule(AssetCategory)),
	)
}

func (in *EducationInput) NewEducation(createdBy uuid.UUID, now time.Time) *Education {
	e := &Education{
		ID:           uuid.New(),
		Degree:       *in.Degree,
		Institution:  *in.Institution,
		FieldOfStudy: utils.StringOr(in.FieldOfStudy, ""),
		StartDate:    utils.StringOr(in.StartDate, ""),
		EndDate:      utils.StringOr(in.EndDate, ""),
		Description:  utils.StringOr(in.Description, ""),
		Courses:      utils.StringsOr(in.Courses),
		GPA:          in.GPA,
		Website:      utils.StringOr(in.Website, ""),
		Featured:     utils.BoolOr(in.Featured, false),
		ImageURL:     utils.StringOr(in.ImageURL, ""),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if createdBy != uuid.Nil {
		e.CreatedBy = &createdBy
	}
	return e
}

func (in *EducationInput) Apply(e *Education) bool {
	changed := utils.SetString(&e.Degree, in.Degree)
	changed = utils.SetString(&e.Institution, in.Institution) || changed
	changed = utils.SetString(&e.FieldOfStudy, in.FieldOfStudy) || changed
	changed = utils.SetString(&e.StartDate, in.StartDate) || changed
	changed = utils.SetString(&e.EndDate, in.EndDate) || changed
	changed = utils.SetString(&e.Description, in.Description) || changed
	changed = utils.SetStrings(&e.Courses, in.Courses) || changed
	changed = utils.SetDecimal(&e.GPA, in.GPA) || changed
	changed = utils.SetString(&e.Website, in.Website) || changed
	changed = utils.SetBool(&e.Featured, in.Featured) || changed
	changed = utils.SetString(&e.ImageURL, in.ImageURL) || changed
	return changed
}

type EducationFilter struct {
	Featured *bool
	Search   string
}

package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/utils"
)

type CertificateInput struct {
	Name          *string  `json:"name"`
	Issuer        *string  `json:"issuer"`
	IssueDate     *string  `json:"issue_date"`
	ExpiryDate    *string  `json:"expiry_date"`
	CredentialID  *string  `json:"credential_id"`
	CredentialURL *string  `json:"credential_url"`
	Category      *string  `json:"category"`
	Status        *string  `json:"status"`
	Description   *string  `json:"description"`
	Level         *string  `json:"level"`
	Icon          *string  `json:"icon"`
	Priority      *string  `json:"priority"`
	Skills        []string `json:"skills"`
	ImageURL      *string  `json:"image_url"`
}

func (in *CertificateInput) rules(required ...validation.Rule) []*validation.FieldRules {
	return []*validation.FieldRules{
		validation.Field(&in.Name, append(required, validation.Length(1, 255))...),
		validation.Field(&in.Issuer, append(required, validation.Length(1, 255))...),
		validation.Field(&in.IssueDate, utils.DateRule),
		validation.Field(&in.ExpiryDate, utils.DateRule),
		validation.Field(&in.CredentialURL, is.URL),
		validation.Field(&in.Status, validation.In(Statuses...)),
		validation.Field(&in.Level, validation.In(Levels...)),
		validation.Field(&in.Priority, validation.In(Priorities...)),
		validation.Field(&in.Category, validation.Length(0, 100)),
		validation.Field(&in.CredentialID, validation.Length(0, 255)),
		validation.Field(&in.Icon, validation.Length(0, 255)),
		validation.Field(&in.ImageURL, storage.RefRule(AssetCategory)),
	}
}

func (in *CertificateInput) ValidateCreate() error {
	return validation.ValidateStruct(in, in.rules(validation.Required)...)
}

func (in *CertificateInput) ValidateUpdate() error {
	return validation.ValidateStruct(in, in.rules(validation.NilOrNotEmpty)...)
}

func (in *CertificateInput) NewCertificate(createdBy uuid.UUID, now time.Time) *Certificate {
	c := &Certificate{
		ID:            uuid.New(),
		Name:          *in.Name,
		Issuer:        *in.Issuer,
		IssueDate:     utils.DateValue(in.IssueDate),
		ExpiryDate:    utils.DateValue(in.ExpiryDate),
		CredentialID:  utils.StringOr(in.CredentialID, ""),
		CredentialURL: utils.StringOr(in.CredentialURL, ""),
		Category:      utils.StringOrDefault(in.Category, DefaultCategory),
		Status:        utils.StringOrDefault(in.Status, StatusActive),
		Description:   utils.StringOr(in.Description, ""),
		Level:         utils.StringOrDefault(in.Level, DefaultLevel),
		Icon:          utils.StringOr(in.Icon, ""),
		Priority:      utils.StringOrDefault(in.Priority, DefaultPriority),
		Skills:        utils.StringsOr(in.Skills),
		ImageURL:      utils.StringOr(in.ImageURL, ""),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if createdBy != uuid.Nil {
		c.CreatedBy = &createdBy
	}
	return c
}

func (in *CertificateInput) Apply(c *Certificate) bool {
	changed := utils.SetString(&c.Name, in.Name)
	changed = utils.SetString(&c.Issuer, in.Issuer) || changed
	changed = setDate(&c.IssueDate, in.IssueDate) || changed
	changed = setDate(&c.ExpiryDate, in.ExpiryDate) || changed
	changed = utils.SetString(&c.CredentialID, in.CredentialID) || changed
	changed = utils.SetString(&c.CredentialURL, in.CredentialURL) || changed
	changed = utils.SetString(&c.Category, in.Category) || changed
	changed = utils.SetString(&c.Status, in.Status) || changed
	changed = utils.SetString(&c.Description, in.Description) || changed
	changed = utils.SetString(&c.Level, in.Level) || changed
	changed = utils.SetString(&c.Icon, in.Icon) || changed
	changed = utils.SetString(&c.Priority, in.Priority) || changed
	changed = utils.SetStrings(&c.Skills, in.Skills) || changed
	changed = utils.SetString(&c.ImageURL, in.ImageURL) || changed
	return changed
}

// setDate applies a sent date; an empty string clears it.
func setDate(dst **time.Time, v *string) bool {
	if v == nil {
		return false
	}
	next := utils.DateValue(v)
	switch {
	case *dst == nil && next == nil:
		return false
	case *dst != nil && next != nil && (*dst).Equal(*next):
		return false
	}
	*dst = next
	return true
}

// Sort keys accepted by the listing.
const (
	SortIssueDate  = "issue_date"
	SortExpiryDate = "expiry_date"
	SortName       = "name"
	SortCreatedAt  = "created_at"
	SortPriority   = "priority"
)

var SortKeys = []string{SortIssueDate, SortExpiryDate, SortName, SortCreatedAt, SortPriority}

type CertificateFilter struct {
	Category  string
	Status    string
	Level     string
	Priority  string
	Search    string
	Sort      string
	Ascending bool
}

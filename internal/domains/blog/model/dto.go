package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/utils"
)

// MaxReadTime caps an explicit read_time, in minutes.
const MaxReadTime = 1000

// BlogPostInput holds the sent fields. Excerpt and ReadTime override the derived values.
type BlogPostInput struct {
	Title      *string  `json:"title"`
	Content    *string  `json:"content"`
	Slug       *string  `json:"slug"`
	Excerpt    *string  `json:"excerpt"`
	ReadTime   *int     `json:"read_time"`
	Date       *string  `json:"date"`
	Categories []string `json:"categories"`
	Featured   *bool    `json:"featured"`
	ImageURL   *string  `json:"image_url"`
}

func (in *BlogPostInput) rules(required ...validation.Rule) []*validation.FieldRules {
	return []*validation.FieldRules{
		validation.Field(&in.Title, append(required, validation.Length(1, 255))...),
		validation.Field(&in.Content, required...),
		validation.Field(&in.Slug, validation.Length(0, 250)),
		validation.Field(&in.ReadTime, validation.Min(1), validation.Max(MaxReadTime)),
		validation.Field(&in.Date, utils.DateRule),
		validation.Field(&in.ImageURL, storage.RefRule(AssetCategory)),
	}
}

func (in *BlogPostInput) ValidateCreate() error {
	return validation.ValidateStruct(in, in.rules(validation.Required)...)
}

func (in *BlogPostInput) ValidateUpdate() error {
	return validation.ValidateStruct(in, in.rules(validation.NilOrNotEmpty)...)
}

// NewBlogPost builds a post with derived fields filled. The slug is the
// unsuffixed base; the service makes it unique.
func (in *BlogPostInput) NewBlogPost(author Author, now time.Time) *BlogPost {
	p := &BlogPost{
		ID:         uuid.New(),
		Title:      *in.Title,
		Content:    *in.Content,
		Excerpt:    utils.StringOr(in.Excerpt, utils.Excerpt(*in.Content)),
		ReadTime:   utils.IntOr(in.ReadTime, utils.ReadTime(*in.Content)),
		Date:       now,
		Categories: utils.StringsOr(in.Categories),
		Featured:   utils.BoolOr(in.Featured, false),
		AuthorName: author.Name,
		ImageURL:   utils.StringOr(in.ImageURL, ""),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	p.Slug = in.SlugBase(p.Title)
	if d := utils.DateValue(in.Date); d != nil {
		p.Date = *d
	}
	if author.ID != uuid.Nil {
		p.CreatedBy = &author.ID
	}
	return p
}

// SlugBase is the slug requested explicitly, or the one derived from title.
func (in *BlogPostInput) SlugBase(title string) string {
	if in.HasSlug() {
		return utils.GenerateSlug(*in.Slug)
	}
	return utils.GenerateSlug(title)
}

// Apply merges the sent fields onto p. Changed content recomputes the excerpt
// and read time unless the request overrides them.
func (in *BlogPostInput) Apply(p *BlogPost) bool {
	contentChanged := utils.SetString(&p.Content, in.Content)
	changed := utils.SetString(&p.Title, in.Title) || contentChanged

	if in.Excerpt != nil {
		changed = utils.SetString(&p.Excerpt, in.Excerpt) || changed
	} else if contentChanged {
		excerpt := utils.Excerpt(p.Content)
		changed = utils.SetString(&p.Excerpt, &excerpt) || changed
	}
	if in.ReadTime != nil {
		changed = utils.SetInt(&p.ReadTime, in.ReadTime) || changed
	} else if contentChanged {
		minutes := utils.ReadTime(p.Content)
		changed = utils.SetInt(&p.ReadTime, &minutes) || changed
	}

	if d := utils.DateValue(in.Date); d != nil && !d.Equal(p.Date) {
		p.Date = *d
		changed = true
	}
	changed = utils.SetStrings(&p.Categories, in.Categories) || changed
	changed = utils.SetBool(&p.Featured, in.Featured) || changed
	changed = utils.SetString(&p.ImageURL, in.ImageURL) || changed
	return changed
}

func (in *BlogPostInput) HasSlug() bool {
	return in.Slug != nil && *in.Slug != ""
}

type BlogPostFilter struct {
	Category string
	Featured *bool
	Search   string
}

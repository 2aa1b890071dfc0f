package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	// AssetCategory is the upload folder for post cover images.
	AssetCategory = "blog"

	// MaxSlugAttempts bounds the retries when a concurrent writer takes the chosen slug.
	MaxSlugAttempts = 5
)

// FallbackCategories is served while no post has a category.
var FallbackCategories = []string{"technology", "design", "business"}

type BlogPost struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Content    string    `json:"content"`
	Excerpt    string    `json:"excerpt"`
	ReadTime   int       `json:"read_time"`
	Date       time.Time `json:"date"`
	Categories []string  `json:"categories"`
	Featured   bool      `json:"featured"`
	Views      int64     `json:"views"`
	Likes      int64     `json:"likes"`
	AuthorName string    `json:"author_name"`
	ImageURL   string    `json:"image_url"`

	CreatedBy *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type PublicBlogPost struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Excerpt    string    `json:"excerpt"`
	Content    string    `json:"content"`
	ReadTime   int       `json:"read_time"`
	Date       time.Time `json:"date"`
	ImageURL   string    `json:"image_url"`
	Categories []string  `json:"categories"`
	Featured   bool      `json:"featured"`
	Views      int64     `json:"views"`
	Likes      int64     `json:"likes"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}

func (p *BlogPost) ToPublic(resolve func(string) string) *PublicBlogPost {
	return &PublicBlogPost{
		ID:         p.ID,
		Title:      p.Title,
		Slug:       p.Slug,
		Excerpt:    p.Excerpt,
		Content:    p.Content,
		ReadTime:   p.ReadTime,
		Date:       p.Date,
		ImageURL:   resolve(p.ImageURL),
		Categories: p.Categories,
		Featured:   p.Featured,
		Views:      p.Views,
		Likes:      p.Likes,
		AuthorName: p.AuthorName,
		CreatedAt:  p.CreatedAt,
	}
}

// Author is the identity a post is written under.
type Author struct {
	ID   uuid.UUID
	Name string
}

// LikeResult is returned by the like endpoint.
type LikeResult struct {
	ID    uuid.UUID `json:"id"`
	Likes int64     `json:"likes"`
}

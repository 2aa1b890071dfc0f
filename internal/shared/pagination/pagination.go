package pagination

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/apperror"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Params is a normalized page request. Page and PerPage are always >= 1.
type Params struct {
	Page    int
	PerPage int
}

func Default() Params {
	return Params{Page: DefaultPage, PerPage: DefaultPerPage}
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

func (p Params) Limit() int {
	return p.PerPage
}

// Parse normalizes raw page/per_page values.
// Empty means default, non-numeric is rejected, values below 1 fall back to the default
// and per_page is capped at MaxPerPage.
func Parse(rawPage, rawPerPage string) (Params, error) {
	p := Default()

	page, err := parseInt("page", rawPage, DefaultPage)
	if err != nil {
		return p, err
	}
	perPage, err := parseInt("per_page", rawPerPage, DefaultPerPage)
	if err != nil {
		return p, err
	}

	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	p.Page = page
	p.PerPage = perPage
	return p, nil
}

// FromQuery reads page and per_page from the request query string.
func FromQuery(c *gin.Context) (Params, error) {
	return Parse(c.Query("page"), c.Query("per_page"))
}

func parseInt(name, raw string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.BadRequest(apperror.CodeInvalidQuery, name+" must be an integer")
	}
	if n < 1 {
		return def, nil
	}
	return n, nil
}

// Page is the paginated list envelope.
type Page[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}

// NewPage builds the envelope, total_pages = ceil(total / per_page).
func NewPage[T any](items []T, total int64, p Params) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{
		Data:       items,
		Total:      total,
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalPages: TotalPages(total, p.PerPage),
	}
}

func TotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// Map projects every item while keeping the envelope counters.
func Map[T, U any](p *Page[T], fn func(T) U) *Page[U] {
	out := make([]U, len(p.Data))
	for i, item := range p.Data {
		out[i] = fn(item)
	}
	return &Page[U]{
		Data:       out,
		Total:      p.Total,
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalPages: p.TotalPages,
	}
}

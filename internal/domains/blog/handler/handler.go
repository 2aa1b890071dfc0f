package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/blog/model"
	"portfolio-backend/internal/domains/blog/service"
	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/pagination"
	"portfolio-backend/internal/shared/request"
	"portfolio-backend/internal/shared/response"
)

// =====================================================
// BLOG HANDLER
// =====================================================

type BlogHandler struct {
	blogService service.ServiceInterface
}

func NewBlogHandler(blogService service.ServiceInterface) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

func bindBlogPostInput(p *request.Payload) *model.BlogPostInput {
	return &model.BlogPostInput{
		Title:      p.String("title"),
		Content:    p.String("content"),
		Slug:       p.String("slug"),
		Excerpt:    p.String("excerpt"),
		ReadTime:   p.Int("read_time"),
		Date:       p.String("date"),
		Categories: p.Strings("categories"),
		Featured:   p.Bool("featured"),
		ImageURL:   p.String("image_url"),
	}
}

func blogFilter(c *gin.Context) (model.BlogPostFilter, error) {
	featured, err := request.QueryBool(c, "featured")
	if err != nil {
		return model.BlogPostFilter{}, err
	}
	category := request.QueryString(c, "category")
	if strings.EqualFold(category, "all") {
		category = ""
	}
	return model.BlogPostFilter{
		Category: category,
		Featured: featured,
		Search:   request.QueryString(c, "search"),
	}, nil
}

func readBlogPost(c *gin.Context) (*model.BlogPostInput, *request.Payload, error) {
	p, err := request.Read(c)
	if err != nil {
		return nil, nil, err
	}
	in := bindBlogPostInput(p)
	if err := p.Err(); err != nil {
		return nil, nil, apperror.Validation(err)
	}
	return in, p, nil
}

// author is the gated caller; posts are signed with their username.
func author(c *gin.Context) model.Author {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		return model.Author{}
	}
	return model.Author{ID: principal.ID, Name: principal.Username}
}

// =====================================================
// ADMIN ENDPOINTS
// =====================================================

// List GET /api/blog
func (h *BlogHandler) List(c *gin.Context) {
	page, err := pagination.FromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	filter, err := blogFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.blogService.List(c.Request.Context(), filter, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, result)
}

// Create POST /api/blog
func (h *BlogHandler) Create(c *gin.Context) {
	in, p, err := readBlogPost(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	image, closeImage, err := p.OpenFile("image")
	if err != nil {
		response.Error(c, err)
		return
	}
	defer closeImage()

	post, err := h.blogService.Create(c.Request.Context(), author(c), in, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Blog post created successfully", post.ID.String(), post)
}

// Get GET /api/blog/:id
func (h *BlogHandler) Get(c *gin.Context) {
	id, err := request.ParseID(c, "blog post")
	if err != nil {
		response.Error(c, err)
		return
	}

	post, err := h.blogService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, post)
}

// Update PUT /api/blog/:id
func (h *BlogHandler) Update(c *gin.Context) {
	id, err := request.ParseID(c, "blog post")
	if err != nil {
		response.Error(c, err)
		return
	}

	in, p, err := readBlogPost(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	image, closeImage, err := p.OpenFile("image")
	if err != nil {
		response.Error(c, err)
		return
	}
	defer closeImage()

	post, changed, err := h.blogService.Update(c.Request.Context(), id, in, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Updated(c, "Blog post updated successfully", changed, post)
}

// Delete DELETE /api/blog/:id
func (h *BlogHandler) Delete(c *gin.Context) {
	id, err := request.ParseID(c, "blog post")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.blogService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Blog post deleted successfully")
}

// =====================================================
// PUBLIC ENDPOINTS
// =====================================================

// ListPublic GET /api/public/blog
func (h *BlogHandler) ListPublic(c *gin.Context) {
	page, err := pagination.FromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	filter, err := blogFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.blogService.ListPublic(c.Request.Context(), filter, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, result)
}

// GetPublic GET /api/public/blog/:id
func (h *BlogHandler) GetPublic(c *gin.Context) {
	id, err := request.ParseID(c, "blog post")
	if err != nil {
		response.Error(c, err)
		return
	}

	post, err := h.blogService.GetPublic(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, post)
}

// GetPublicBySlug GET /api/public/blog/slug/:slug
func (h *BlogHandler) GetPublicBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		response.Error(c, apperror.BadRequest(apperror.CodeBadRequest, "slug is required"))
		return
	}

	post, err := h.blogService.GetPublicBySlug(c.Request.Context(), slug)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, post)
}

// Like POST /api/public/blog/:id/like
func (h *BlogHandler) Like(c *gin.Context) {
	id, err := request.ParseID(c, "blog post")
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.blogService.Like(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Categories GET /api/public/blog/categories
func (h *BlogHandler) Categories(c *gin.Context) {
	categories, err := h.blogService.Categories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, categories)
}

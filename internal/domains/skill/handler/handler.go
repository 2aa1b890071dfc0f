package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/skill/model"
	"portfolio-backend/internal/domains/skill/service"
	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/pagination"
	"portfolio-backend/internal/shared/request"
	"portfolio-backend/internal/shared/response"
)

// =====================================================
// SKILL HANDLER
// =====================================================

type SkillHandler struct {
	skillService service.ServiceInterface
}

func NewSkillHandler(skillService service.ServiceInterface) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

func bindSkillInput(p *request.Payload) *model.SkillInput {
	return &model.SkillInput{
		Name:        p.String("name"),
		Level:       p.String("level"),
		Category:    p.String("category"),
		Years:       p.Int("years"),
		Description: p.String("description"),
		Icon:        p.String("icon"),
		ImageURL:    p.String("image_url"),
	}
}

func skillFilter(c *gin.Context) model.SkillFilter {
	return model.SkillFilter{
		Category: request.QueryString(c, "category"),
		Level:    request.QueryString(c, "level"),
		Search:   request.QueryString(c, "search"),
	}
}

// =====================================================
// ADMIN ENDPOINTS
// =====================================================

// List lists skills with every field
// GET /api/skills
func (h *SkillHandler) List(c *gin.Context) {
	page, err := pagination.FromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.skillService.List(c.Request.Context(), skillFilter(c), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, result)
}

// Create creates a skill from JSON or multipart (optional "image" file)
// POST /api/skills
func (h *SkillHandler) Create(c *gin.Context) {
	// Step 1: Normalize body
	p, err := request.Read(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	in := bindSkillInput(p)
	if err := p.Err(); err != nil {
		response.Error(c, apperror.Validation(err))
		return
	}

	// Step 2: Open the optional image
	image, closeImage, err := p.OpenFile("image")
	if err != nil {
		response.Error(c, err)
		return
	}
	defer closeImage()

	// Step 3: Call service
	skill, err := h.skillService.Create(c.Request.Context(), middleware.CurrentUserID(c), in, image)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Skill created successfully", skill.ID.String(), skill)
}

// Get returns one skill
// GET /api/skills/:id
func (h *SkillHandler) Get(c *gin.Context) {
	id, err := request.ParseID(c, "skill")
	if err != nil {
		response.Error(c, err)
		return
	}

	skill, err := h.skillService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, skill)
}

// Update applies a partial update
// PUT /api/skills/:id
func (h *SkillHandler) Update(c *gin.Context) {
	id, err := request.ParseID(c, "skill")
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := request.Read(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	in := bindSkillInput(p)
	if err := p.Err(); err != nil {
		response.Error(c, apperror.Validation(err))
		return
	}

	image, closeImage, err := p.OpenFile("image")
	if err != nil {
		response.Error(c, err)
		return
	}
	defer closeImage()

	skill, changed, err := h.skillService.Update(c.Request.Context(), id, in, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Updated(c, "Skill updated successfully", changed, skill)
}

// Delete removes a skill and its image
// DELETE /api/skills/:id
func (h *SkillHandler) Delete(c *gin.Context) {
	id, err := request.ParseID(c, "skill")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.skillService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Skill deleted successfully")
}

// =====================================================
// PUBLIC ENDPOINTS
// =====================================================

// ListPublic GET /api/public/skills
func (h *SkillHandler) ListPublic(c *gin.Context) {
	page, err := pagination.FromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.skillService.ListPublic(c.Request.Context(), skillFilter(c), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, result)
}

// GetPublic GET /api/public/skills/:id
func (h *SkillHandler) GetPublic(c *gin.Context) {
	id, err := request.ParseID(c, "skill")
	if err != nil {
		response.Error(c, err)
		return
	}

	skill, err := h.skillService.GetPublic(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, skill)
}

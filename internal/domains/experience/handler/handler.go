package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/experience/model"
	"portfolio-backend/internal/domains/experience/service"
	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/pagination"
	"portfolio-backend/internal/shared/request"
	"portfolio-backend/internal/shared/response"
)

// =====================================================
// EXPERIENCE HANDLER
// =====================================================

type ExperienceHandler struct {
	experienceService service.ServiceInterface
}

func NewExperienceHandler(experienceService service.ServiceInterface) *ExperienceHandler {
	return &ExperienceHandler{experienceService: experienceService}
}

func bindExperienceInput(p *request.Payload) *model.ExperienceInput {
	return &model.ExperienceInput{
		Position:         p.String("position"),
		Company:          p.String("company"),
		Duration:         p.String("duration"),
		Location:         p.String("location"),
		Description:      p.String("description"),
		Technologies:     p.Strings("technologies"),
		Responsibilities: p.Strings("responsibilities"),
		Website:          p.String("website"),
		Featured:         p.Bool("featured"),
		ImageURL:         p.String("image_url"),
	}
}

func experienceFilter(c *gin.Context) (model.ExperienceFilter, error) {
	featured, err := request.QueryBool(c, "featured")
	if err != nil {
		return model.ExperienceFilter{}, err
	}
	return model.ExperienceFilter{
		Featured: featured,
		Search:   request.QueryString(c, "search"),
	}, nil
}

// =====================================================
// ADMIN ENDPOINTS
// =====================================================

// List lists experience with every field
// GET /api/experience
func (h *ExperienceHandler) List(c *gin.Context) {
	page, err := pagination.FromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	filter, err := experienceFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.experienceService.List(c.Request.Context(), filter, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, result)
}

// Create creates an experience entry from JSON or multipart (optional "image" file)
// POST /api/experience
func (h *ExperienceHandler) Create(c *gin.Context) {
	// Step 1: Normalize body
	p, err := request.Read(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	in := bindExperienceInput(p)
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
	experience, err := h.experienceService.Create(c.Request.Context(), middleware.CurrentUserID(c), in, image)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Experience created successfully", experience.ID.String(), experience)
}

// Get returns one experience entry
// GET /api/experience/:id
func (h *ExperienceHandler) Get(c *gin.Context) {
	id, err := request.ParseID(c, "experience")
	if err != nil {
		response.Error(c, err)
		return
	}

	experience, err := h.experienceService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, experience)
}

// Update applies a partial update
// PUT /api/experience/:id
func (h *ExperienceHandler) Update(c *gin.Context) {
	id, err := request.ParseID(c, "experience")
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := request.Read(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	in := bindExperienceInput(p)
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

	experience, changed, err := h.experienceService.Update(c.Request.Context(), id, in, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Updated(c, "Experience updated successfully", changed, experience)
}

// Delete removes an experience entry and its image
// DELETE /api/experience/:id
func (h *ExperienceHandler) Delete(c *gin.Context) {
	id, err := request.ParseID(c, "experience")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.experienceService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Experience deleted successfully")
}

// =====================================================
// PUBLIC ENDPOINTS
// =====================================================

// ListPublic GET /api/public/experience
func (h *ExperienceHandler) ListPublic(c *gin.Context) {
	page, err := pagination.FromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	filter, err := experienceFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.experienceService.ListPublic(c.Request.Context(), filter, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, result)
}

// GetPublic GET /api/public/experience/:id
func (h *ExperienceHandler) GetPublic(c *gin.Context) {
	id, err := request.ParseID(c, "experience")
	if err != nil {
		response.Error(c, err)
		return
	}

	experience, err := h.experienceService.GetPublic(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, experience)
}

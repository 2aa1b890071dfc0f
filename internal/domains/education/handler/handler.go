package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/education/model"
	"portfolio-backend/internal/domains/education/service"
	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/pagination"
	"portfolio-backend/internal/shared/request"
	"portfolio-backend/internal/shared/response"
)

// =====================================================
// EDUCATION HANDLER
// =====================================================

type EducationHandler struct {
	educationService service.ServiceInterface
}

func NewEducationHandler(educationService service.ServiceInterface) *EducationHandler {
	return &EducationHandler{educationService: educationService}
}

func bindEducationInput(p *request.Payload) *model.EducationInput {
	return &model.EducationInput{
		Degree:       p.String("degree"),
		Institution:  p.String("institution"),
		FieldOfStudy: p.String("field_of_study"),
		StartDate:    p.String("start_date"),
		EndDate:      p.String("end_date"),
		Description:  p.String("description"),
		Courses:      p.Strings("courses"),
		GPA:          p.Decimal("gpa"),
		Website:      p.String("website"),
		Featured:     p.Bool("featured"),
		ImageURL:     p.String("image_url"),
	}
}

func educationFilter(c *gin.Context) (model.EducationFilter, error) {
	featured, err := request.QueryBool(c, "featured")
	if err != nil {
		return model.EducationFilter{}, err
	}
	return model.EducationFilter{
		Featured: featured,
		Search:   request.QueryString(c, "search"),
	}, nil
}

// =====================================================
// ADMIN ENDPOINTS
// =====================================================

// List lists education with every field
// GET /api/education
func (h *EducationHandler) List(c *gin.Context) {
	page, err := pagination.FromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	filter, err := educationFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.educationService.List(c.Request.Context(), filter, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, result)
}

// Create creates an education entry from JSON or multipart (optional "image" file)
// POST /api/education
func (h *EducationHandler) Create(c *gin.Context) {
	// Step 1: Normalize body
	p, err := request.Read(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	in := bindEducationInput(p)
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
	education, err := h.educationService.Create(c.Request.Context(), middleware.CurrentUserID(c), in, image)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Education created successfully", education.ID.String(), education)
}

// Get returns one education entry
// GET /api/education/:id
func (h *EducationHandler) Get(c *gin.Context) {
	id, err := request.ParseID(c, "education")
	if err != nil {
		response.Error(c, err)
		return
	}

	education, err := h.educationService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, education)
}

// Update applies a partial update
// PUT /api/education/:id
func (h *EducationHandler) Update(c *gin.Context) {
	id, err := request.ParseID(c, "education")
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := request.Read(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	in := bindEducationInput(p)
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

	education, changed, err := h.educationService.Update(c.Request.Context(), id, in, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Updated(c, "Education updated successfully", changed, education)
}

// Delete removes an education entry and its image
// DELETE /api/education/:id
func (h *EducationHandler) Delete(c *gin.Context) {
	id, err := request.ParseID(c, "education")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.educationService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Education deleted successfully")
}

// =====================================================
// PUBLIC ENDPOINTS
// =====================================================

// ListPublic GET /api/public/education
func (h *EducationHandler) ListPublic(c *gin.Context) {
	page, err := pagination.FromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	filter, err := educationFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.educationService.ListPublic(c.Request.Context(), filter, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, result)
}

// GetPublic GET /api/public/education/:id
func (h *EducationHandler) GetPublic(c *gin.Context) {
	id, err := request.ParseID(c, "education")
	if err != nil {
		response.Error(c, err)
		return
	}

	education, err := h.educationService.GetPublic(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, education)
}

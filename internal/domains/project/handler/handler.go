package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/project/model"
	"portfolio-backend/internal/domains/project/service"
	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/pagination"
	"portfolio-backend/internal/shared/request"
	"portfolio-backend/internal/shared/response"
)

type ProjectHandler struct {
	projectService service.ServiceInterface
}

func NewProjectHandler(projectService service.ServiceInterface) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func bindProjectInput(p *request.Payload) *model.ProjectInput {
	return &model.ProjectInput{
		Title:        p.String("title"),
		Description:  p.String("description"),
		Link:         p.String("link"),
		Technologies: p.Strings("technologies"),
		Status:       p.String("status"),
		Featured:     p.Bool("featured"),
		ImageURL:     p.String("image_url"),
	}
}

func projectFilter(c *gin.Context) (model.ProjectFilter, error) {
	featured, err := request.QueryBool(c, "featured")
	if err != nil {
		return model.ProjectFilter{}, err
	}
	return model.ProjectFilter{
		Status:   request.QueryString(c, "status"),
		Featured: featured,
		Search:   request.QueryString(c, "search"),
	}, nil
}

// readProject normalizes the body; the payload still holds the optional "image" upload.
func readProject(c *gin.Context) (*model.ProjectInput, *request.Payload, error) {
	p, err := request.Read(c)
	if err != nil {
		return nil, nil, err
	}
	in := bindProjectInput(p)
	if err := p.Err(); err != nil {
		return nil, nil, apperror.Validation(err)
	}
	return in, p, nil
}

// List GET /api/projects
func (h *ProjectHandler) List(c *gin.Context) {
	page, err := pagination.FromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	filter, err := projectFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.projectService.List(c.Request.Context(), filter, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, result)
}

// Create POST /api/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	in, p, err := readProject(c)
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

	project, err := h.projectService.Create(c.Request.Context(), middleware.CurrentUserID(c), in, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Project created successfully", project.ID.String(), project)
}

// Get GET /api/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	id, err := request.ParseID(c, "project")
	if err != nil {
		response.Error(c, err)
		return
	}

	project, err := h.projectService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, project)
}

// Update PUT /api/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := request.ParseID(c, "project")
	if err != nil {
		response.Error(c, err)
		return
	}

	in, p, err := readProject(c)
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

	project, changed, err := h.projectService.Update(c.Request.Context(), id, in, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Updated(c, "Project updated successfully", changed, project)
}

// Delete DELETE /api/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := request.ParseID(c, "project")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Project deleted successfully")
}

// ListPublic GET /api/public/projects
func (h *ProjectHandler) ListPublic(c *gin.Context) {
	page, err := pagination.FromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	filter, err := projectFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.projectService.ListPublic(c.Request.Context(), filter, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, result)
}

// GetPublic GET /api/public/projects/:id
func (h *ProjectHandler) GetPublic(c *gin.Context) {
	id, err := request.ParseID(c, "project")
	if err != nil {
		response.Error(c, err)
		return
	}

	project, err := h.projectService.GetPublic(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, project)
}

package handler

import (
	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/settings/model"
	"portfolio-backend/internal/domains/settings/service"
	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/internal/shared/response"
)

type SettingsHandler struct {
	service service.Service
}

func NewSettingsHandler(s service.Service) *SettingsHandler {
	return &SettingsHandler{service: s}
}

func invalidBody() error {
	return apperror.BadRequest(apperror.CodeBadRequest, "Invalid request body")
}

// Get GET /api/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, settings)
}

// Update merges into the settings document
// PUT /api/settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var patch model.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, invalidBody())
		return
	}

	settings, err := h.service.Update(c.Request.Context(), &patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, settings)
}

// UpdateSocial merges links into settings.social
// PUT /api/social
func (h *SettingsHandler) UpdateSocial(c *gin.Context) {
	var social map[string]string
	if err := c.ShouldBindJSON(&social); err != nil {
		response.Error(c, invalidBody())
		return
	}

	settings, err := h.service.UpdateSocial(c.Request.Context(), social)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, settings.Contact())
}

// ContactInfo GET /api/public/contact-info
func (h *SettingsHandler) ContactInfo(c *gin.Context) {
	contact, err := h.service.ContactInfo(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, contact)
}

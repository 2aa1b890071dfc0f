package handler

import (
	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/portfolio/service"
	"portfolio-backend/internal/shared/response"
)

type PortfolioHandler struct {
	service service.Service
}

func NewPortfolioHandler(s service.Service) *PortfolioHandler {
	return &PortfolioHandler{service: s}
}

// Summary GET /api/public/portfolio
func (h *PortfolioHandler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, summary)
}

package handler

import (
	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/user/model"
	"portfolio-backend/internal/domains/user/service"
	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/request"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

type UserHandler struct {
	service service.Service
}

func NewUserHandler(s service.Service) *UserHandler {
	return &UserHandler{service: s}
}

// Login POST /api/login
func (h *UserHandler) Login(c *gin.Context) {
	// STEP 1: PARSE REQUEST
	p, err := request.Read(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	in := &model.LoginInput{Email: p.String("email"), Password: p.String("password")}
	if err := p.Err(); err != nil {
		response.Error(c, apperror.Validation(err))
		return
	}

	// STEP 2: AUTHENTICATE
	res, err := h.service.Login(c.Request.Context(), in)
	if err != nil {
		if apperror.KindOf(err) == apperror.KindUnauthenticated {
			logger.Info("login rejected", map[string]interface{}{"ip": middleware.ClientIP(c)})
		}
		response.Error(c, err)
		return
	}

	response.OK(c, res)
}

package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/internal/shared/pagination"
)

// Update outcomes. Both are successes.
const (
	StatusUpdated   = "updated"
	StatusNoChanges = "no_changes"
)

// ErrorBody is the error envelope.
type ErrorBody struct {
	Message string            `json:"message"`
	Code    string            `json:"code,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

type MessageBody struct {
	Message string `json:"message"`
}

type CreatedBody struct {
	Message string      `json:"message"`
	ID      string      `json:"id"`
	Data    interface{} `json:"data,omitempty"`
}

type UpdatedBody struct {
	Message string      `json:"message"`
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
}

// Error maps err to its HTTP status and aborts the chain.
// Upstream causes are logged here and never echoed to the caller.
func Error(c *gin.Context, err error) {
	appErr := apperror.From(err)
	if appErr == nil {
		appErr = apperror.Upstream(apperror.CodeInternal, nil)
	}

	if appErr.Kind == apperror.KindUpstream {
		log.Error().
			Err(appErr.Err).
			Str("request_id", c.GetString("request_id")).
			Str("code", appErr.Code).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
	}

	c.AbortWithStatusJSON(appErr.Status(), ErrorBody{
		Message: appErr.Message,
		Code:    appErr.Code,
		Details: appErr.Details,
	})
}

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Message(c *gin.Context, status int, message string) {
	c.JSON(status, MessageBody{Message: message})
}

func Created(c *gin.Context, message, id string, data interface{}) {
	c.JSON(http.StatusCreated, CreatedBody{Message: message, ID: id, Data: data})
}

// Updated reports either "updated" or "no_changes".
func Updated(c *gin.Context, message string, changed bool, data interface{}) {
	status := StatusUpdated
	if !changed {
		status = StatusNoChanges
		message = "No changes made"
	}
	c.JSON(http.StatusOK, UpdatedBody{Message: message, Status: status, Data: data})
}

func Paginated[T any](c *gin.Context, page *pagination.Page[T]) {
	c.JSON(http.StatusOK, page)
}

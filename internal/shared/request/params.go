package request

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-backend/internal/shared/apperror"
)

// ParseID parses the :id path parameter. A malformed id is a BadRequest, never a NotFound.
func ParseID(c *gin.Context, resource string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		return uuid.Nil, apperror.InvalidID(resource)
	}
	return id, nil
}

// QueryString returns the trimmed query value.
func QueryString(c *gin.Context, key string) string {
	return strings.TrimSpace(c.Query(key))
}

// QueryBool returns nil when the parameter is absent.
func QueryBool(c *gin.Context, key string) (*bool, error) {
	raw := QueryString(c, key)
	if raw == "" {
		return nil, nil
	}
	v, err := parseBool(raw)
	if err != nil {
		return nil, apperror.BadRequest(apperror.CodeInvalidQuery, key+" must be a boolean")
	}
	return &v, nil
}

// QueryEnum returns the value if it is one of allowed (case-insensitive), def when absent.
func QueryEnum(c *gin.Context, key, def string, allowed ...string) (string, error) {
	raw := strings.ToLower(QueryString(c, key))
	if raw == "" {
		return def, nil
	}
	for _, a := range allowed {
		if raw == a {
			return a, nil
		}
	}
	return "", apperror.BadRequest(apperror.CodeInvalidQuery, key+" must be one of "+strings.Join(allowed, ", "))
}

func parseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	return strconv.ParseBool(strings.TrimSpace(raw))
}

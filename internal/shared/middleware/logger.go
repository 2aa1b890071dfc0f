package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// quietPaths are polled by load balancers and would drown the access log.
var quietPaths = map[string]struct{}{
	"/api/health": {},
}

// Logger writes one access line per request. 5xx responses log at error level
// and 4xx responses at warn.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		began := time.Now()
		rawQuery := c.Request.URL.RawQuery

		c.Next()

		if _, quiet := quietPaths[c.Request.URL.Path]; quiet && len(c.Errors) == 0 {
			return
		}

		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		ev := accessEvent(status).
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("route", route).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Int("bytes", c.Writer.Size()).
			Dur("latency_ms", time.Since(began)).
			Str("ip", ClientIP(c)).
			Str("user_agent", c.Request.UserAgent())
		if rawQuery != "" {
			ev = ev.Str("query", rawQuery)
		}
		if len(c.Errors) > 0 {
			ev = ev.Str("errors", c.Errors.String())
		}
		ev.Msg("request")
	}
}

func accessEvent(status int) *zerolog.Event {
	if status >= 500 {
		return log.Error()
	}
	if status >= 400 {
		return log.Warn()
	}
	return log.Info()
}

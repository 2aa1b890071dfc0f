package middleware

import (
	"github.com/gin-gonic/gin"
)

const contextKeyClientIP = "client_ip"

// ClientIPMiddleware stores the caller's address once for the limiter and the logs.
// Proxy headers are only honoured for proxies trusted by the engine.
func ClientIPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextKeyClientIP, c.ClientIP())
		c.Next()
	}
}

// ClientIP returns the stored client address, falling back to gin's resolution.
func ClientIP(c *gin.Context) string {
	if ip := c.GetString(contextKeyClientIP); ip != "" {
		return ip
	}
	return c.ClientIP()
}

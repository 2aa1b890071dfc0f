package middleware

import "github.com/gin-gonic/gin"

// Admin gates a route to the admin role.
func (a *Authenticator) Admin() gin.HandlerFunc {
	return a.Require(RoleAdmin)
}

package handlers

import (
	"github.com/trumanharry/record-nexus-connect/internal/middleware"
	"github.com/trumanharry/record-nexus-connect/internal/models"

	"github.com/gin-gonic/gin"
)

// respondError writes a JSON error body with the given status
func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// currentUser returns the session user loaded by the middleware, or nil
func currentUser(c *gin.Context) *models.User {
	if value, exists := c.Get(middleware.CurrentUserKey); exists {
		return value.(*models.User)
	}
	return nil
}

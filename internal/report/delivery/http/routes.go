package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	projects := rg.Group("/projects")
	{
		projects.GET("/:id/reports/hours", h.Hours)
	}
}

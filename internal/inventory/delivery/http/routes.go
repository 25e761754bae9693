package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Static segments (search, stats) must be registered alongside :id; gin
// resolves them before the parameter route.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	items := rg.Group("/items")
	{
		items.POST("", h.Create)
		items.GET("", h.List)
		items.GET("/search", h.Search)
		items.GET("/stats", h.Stats)
		items.GET("/:id", h.Detail)
		items.PUT("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
	}
}

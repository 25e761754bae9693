package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The status
// route is static and must be registered alongside :id; gin resolves it
// before the parameter route.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	update := rg.Group("/update")
	{
		update.POST("", h.RefreshAll)
		update.GET("/status", h.Status)
		update.POST("/:id", h.RefreshOne)
	}
}

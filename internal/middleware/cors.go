package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Cors allows browser clients on other origins to reach the API. The API
// carries no credentials, so a wildcard origin is fine.
func (m Middleware) Cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

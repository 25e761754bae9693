package httpserver

import (
	"steaminvest/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "From SteamInvest API With Love"
	HealthVersion = "1.0.0"
	ServiceName   = "steaminvest"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check — ready once the database answers.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if err := srv.postgresDB.PingContext(c.Request.Context()); err != nil {
		srv.l.Errorf(c.Request.Context(), "readyCheck: %v", err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

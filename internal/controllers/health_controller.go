package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// ServiceName is reported by the health endpoint
const ServiceName = "gin-restaurant-api"

// Pinger reports whether a dependency is reachable
type Pinger func() error

type HealthController struct {
	pingDatabase Pinger
}

func NewHealthController(pingDatabase Pinger) *HealthController {
	return &HealthController{pingDatabase: pingDatabase}
}

// Check godoc
// @Summary Health check
// @Description Check if the service and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (hc *HealthController) Check(c *gin.Context) {
	status, database, code := "healthy", "up", http.StatusOK
	if err := hc.pingDatabase(); err != nil {
		log.WithError(err).Error("Database health check failed")
		status, database, code = "unhealthy", "down", http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":    status,
		"database":  database,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   ServiceName,
	})
}

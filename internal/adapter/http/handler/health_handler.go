package handler

import (
	"net/http"

	"wallet-backend/internal/core/ports"
	"wallet-backend/internal/service"
	"wallet-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports liveness plus the state of each dependency.
// Any unhealthy dependency turns the response into a 503.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"service":      logger.ServiceName,
			"version":      service.Version,
			"dependencies": deps,
		})
	}
}

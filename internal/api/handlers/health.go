package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/magda-harmony/internal/theory"
	"github.com/gin-gonic/gin"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"engine": gin.H{
			"modes":  theory.Modes(),
			"layers": len(theory.LayerOrder()),
		},
	})
}

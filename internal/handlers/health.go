package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version is set at build time with -ldflags "-X ...handlers.Version=...".
var Version = "dev"

// HealthCheck is GET /health.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "jobboard",
		"version": Version,
	})
}

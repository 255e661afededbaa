package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the job board endpoints on api.
func RegisterRoutes(api *gin.RouterGroup, h *JobHandler) {
	api.GET("/health", HealthCheck)

	api.GET("/jobs", h.ListJobs)
	api.POST("/jobs", h.CreateJob)
	api.POST("/jobs/extract", h.ParseJob)
}

package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/services"
)

// DraftExtractor reads a pasted job posting into a draft.
type DraftExtractor interface {
	ExtractJobDraft(ctx context.Context, rawHTML string) (*dtos.JobDraft, error)
}

type JobHandler struct {
	JobService *services.JobService
	Extractor  DraftExtractor // nil disables POST /jobs/extract
}

func NewJobHandler(jobs *services.JobService, extractor DraftExtractor) *JobHandler {
	return &JobHandler{
		JobService: jobs,
		Extractor:  extractor,
	}
}

// ListJobs is GET /jobs.
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.JobService.ListJobs(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch jobs"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// CreateJob is POST /jobs. Every failure, including a malformed body, is a 500.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post job"})
		return
	}

	job, err := h.JobService.CreateJob(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post job"})
		return
	}
	c.JSON(http.StatusOK, job)
}

// ParseJob is POST /jobs/extract.
func (h *JobHandler) ParseJob(c *gin.Context) {
	if h.Extractor == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Job extraction is not configured"})
		return
	}

	var req dtos.JobExtractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	draft, err := h.Extractor.ExtractJobDraft(c.Request.Context(), req.RawHTML)
	if err != nil {
		_ = c.Error(err)
		msg := "AI extraction failed"
		if errors.Is(err, services.ErrUnusableDraft) {
			msg = "AI extraction returned no usable job"
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    draft,
	})
}

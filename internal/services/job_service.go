package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/justsurfingit/jobboard/internal/database"
	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/events"
	"github.com/justsurfingit/jobboard/internal/logging"
	"github.com/justsurfingit/jobboard/internal/metrics"
	"github.com/justsurfingit/jobboard/internal/models"
)

// JobStore is the persistence the job service needs.
type JobStore interface {
	List(ctx context.Context) ([]models.Job, error)
	Create(ctx context.Context, job *models.Job) error
}

type JobService struct {
	Store   JobStore
	Events  events.Publisher
	Metrics *metrics.Metrics
	Log     *logging.Logger
}

// NewJobService wires the service. A nil publisher or logger is replaced by a
// no-op; a nil *metrics.Metrics records nothing.
func NewJobService(store JobStore, pub events.Publisher, m *metrics.Metrics, log *logging.Logger) *JobService {
	if pub == nil {
		pub = events.NopPublisher{}
	}
	if log == nil {
		log = logging.Nop()
	}
	return &JobService{
		Store:   store,
		Events:  pub,
		Metrics: m,
		Log:     log,
	}
}

// ListJobs returns every job, oldest first. The result is never nil.
func (s *JobService) ListJobs(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.Store.List(ctx)
	if err != nil {
		s.storeFailed("list", err)
		return nil, err
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	return jobs, nil
}

// CreateJob inserts the requested job as sent and announces it. Only the
// deadline is parsed here; everything else is left to the table.
func (s *JobService) CreateJob(ctx context.Context, req *dtos.JobCreationRequest) (*models.Job, error) {
	job := &models.Job{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Type:         req.Type,
		SalaryRange:  req.SalaryRange,
		SalaryRange2: req.SalaryRange2,
		Description:  req.Description,
		IsRemote:     req.IsRemote,
	}
	if req.ApplicationDeadline != nil {
		d, err := models.ParseDate(*req.ApplicationDeadline)
		if err != nil {
			verr := &database.ValidationError{Msg: fmt.Sprintf("applicationDeadline: %v", err), Err: err}
			s.storeFailed("create", verr)
			return nil, verr
		}
		job.ApplicationDeadline = &d
	}

	if err := s.Store.Create(ctx, job); err != nil {
		s.storeFailed("create", err)
		return nil, err
	}
	s.Metrics.JobCreated()
	s.Log.Info("job created", "id", job.ID)

	if err := s.Events.JobCreated(ctx, *job); err != nil {
		s.Log.Warn("publish job created failed", "id", job.ID, "err", err)
	}
	return job, nil
}

func (s *JobService) storeFailed(op string, err error) {
	if database.IsValidation(err) {
		s.Metrics.StoreError(op, "validation")
		s.Log.Warn("job rejected", "op", op, "err", err)
		return
	}
	kind := "unavailable"
	if !errors.Is(err, database.ErrStoreUnavailable) {
		kind = "unknown"
	}
	s.Metrics.StoreError(op, kind)
	s.Log.Error("job store failed", "op", op, "err", err)
}

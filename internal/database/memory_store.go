package database

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/justsurfingit/jobboard/internal/listing"
	"github.com/justsurfingit/jobboard/internal/models"
)

// MemoryStore keeps jobs in process and enforces the same column rules as
// the Postgres table. It backs the API when no DATABASE_URL is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	jobs []models.Job
	now  func() time.Time

	// Down makes every call fail with ErrStoreUnavailable.
	Down bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

// WithClock replaces the clock used for createdAt.
func (s *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	s.now = now
	return s
}

func (s *MemoryStore) List(ctx context.Context) ([]models.Job, error) {
	if err := s.check(ctx, "list jobs"); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Job, len(s.jobs))
	copy(out, s.jobs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) Create(ctx context.Context, job *models.Job) error {
	if err := s.check(ctx, "create job"); err != nil {
		return err
	}
	if err := validateRow(job); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if job.ID == "" {
		job.ID = uuid.NewString()
	} else if _, err := uuid.Parse(job.ID); err != nil {
		return &ValidationError{Msg: fmt.Sprintf("create job: invalid uuid %q", job.ID)}
	}
	for _, existing := range s.jobs {
		if existing.ID == job.ID {
			return &ValidationError{Msg: fmt.Sprintf("create job: duplicate id %q", job.ID)}
		}
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = s.now()
	}
	s.jobs = append(s.jobs, *job)
	return nil
}

func (s *MemoryStore) check(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w: %v", op, ErrStoreUnavailable, err)
	}
	if s.Down {
		return fmt.Errorf("%s: %w", op, ErrStoreUnavailable)
	}
	return nil
}

func validateRow(job *models.Job) error {
	if job.Title == nil {
		return &ValidationError{Msg: `create job: null value in column "title" violates not-null constraint`}
	}
	if job.Type != nil && !listing.IsValidType(*job.Type) {
		return &ValidationError{Msg: fmt.Sprintf(`create job: type %q violates check constraint "chk_jobs_type"`, *job.Type)}
	}
	for _, col := range []struct {
		name string
		val  *models.Numeric
	}{
		{"salaryRange", job.SalaryRange},
		{"salaryrange2", job.SalaryRange2},
	} {
		if col.val == nil {
			continue
		}
		if _, ok := col.val.Float(); !ok {
			return &ValidationError{Msg: fmt.Sprintf("create job: invalid input syntax for type numeric in %q: %q", col.name, string(*col.val))}
		}
	}
	return nil
}

package client

import (
	"context"
	"sync"

	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/listing"
)

// API is the part of the job board API a Board needs.
type API interface {
	List(ctx context.Context) ([]listing.Record, error)
	Create(ctx context.Context, req dtos.JobCreationRequest) (listing.Record, error)
}

// Board holds the canonical job set the listing page shows.
type Board struct {
	api  API
	norm *listing.Normalizer

	mu   sync.RWMutex
	jobs []listing.Job
}

func NewBoard(api API, norm *listing.Normalizer) *Board {
	if norm == nil {
		norm = listing.NewNormalizer()
	}
	return &Board{api: api, norm: norm, jobs: []listing.Job{}}
}

// Load replaces the held jobs with a fresh fetch. On error the previous set
// is kept.
func (b *Board) Load(ctx context.Context) error {
	recs, err := b.api.List(ctx)
	if err != nil {
		return err
	}
	jobs := b.norm.NormalizeAll(recs)

	b.mu.Lock()
	b.jobs = jobs
	b.mu.Unlock()
	return nil
}

// Create posts a job and, only if the API accepted it, puts the normalized
// result at the front of the set.
func (b *Board) Create(ctx context.Context, req dtos.JobCreationRequest) (listing.Job, error) {
	rec, err := b.api.Create(ctx, req)
	if err != nil {
		return listing.Job{}, err
	}
	job := b.norm.Normalize(rec)

	b.mu.Lock()
	b.jobs = append([]listing.Job{job}, b.jobs...)
	b.mu.Unlock()
	return job, nil
}

// Jobs returns a copy of the held set.
func (b *Board) Jobs() []listing.Job {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]listing.Job, len(b.jobs))
	copy(out, b.jobs)
	return out
}

// View applies f to the held set.
func (b *Board) View(f listing.Filter) []listing.Job {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return listing.Apply(b.jobs, f)
}

package database

import (
	"context"

	"github.com/justsurfingit/jobboard/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// JobStore reads and writes the jobs table through gorm.
type JobStore struct {
	DB *gorm.DB
}

func NewJobStore(db *gorm.DB) *JobStore {
	return &JobStore{DB: db}
}

// List returns every row ordered by creation time, oldest first.
func (s *JobStore) List(ctx context.Context) ([]models.Job, error) {
	jobs := []models.Job{}
	err := s.DB.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "createdAt"}}).
		Find(&jobs).Error
	if err != nil {
		return nil, classify("list jobs", err)
	}
	return jobs, nil
}

// Create inserts job and fills in the generated id and createdAt.
func (s *JobStore) Create(ctx context.Context, job *models.Job) error {
	if err := s.DB.WithContext(ctx).Create(job).Error; err != nil {
		return classify("create job", err)
	}
	return nil
}

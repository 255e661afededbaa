package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Job is a row of the jobs table. Column names are the camelCase names the
// listing page reads, so they are quoted in SQL.
type Job struct {
	ID    string  `gorm:"primaryKey;type:uuid" json:"id"`
	Title *string `gorm:"column:title;not null" json:"title"`

	Company  *string `gorm:"column:company" json:"company"`
	Location *string `gorm:"column:location" json:"location"`
	// Type is one of Full-time, Part-time, Contract, Internship.
	Type *string `gorm:"column:type;check:chk_jobs_type,type IN ('Full-time','Part-time','Contract','Internship')" json:"type"`

	// Salary bounds in lakhs per annum.
	SalaryRange  *Numeric `gorm:"column:salaryRange" json:"salaryRange"`
	SalaryRange2 *Numeric `gorm:"column:salaryrange2" json:"salaryrange2"`

	Description         *string `gorm:"column:description;type:text" json:"description"`
	ApplicationDeadline *Date   `gorm:"column:applicationDeadline" json:"applicationDeadline"`
	IsRemote            *bool   `gorm:"column:isRemote" json:"isRemote"`

	CreatedAt time.Time `gorm:"column:createdAt;index" json:"createdAt"`
}

func (Job) TableName() string { return "jobs" }

// BeforeCreate assigns an id when the caller did not.
func (j *Job) BeforeCreate(*gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}

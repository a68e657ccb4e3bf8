package ports

import (
	"context"

	"github.com/kazimashinani/jobboard/internal/core/domain"
)

// ListJobsFilter carries all query parameters for listing jobs.
type ListJobsFilter struct {
	Category string // empty = any category
	Location string // optional: case-insensitive substring of location
	Search   string // optional: case-insensitive substring of title, description or business type
	Page     int    // 1-based
	Limit    int
}

// JobRepository defines persistence operations for jobs.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	// List returns a page of active jobs matching filter, newest first, and the total count.
	List(ctx context.Context, filter ListJobsFilter) ([]*domain.Job, int64, error)
	ListByEmployer(ctx context.Context, employerID string) ([]*domain.Job, error)
	Update(ctx context.Context, id string, patch domain.JobPatch) (*domain.Job, error)
	Delete(ctx context.Context, id string) error
	AddApplicant(ctx context.Context, jobID, employeeID string) error
	IncrementViews(ctx context.Context, jobID string) error
}

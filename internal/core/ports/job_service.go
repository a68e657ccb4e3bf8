package ports

import (
	"context"

	"github.com/kazimashinani/jobboard/internal/core/domain"
)

// CreateJobInput carries the fields an employer supplies for a new job.
type CreateJobInput struct {
	Title        string
	Description  string
	Location     string
	Category     string
	Phone        string
	WhatsApp     string
	BusinessType string
	Salary       string
	Requirements []string
}

// ListJobsInput carries the public list query.
type ListJobsInput struct {
	Category string
	Location string
	Search   string
	Page     int
	Limit    int
}

// ListJobsResult is returned by ListJobs.
type ListJobsResult struct {
	Jobs       []*domain.Job
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// JobService defines use-case operations for job postings. Mutations take the
// authenticated identity and are checked against the job's owner.
type JobService interface {
	ListJobs(ctx context.Context, input ListJobsInput) (*ListJobsResult, error)
	GetJob(ctx context.Context, id string) (*domain.Job, error)
	CreateJob(ctx context.Context, actor *domain.Identity, input CreateJobInput) (*domain.Job, error)
	UpdateJob(ctx context.Context, actor *domain.Identity, id string, patch domain.JobPatch) (*domain.Job, error)
	DeleteJob(ctx context.Context, actor *domain.Identity, id string) error
	ListMyJobs(ctx context.Context, actor *domain.Identity) ([]*domain.Job, error)
}

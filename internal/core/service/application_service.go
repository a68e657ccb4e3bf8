package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/kazimashinani/jobboard/internal/core/auth"
	"github.com/kazimashinani/jobboard/internal/core/domain"
	"github.com/kazimashinani/jobboard/internal/core/ports"
)

type ApplicationService struct {
	jobs ports.JobRepository
	apps ports.ApplicationRepository
	log  zerolog.Logger
	now  func() time.Time
}

// NewApplicationService builds an ApplicationService.
func NewApplicationService(jobs ports.JobRepository, apps ports.ApplicationRepository, log zerolog.Logger) *ApplicationService {
	return &ApplicationService{jobs: jobs, apps: apps, log: log, now: time.Now}
}

// Apply files an application by actor for an active job.
func (s *ApplicationService) Apply(ctx context.Context, actor *domain.Identity, jobID, message string) (*domain.Application, error) {
	if actor.Role != domain.RoleEmployee {
		return nil, domain.ErrForbidden
	}

	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !job.IsActive {
		return nil, domain.ErrJobNotFound
	}

	// Fast path; the unique (jobId, employeeId) index is authoritative.
	exists, err := s.apps.Exists(ctx, job.ID, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("apply: lookup: %w", err)
	}
	if exists {
		return nil, domain.ErrAlreadyApplied
	}

	now := s.now().UTC()
	app := &domain.Application{
		JobID:      job.ID,
		EmployeeID: actor.ID,
		EmployerID: job.EmployerID,
		Applicant: domain.Applicant{
			Name:     actor.Name,
			Phone:    actor.Phone,
			Location: actor.Location,
		},
		Status:    domain.ApplicationPending,
		Message:   strings.TrimSpace(message),
		AppliedAt: now,
		UpdatedAt: now,
	}

	id, err := s.apps.Create(ctx, app)
	if err != nil {
		return nil, err
	}
	app.ID = id

	// The application is the record of truth; the applicants list on the job
	// is a denormalised copy.
	if err := s.jobs.AddApplicant(ctx, job.ID, actor.ID); err != nil {
		s.log.Warn().Err(err).Str("job_id", job.ID).Str("employee_id", actor.ID).Msg("failed to add applicant to job")
	}

	s.log.Info().Str("application_id", id).Str("job_id", job.ID).Str("employee_id", actor.ID).Msg("application submitted")
	return app, nil
}

// ListForJob returns the applications of a job owned by actor.
func (s *ApplicationService) ListForJob(ctx context.Context, actor *domain.Identity, jobID string) ([]*domain.Application, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := auth.Authorize(job.EmployerID, actor.ID); err != nil {
		return nil, err
	}

	apps, err := s.apps.ListByJob(ctx, job.ID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

func (s *ApplicationService) ListMine(ctx context.Context, actor *domain.Identity) ([]*domain.Application, error) {
	apps, err := s.apps.ListByEmployee(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("list my applications: %w", err)
	}
	return apps, nil
}

// UpdateStatus records the employer's decision on an application.
func (s *ApplicationService) UpdateStatus(ctx context.Context, actor *domain.Identity, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	if !status.Valid() {
		return nil, domain.NewValidationError("status must be one of: pending, accepted, rejected")
	}

	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.Authorize(app.EmployerID, actor.ID); err != nil {
		return nil, err
	}
	if app.Status == status {
		return app, nil
	}

	updated, err := s.apps.UpdateStatus(ctx, app.ID, status)
	if err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}

	s.log.Info().Str("application_id", id).Str("status", string(status)).Msg("application status changed")
	return updated, nil
}

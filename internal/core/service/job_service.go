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

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
	// maxPage keeps (page-1)*limit far from integer overflow.
	maxPage = 1_000_000

	categoryAll = "all"
)

type JobService struct {
	repo ports.JobRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewJobService(repo ports.JobRepository, log zerolog.Logger) *JobService {
	return &JobService{repo: repo, log: log, now: time.Now}
}

// ListJobs returns a page of active jobs. Page and limit fall back to 1 and 10;
// limit is capped at 100 and page at maxPage. Category "all" disables the
// category filter.
func (s *JobService) ListJobs(ctx context.Context, input ports.ListJobsInput) (*ports.ListJobsResult, error) {
	page := input.Page
	if page < 1 {
		page = defaultPage
	}
	if page > maxPage {
		page = maxPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	category := strings.ToLower(strings.TrimSpace(input.Category))
	if category == categoryAll {
		category = ""
	}
	if category != "" && !domain.ValidCategory(category) {
		return nil, domain.NewValidationError("category is invalid")
	}

	jobs, total, err := s.repo.List(ctx, ports.ListJobsFilter{
		Category: category,
		Location: strings.TrimSpace(input.Location),
		Search:   strings.TrimSpace(input.Search),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListJobsResult{
		Jobs:       jobs,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func (s *JobService) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateJob posts a new active job owned by actor.
func (s *JobService) CreateJob(ctx context.Context, actor *domain.Identity, input ports.CreateJobInput) (*domain.Job, error) {
	if actor.Role != domain.RoleEmployer {
		return nil, domain.ErrForbidden
	}

	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	location := strings.TrimSpace(input.Location)
	if title == "" || description == "" || location == "" || input.Phone == "" {
		return nil, domain.NewValidationError("title, description, location and phone are required")
	}

	category := strings.ToLower(strings.TrimSpace(input.Category))
	if category == "" {
		category = domain.CategoryGeneral
	}
	if !domain.ValidCategory(category) {
		return nil, domain.NewValidationError("category is invalid")
	}

	phone, err := contactPhone(input.Phone)
	if err != nil {
		return nil, err
	}
	whatsapp := ""
	if strings.TrimSpace(input.WhatsApp) != "" {
		if whatsapp, err = contactPhone(input.WhatsApp); err != nil {
			return nil, err
		}
	}

	businessType := strings.TrimSpace(input.BusinessType)
	if businessType == "" {
		businessType = domain.DefaultBusinessType
	}

	now := s.now().UTC()
	job := &domain.Job{
		Title:        title,
		Description:  description,
		Location:     location,
		Category:     category,
		Phone:        phone,
		WhatsApp:     whatsapp,
		BusinessType: businessType,
		EmployerID:   actor.ID,
		EmployerName: actor.Name,
		Salary:       strings.TrimSpace(input.Salary),
		Requirements: cleanRequirements(input.Requirements),
		IsActive:     true,
		Applicants:   []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	id, err := s.repo.Create(ctx, job)
	if err != nil {
		s.log.Error().Err(err).Str("employer_id", actor.ID).Msg("failed to create job")
		return nil, fmt.Errorf("create job: %w", err)
	}
	job.ID = id

	s.log.Info().Str("job_id", id).Str("employer_id", actor.ID).Str("category", category).Msg("job created")
	return job, nil
}

// UpdateJob applies patch to a job owned by actor. A missing job is reported
// before ownership is checked.
func (s *JobService) UpdateJob(ctx context.Context, actor *domain.Identity, id string, patch domain.JobPatch) (*domain.Job, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.Authorize(job.EmployerID, actor.ID); err != nil {
		s.log.Warn().Str("job_id", id).Str("identity_id", actor.ID).Msg("job update denied")
		return nil, err
	}

	if err := normalizePatch(&patch); err != nil {
		return nil, err
	}
	if patch.Empty() {
		return job, nil
	}

	updated, err := s.repo.Update(ctx, job.ID, patch)
	if err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}

	s.log.Info().Str("job_id", id).Msg("job updated")
	return updated, nil
}

// DeleteJob removes a job owned by actor.
func (s *JobService) DeleteJob(ctx context.Context, actor *domain.Identity, id string) error {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.Authorize(job.EmployerID, actor.ID); err != nil {
		s.log.Warn().Str("job_id", id).Str("identity_id", actor.ID).Msg("job delete denied")
		return err
	}

	if err := s.repo.Delete(ctx, job.ID); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}

	s.log.Info().Str("job_id", id).Msg("job deleted")
	return nil
}

func (s *JobService) ListMyJobs(ctx context.Context, actor *domain.Identity) ([]*domain.Job, error) {
	jobs, err := s.repo.ListByEmployer(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("list my jobs: %w", err)
	}
	return jobs, nil
}

// normalizePatch trims and validates the fields present in p.
func normalizePatch(p *domain.JobPatch) error {
	for _, f := range []struct {
		name  string
		value *string
	}{
		{"title", p.Title},
		{"description", p.Description},
		{"location", p.Location},
	} {
		if f.value == nil {
			continue
		}
		*f.value = strings.TrimSpace(*f.value)
		if *f.value == "" {
			return domain.NewValidationError(f.name + " must not be empty")
		}
	}

	if p.Category != nil {
		c := strings.ToLower(strings.TrimSpace(*p.Category))
		if !domain.ValidCategory(c) {
			return domain.NewValidationError("category is invalid")
		}
		p.Category = &c
	}
	if p.Phone != nil {
		phone, err := contactPhone(*p.Phone)
		if err != nil {
			return err
		}
		p.Phone = &phone
	}
	if p.WhatsApp != nil && strings.TrimSpace(*p.WhatsApp) != "" {
		whatsapp, err := contactPhone(*p.WhatsApp)
		if err != nil {
			return err
		}
		p.WhatsApp = &whatsapp
	}
	if p.BusinessType != nil {
		bt := strings.TrimSpace(*p.BusinessType)
		if bt == "" {
			bt = domain.DefaultBusinessType
		}
		p.BusinessType = &bt
	}
	if p.Requirements != nil {
		p.Requirements = cleanRequirements(p.Requirements)
	}
	return nil
}

func contactPhone(raw string) (string, error) {
	phone := auth.NormalizePhone(raw)
	if phone == "" {
		return "", domain.NewValidationError("phone number is invalid")
	}
	return phone, nil
}

func cleanRequirements(in []string) []string {
	out := make([]string, 0, len(in))
	for _, r := range in {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}

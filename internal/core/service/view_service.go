package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kazimashinani/jobboard/internal/core/domain"
	"github.com/kazimashinani/jobboard/internal/core/ports"
)

// ViewDedup abstracts the recent-viewer store (Redis).
type ViewDedup interface {
	// FirstView marks viewer as having seen jobID and reports whether this is
	// the first mark inside the dedup window.
	FirstView(ctx context.Context, jobID, viewer string) (bool, error)
}

type ViewService struct {
	jobs  ports.JobRepository
	dedup ViewDedup
	log   zerolog.Logger
}

// NewViewService builds a ViewService.
func NewViewService(jobs ports.JobRepository, dedup ViewDedup, log zerolog.Logger) *ViewService {
	return &ViewService{jobs: jobs, dedup: dedup, log: log}
}

// Record increments a job's view counter once per viewer per dedup window.
// A failing dedup store does not stop the view from being counted.
func (s *ViewService) Record(ctx context.Context, view domain.JobView) (bool, error) {
	if view.Viewer != "" {
		first, err := s.dedup.FirstView(ctx, view.JobID, view.Viewer)
		if err != nil {
			s.log.Warn().Err(err).Str("job_id", view.JobID).Msg("view dedup failed, counting anyway")
		} else if !first {
			s.log.Debug().Str("job_id", view.JobID).Msg("repeat view skipped")
			return false, nil
		}
	}

	if err := s.jobs.IncrementViews(ctx, view.JobID); err != nil {
		return false, fmt.Errorf("record view: %w", err)
	}
	return true, nil
}

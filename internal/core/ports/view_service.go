package ports

import (
	"context"

	"github.com/kazimashinani/jobboard/internal/core/domain"
)

// ViewService records job detail reads.
type ViewService interface {
	// Record counts view unless the same viewer was already counted for the
	// job recently. It reports whether the view was counted.
	Record(ctx context.Context, view domain.JobView) (bool, error)
}

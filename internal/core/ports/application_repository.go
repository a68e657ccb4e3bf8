package ports

import (
	"context"

	"github.com/kazimashinani/jobboard/internal/core/domain"
)

// ApplicationRepository defines persistence for job applications.
// A second application by the same employee for the same job is reported as
// domain.ErrAlreadyApplied.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Application, error)
	Exists(ctx context.Context, jobID, employeeID string) (bool, error)
	ListByJob(ctx context.Context, jobID string) ([]*domain.Application, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*domain.Application, error)
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error)
}

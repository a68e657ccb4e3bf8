package ports

import (
	"context"

	"github.com/kazimashinani/jobboard/internal/core/domain"
)

type ApplicationService interface {
	Apply(ctx context.Context, actor *domain.Identity, jobID, message string) (*domain.Application, error)
	ListForJob(ctx context.Context, actor *domain.Identity, jobID string) ([]*domain.Application, error)
	ListMine(ctx context.Context, actor *domain.Identity) ([]*domain.Application, error)
	UpdateStatus(ctx context.Context, actor *domain.Identity, id string, status domain.ApplicationStatus) (*domain.Application, error)
}

package job

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

type Repository interface {
	Create(ctx context.Context, j Job) error
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	Update(ctx context.Context, j Job) error

	// DeleteWithApplications removes the job and every application
	// referencing it in one transaction.
	DeleteWithApplications(ctx context.Context, id uuid.UUID) error

	// ListActive returns active jobs matching the filter, newest first,
	// together with the total match count for pagination.
	ListActive(ctx context.Context, f ListFilter) ([]Job, int, error)

	ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]Job, error)
}

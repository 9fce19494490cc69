package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("application not found")
	ErrAlreadyApplied = errors.New("already applied")
)

type Repository interface {
	// Create inserts the application. The (job_id, applicant_id) pair is
	// guarded by a unique constraint; a duplicate insert returns
	// ErrAlreadyApplied without touching the existing row.
	Create(ctx context.Context, a Application) error

	GetByID(ctx context.Context, id uuid.UUID) (Application, error)
	GetDetails(ctx context.Context, id uuid.UUID) (Details, error)

	// UpdateStatus overwrites the status, refreshes updated_at and appends
	// a StatusEvent in the same transaction.
	UpdateStatus(ctx context.Context, id uuid.UUID, to Status, actorID uuid.UUID) error

	ListByJob(ctx context.Context, jobID uuid.UUID) ([]Details, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]Details, error)
	ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]Details, error)

	ListStatusEvents(ctx context.Context, applicationID uuid.UUID) ([]StatusEvent, error)
}

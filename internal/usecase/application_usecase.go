package usecase

import (
	"context"
	"errors"
	"strings"

	"hirehub/internal/domain/application"
	"hirehub/internal/domain/job"
	"hirehub/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrOnlyCandidatesApply = errors.New("only candidates can apply for jobs")
	ErrRecruitersOnly      = errors.New("recruiters only")
	ErrCandidatesOnly      = errors.New("candidates only")

	// ErrJobNotOpen covers both a missing job and an inactive one. The two are
	// deliberately indistinguishable to the caller so that job lifecycle state
	// cannot be probed through the submission endpoint.
	ErrJobNotOpen = errors.New("job not found or not active")

	ErrNotJobOwner       = errors.New("not authorized for this job")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type ApplyInput struct {
	JobID          uuid.UUID
	CoverLetter    string
	Resume         string
	ExpectedSalary string
	Availability   string
	Notes          string
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, caller Identity, in ApplyInput) (application.Details, error)
	UpdateStatus(ctx context.Context, caller Identity, id uuid.UUID, target string) (application.Details, error)
	ListForJob(ctx context.Context, caller Identity, jobID uuid.UUID) ([]application.Details, error)
	ListMine(ctx context.Context, caller Identity) ([]application.Details, error)
	ListForRecruiter(ctx context.Context, caller Identity) ([]application.Details, error)
	StatusHistory(ctx context.Context, caller Identity, id uuid.UUID) ([]application.StatusEvent, error)
}

// StatusNotifier pushes a status-change event to connected clients. Optional.
type StatusNotifier interface {
	NotifyStatusChanged(d application.Details)
}

type Applications struct {
	apps     application.Repository
	jobs     job.Repository
	notifier StatusNotifier
}

func NewApplicationUsecase(apps application.Repository, jobs job.Repository, notifier StatusNotifier) *Applications {
	return &Applications{apps: apps, jobs: jobs, notifier: notifier}
}

func (u *Applications) Apply(ctx context.Context, caller Identity, in ApplyInput) (application.Details, error) {
	if caller.Role != user.RoleCandidate {
		return application.Details{}, ErrOnlyCandidatesApply
	}

	if in.JobID == uuid.Nil {
		return application.Details{}, invalidField("job", "Job ID is required")
	}
	coverLetter := strings.TrimSpace(in.CoverLetter)
	if coverLetter == "" {
		return application.Details{}, invalidField("coverLetter", "Cover letter is required")
	}

	j, err := u.jobs.GetByID(ctx, in.JobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return application.Details{}, ErrJobNotOpen
		}
		return application.Details{}, internalErr(err)
	}
	if j.Status != job.StatusActive {
		return application.Details{}, ErrJobNotOpen
	}

	a := application.Application{
		ID:             uuid.New(),
		JobID:          j.ID,
		ApplicantID:    caller.UserID,
		RecruiterID:    j.PostedBy,
		Status:         application.StatusPending,
		CoverLetter:    coverLetter,
		Resume:         strings.TrimSpace(in.Resume),
		ExpectedSalary: strings.TrimSpace(in.ExpectedSalary),
		Availability:   strings.TrimSpace(in.Availability),
		Notes:          strings.TrimSpace(in.Notes),
	}

	// The unique constraint on (job_id, applicant_id) is the duplicate check;
	// two racing submissions leave exactly one row behind.
	if err := u.apps.Create(ctx, a); err != nil {
		if errors.Is(err, application.ErrAlreadyApplied) {
			return application.Details{}, application.ErrAlreadyApplied
		}
		return application.Details{}, internalErr(err)
	}

	d, err := u.apps.GetDetails(ctx, a.ID)
	if err != nil {
		return application.Details{}, internalErr(err)
	}
	return d, nil
}

func (u *Applications) UpdateStatus(ctx context.Context, caller Identity, id uuid.UUID, target string) (application.Details, error) {
	to := application.Status(target)
	if !to.Valid() {
		return application.Details{}, invalidField("status", "Valid status is required")
	}
	if caller.Role != user.RoleRecruiter {
		return application.Details{}, ErrRecruitersOnly
	}

	a, err := u.apps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Details{}, application.ErrNotFound
		}
		return application.Details{}, internalErr(err)
	}

	// Authorize against the job's current owner, not the snapshot on the row.
	j, err := u.jobs.GetByID(ctx, a.JobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return application.Details{}, application.ErrNotFound
		}
		return application.Details{}, internalErr(err)
	}
	if j.PostedBy != caller.UserID {
		return application.Details{}, ErrNotJobOwner
	}

	if !application.CanTransition(a.Status, to) {
		return application.Details{}, ErrInvalidTransition
	}

	if err := u.apps.UpdateStatus(ctx, id, to, caller.UserID); err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Details{}, application.ErrNotFound
		}
		return application.Details{}, internalErr(err)
	}

	d, err := u.apps.GetDetails(ctx, id)
	if err != nil {
		return application.Details{}, internalErr(err)
	}

	if u.notifier != nil {
		u.notifier.NotifyStatusChanged(d)
	}
	return d, nil
}

func (u *Applications) ListForJob(ctx context.Context, caller Identity, jobID uuid.UUID) ([]application.Details, error) {
	if caller.Role != user.RoleRecruiter {
		return nil, ErrRecruitersOnly
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			// A job someone else may own is not distinguishable from one that
			// does not exist.
			return nil, ErrNotJobOwner
		}
		return nil, internalErr(err)
	}
	if j.PostedBy != caller.UserID {
		return nil, ErrNotJobOwner
	}

	out, err := u.apps.ListByJob(ctx, jobID)
	if err != nil {
		return nil, internalErr(err)
	}
	return out, nil
}

func (u *Applications) ListMine(ctx context.Context, caller Identity) ([]application.Details, error) {
	if caller.Role != user.RoleCandidate {
		return nil, ErrCandidatesOnly
	}

	out, err := u.apps.ListByApplicant(ctx, caller.UserID)
	if err != nil {
		return nil, internalErr(err)
	}
	return out, nil
}

func (u *Applications) ListForRecruiter(ctx context.Context, caller Identity) ([]application.Details, error) {
	if caller.Role != user.RoleRecruiter {
		return nil, ErrRecruitersOnly
	}

	out, err := u.apps.ListByRecruiter(ctx, caller.UserID)
	if err != nil {
		return nil, internalErr(err)
	}
	return out, nil
}

func (u *Applications) StatusHistory(ctx context.Context, caller Identity, id uuid.UUID) ([]application.StatusEvent, error) {
	if caller.Role != user.RoleRecruiter {
		return nil, ErrRecruitersOnly
	}

	a, err := u.apps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return nil, application.ErrNotFound
		}
		return nil, internalErr(err)
	}

	j, err := u.jobs.GetByID(ctx, a.JobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return nil, application.ErrNotFound
		}
		return nil, internalErr(err)
	}
	if j.PostedBy != caller.UserID {
		return nil, ErrNotJobOwner
	}

	events, err := u.apps.ListStatusEvents(ctx, id)
	if err != nil {
		return nil, internalErr(err)
	}
	return events, nil
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"hirehub/internal/domain/application"
	"hirehub/internal/domain/job"
	"hirehub/internal/domain/user"

	"github.com/google/uuid"
)

type mockApplicationRepo struct {
	apps    map[uuid.UUID]application.Application
	details map[uuid.UUID]application.Details
	events  map[uuid.UUID][]application.StatusEvent

	createErr error
	created   []application.Application

	updateCalls []struct {
		ID    uuid.UUID
		To    application.Status
		Actor uuid.UUID
	}

	byJob       []application.Details
	byApplicant []application.Details
	byRecruiter []application.Details
}

func newMockApplicationRepo() *mockApplicationRepo {
	return &mockApplicationRepo{
		apps:    make(map[uuid.UUID]application.Application),
		details: make(map[uuid.UUID]application.Details),
		events:  make(map[uuid.UUID][]application.StatusEvent),
	}
}

func (m *mockApplicationRepo) Create(ctx context.Context, a application.Application) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, a)
	m.apps[a.ID] = a
	m.details[a.ID] = application.Details{Application: a}
	return nil
}

func (m *mockApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	a, ok := m.apps[id]
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	return a, nil
}

func (m *mockApplicationRepo) GetDetails(ctx context.Context, id uuid.UUID) (application.Details, error) {
	d, ok := m.details[id]
	if !ok {
		return application.Details{}, application.ErrNotFound
	}
	return d, nil
}

func (m *mockApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, to application.Status, actorID uuid.UUID) error {
	a, ok := m.apps[id]
	if !ok {
		return application.ErrNotFound
	}
	m.updateCalls = append(m.updateCalls, struct {
		ID    uuid.UUID
		To    application.Status
		Actor uuid.UUID
	}{id, to, actorID})
	a.Status = to
	m.apps[id] = a
	d := m.details[id]
	d.Status = to
	m.details[id] = d
	return nil
}

func (m *mockApplicationRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.Details, error) {
	return m.byJob, nil
}

func (m *mockApplicationRepo) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]application.Details, error) {
	return m.byApplicant, nil
}

func (m *mockApplicationRepo) ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]application.Details, error) {
	return m.byRecruiter, nil
}

func (m *mockApplicationRepo) ListStatusEvents(ctx context.Context, applicationID uuid.UUID) ([]application.StatusEvent, error) {
	return m.events[applicationID], nil
}

type mockJobRepo struct {
	jobs map[uuid.UUID]job.Job

	createErr   error
	created     []job.Job
	updated     []job.Job
	deleted     []uuid.UUID
	byRecruiter []job.Job

	listJobs   []job.Job
	listTotal  int
	listErr    error
	listFilter *job.ListFilter
}

func newMockJobRepo() *mockJobRepo {
	return &mockJobRepo{jobs: make(map[uuid.UUID]job.Job)}
}

func (m *mockJobRepo) Create(ctx context.Context, j job.Job) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, j)
	m.jobs[j.ID] = j
	return nil
}

func (m *mockJobRepo) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	j, ok := m.jobs[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (m *mockJobRepo) Update(ctx context.Context, j job.Job) error {
	if _, ok := m.jobs[j.ID]; !ok {
		return job.ErrNotFound
	}
	m.updated = append(m.updated, j)
	m.jobs[j.ID] = j
	return nil
}

func (m *mockJobRepo) DeleteWithApplications(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.jobs[id]; !ok {
		return job.ErrNotFound
	}
	m.deleted = append(m.deleted, id)
	delete(m.jobs, id)
	return nil
}

func (m *mockJobRepo) ListActive(ctx context.Context, f job.ListFilter) ([]job.Job, int, error) {
	m.listFilter = &f
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	return m.listJobs, m.listTotal, nil
}

func (m *mockJobRepo) ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]job.Job, error) {
	return m.byRecruiter, nil
}

type mockNotifier struct {
	events []application.Details
}

func (m *mockNotifier) NotifyStatusChanged(d application.Details) {
	m.events = append(m.events, d)
}

func candidateIdentity() Identity {
	return Identity{UserID: uuid.New(), Role: user.RoleCandidate}
}

func recruiterIdentity() Identity {
	return Identity{UserID: uuid.New(), Role: user.RoleRecruiter}
}

func seedJob(jobs *mockJobRepo, postedBy uuid.UUID, status job.Status) job.Job {
	j := job.Job{
		ID:       uuid.New(),
		Title:    "Backend Engineer",
		PostedBy: postedBy,
		Status:   status,
	}
	jobs.jobs[j.ID] = j
	return j
}

func seedApplication(apps *mockApplicationRepo, jobID, applicantID, recruiterID uuid.UUID, status application.Status) application.Application {
	a := application.Application{
		ID:          uuid.New(),
		JobID:       jobID,
		ApplicantID: applicantID,
		RecruiterID: recruiterID,
		Status:      status,
		CoverLetter: "I am interested in this position.",
	}
	apps.apps[a.ID] = a
	apps.details[a.ID] = application.Details{Application: a}
	return a
}

func TestApplyRejectsRecruiters(t *testing.T) {
	uc := NewApplicationUsecase(newMockApplicationRepo(), newMockJobRepo(), nil)

	_, err := uc.Apply(context.Background(), recruiterIdentity(), ApplyInput{
		JobID:       uuid.New(),
		CoverLetter: "hello",
	})
	if !errors.Is(err, ErrOnlyCandidatesApply) {
		t.Fatalf("expected ErrOnlyCandidatesApply, got %v", err)
	}
}

func TestApplyRequiresCoverLetter(t *testing.T) {
	jobs := newMockJobRepo()
	recruiter := uuid.New()
	j := seedJob(jobs, recruiter, job.StatusActive)
	uc := NewApplicationUsecase(newMockApplicationRepo(), jobs, nil)

	_, err := uc.Apply(context.Background(), candidateIdentity(), ApplyInput{
		JobID:       j.ID,
		CoverLetter: "   ",
	})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Fields) != 1 || verr.Fields[0].Field != "coverLetter" {
		t.Fatalf("expected coverLetter field error, got %+v", verr.Fields)
	}
}

func TestApplyMissingJobLooksLikeClosedJob(t *testing.T) {
	uc := NewApplicationUsecase(newMockApplicationRepo(), newMockJobRepo(), nil)

	_, err := uc.Apply(context.Background(), candidateIdentity(), ApplyInput{
		JobID:       uuid.New(),
		CoverLetter: "hello",
	})
	if !errors.Is(err, ErrJobNotOpen) {
		t.Fatalf("expected ErrJobNotOpen, got %v", err)
	}
}

func TestApplyRejectsClosedJob(t *testing.T) {
	jobs := newMockJobRepo()
	j := seedJob(jobs, uuid.New(), job.StatusClosed)
	apps := newMockApplicationRepo()
	uc := NewApplicationUsecase(apps, jobs, nil)

	_, err := uc.Apply(context.Background(), candidateIdentity(), ApplyInput{
		JobID:       j.ID,
		CoverLetter: "hello",
	})
	if !errors.Is(err, ErrJobNotOpen) {
		t.Fatalf("expected ErrJobNotOpen, got %v", err)
	}
	if len(apps.created) != 0 {
		t.Fatalf("expected no application to be created")
	}
}

func TestApplyTranslatesDuplicate(t *testing.T) {
	jobs := newMockJobRepo()
	j := seedJob(jobs, uuid.New(), job.StatusActive)
	apps := newMockApplicationRepo()
	apps.createErr = application.ErrAlreadyApplied
	uc := NewApplicationUsecase(apps, jobs, nil)

	_, err := uc.Apply(context.Background(), candidateIdentity(), ApplyInput{
		JobID:       j.ID,
		CoverLetter: "hello",
	})
	if !errors.Is(err, application.ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
}

func TestApplyCreatesPendingApplication(t *testing.T) {
	jobs := newMockJobRepo()
	recruiter := uuid.New()
	j := seedJob(jobs, recruiter, job.StatusActive)
	apps := newMockApplicationRepo()
	uc := NewApplicationUsecase(apps, jobs, nil)
	caller := candidateIdentity()

	d, err := uc.Apply(context.Background(), caller, ApplyInput{
		JobID:          j.ID,
		CoverLetter:    "  I would love to join.  ",
		Resume:         "https://example.com/cv.pdf",
		ExpectedSalary: "90000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(apps.created) != 1 {
		t.Fatalf("expected one created application, got %d", len(apps.created))
	}
	got := apps.created[0]
	if got.Status != application.StatusPending {
		t.Errorf("expected status pending, got %s", got.Status)
	}
	if got.JobID != j.ID {
		t.Errorf("expected job %s, got %s", j.ID, got.JobID)
	}
	if got.ApplicantID != caller.UserID {
		t.Errorf("expected applicant %s, got %s", caller.UserID, got.ApplicantID)
	}
	if got.RecruiterID != recruiter {
		t.Errorf("expected recruiter snapshot %s, got %s", recruiter, got.RecruiterID)
	}
	if got.CoverLetter != "I would love to join." {
		t.Errorf("expected trimmed cover letter, got %q", got.CoverLetter)
	}
	if d.ID != got.ID {
		t.Errorf("expected details for created application")
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	uc := NewApplicationUsecase(newMockApplicationRepo(), newMockJobRepo(), nil)

	_, err := uc.UpdateStatus(context.Background(), recruiterIdentity(), uuid.New(), "archived")

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestUpdateStatusRejectsCandidates(t *testing.T) {
	uc := NewApplicationUsecase(newMockApplicationRepo(), newMockJobRepo(), nil)

	_, err := uc.UpdateStatus(context.Background(), candidateIdentity(), uuid.New(), "reviewing")
	if !errors.Is(err, ErrRecruitersOnly) {
		t.Fatalf("expected ErrRecruitersOnly, got %v", err)
	}
}

func TestUpdateStatusRejectsNonOwner(t *testing.T) {
	jobs := newMockJobRepo()
	owner := uuid.New()
	j := seedJob(jobs, owner, job.StatusActive)
	apps := newMockApplicationRepo()
	a := seedApplication(apps, j.ID, uuid.New(), owner, application.StatusPending)
	uc := NewApplicationUsecase(apps, jobs, nil)

	_, err := uc.UpdateStatus(context.Background(), recruiterIdentity(), a.ID, "reviewing")
	if !errors.Is(err, ErrNotJobOwner) {
		t.Fatalf("expected ErrNotJobOwner, got %v", err)
	}
	if len(apps.updateCalls) != 0 {
		t.Fatalf("expected no status update")
	}
}

func TestUpdateStatusAuthorizesAgainstCurrentJobOwner(t *testing.T) {
	jobs := newMockJobRepo()
	newOwner := recruiterIdentity()
	j := seedJob(jobs, newOwner.UserID, job.StatusActive)
	apps := newMockApplicationRepo()
	// Snapshot on the application points at a previous owner.
	a := seedApplication(apps, j.ID, uuid.New(), uuid.New(), application.StatusPending)
	uc := NewApplicationUsecase(apps, jobs, nil)

	if _, err := uc.UpdateStatus(context.Background(), newOwner, a.ID, "reviewing"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateStatusRejectsInvalidTransition(t *testing.T) {
	jobs := newMockJobRepo()
	owner := recruiterIdentity()
	j := seedJob(jobs, owner.UserID, job.StatusActive)
	apps := newMockApplicationRepo()
	a := seedApplication(apps, j.ID, uuid.New(), owner.UserID, application.StatusPending)
	uc := NewApplicationUsecase(apps, jobs, nil)

	_, err := uc.UpdateStatus(context.Background(), owner, a.ID, "accepted")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if len(apps.updateCalls) != 0 {
		t.Fatalf("expected no status update")
	}
}

func TestUpdateStatusRejectsTerminalState(t *testing.T) {
	jobs := newMockJobRepo()
	owner := recruiterIdentity()
	j := seedJob(jobs, owner.UserID, job.StatusActive)
	apps := newMockApplicationRepo()
	a := seedApplication(apps, j.ID, uuid.New(), owner.UserID, application.StatusRejected)
	uc := NewApplicationUsecase(apps, jobs, nil)

	_, err := uc.UpdateStatus(context.Background(), owner, a.ID, "reviewing")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestUpdateStatusRecordsActorAndNotifies(t *testing.T) {
	jobs := newMockJobRepo()
	owner := recruiterIdentity()
	j := seedJob(jobs, owner.UserID, job.StatusActive)
	apps := newMockApplicationRepo()
	a := seedApplication(apps, j.ID, uuid.New(), owner.UserID, application.StatusPending)
	notifier := &mockNotifier{}
	uc := NewApplicationUsecase(apps, jobs, notifier)

	d, err := uc.UpdateStatus(context.Background(), owner, a.ID, "reviewing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Status != application.StatusReviewing {
		t.Errorf("expected reviewing, got %s", d.Status)
	}
	if len(apps.updateCalls) != 1 {
		t.Fatalf("expected one status update, got %d", len(apps.updateCalls))
	}
	call := apps.updateCalls[0]
	if call.To != application.StatusReviewing || call.Actor != owner.UserID {
		t.Errorf("unexpected update call %+v", call)
	}
	if len(notifier.events) != 1 || notifier.events[0].ID != a.ID {
		t.Fatalf("expected one notification for the application")
	}
}

func TestUpdateStatusMissingApplication(t *testing.T) {
	uc := NewApplicationUsecase(newMockApplicationRepo(), newMockJobRepo(), nil)

	_, err := uc.UpdateStatus(context.Background(), recruiterIdentity(), uuid.New(), "reviewing")
	if !errors.Is(err, application.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListForJobHidesUnownedJobs(t *testing.T) {
	jobs := newMockJobRepo()
	j := seedJob(jobs, uuid.New(), job.StatusActive)
	uc := NewApplicationUsecase(newMockApplicationRepo(), jobs, nil)

	// An unowned job and a missing one produce the same error.
	_, err := uc.ListForJob(context.Background(), recruiterIdentity(), j.ID)
	if !errors.Is(err, ErrNotJobOwner) {
		t.Fatalf("expected ErrNotJobOwner for unowned job, got %v", err)
	}
	_, err = uc.ListForJob(context.Background(), recruiterIdentity(), uuid.New())
	if !errors.Is(err, ErrNotJobOwner) {
		t.Fatalf("expected ErrNotJobOwner for missing job, got %v", err)
	}
}

func TestListForJobReturnsApplications(t *testing.T) {
	jobs := newMockJobRepo()
	owner := recruiterIdentity()
	j := seedJob(jobs, owner.UserID, job.StatusActive)
	apps := newMockApplicationRepo()
	apps.byJob = []application.Details{{Application: application.Application{ID: uuid.New(), JobID: j.ID}}}
	uc := NewApplicationUsecase(apps, jobs, nil)

	out, err := uc.ListForJob(context.Background(), owner, j.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected one application, got %d", len(out))
	}
}

func TestListMineRejectsRecruiters(t *testing.T) {
	uc := NewApplicationUsecase(newMockApplicationRepo(), newMockJobRepo(), nil)

	_, err := uc.ListMine(context.Background(), recruiterIdentity())
	if !errors.Is(err, ErrCandidatesOnly) {
		t.Fatalf("expected ErrCandidatesOnly, got %v", err)
	}
}

func TestListForRecruiterRejectsCandidates(t *testing.T) {
	uc := NewApplicationUsecase(newMockApplicationRepo(), newMockJobRepo(), nil)

	_, err := uc.ListForRecruiter(context.Background(), candidateIdentity())
	if !errors.Is(err, ErrRecruitersOnly) {
		t.Fatalf("expected ErrRecruitersOnly, got %v", err)
	}
}

func TestStatusHistoryRequiresOwnership(t *testing.T) {
	jobs := newMockJobRepo()
	owner := uuid.New()
	j := seedJob(jobs, owner, job.StatusActive)
	apps := newMockApplicationRepo()
	a := seedApplication(apps, j.ID, uuid.New(), owner, application.StatusPending)
	apps.events[a.ID] = []application.StatusEvent{{ID: uuid.New(), ApplicationID: a.ID}}
	uc := NewApplicationUsecase(apps, jobs, nil)

	_, err := uc.StatusHistory(context.Background(), recruiterIdentity(), a.ID)
	if !errors.Is(err, ErrNotJobOwner) {
		t.Fatalf("expected ErrNotJobOwner, got %v", err)
	}

	events, err := uc.StatusHistory(context.Background(), Identity{UserID: owner, Role: user.RoleRecruiter}, a.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected one event, got %d", len(events))
	}
}

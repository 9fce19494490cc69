package application

import (
	"time"

	"hirehub/internal/domain/job"
	"hirehub/internal/domain/user"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending     Status = "pending"
	StatusReviewing   Status = "reviewing"
	StatusShortlisted Status = "shortlisted"
	StatusRejected    Status = "rejected"
	StatusAccepted    Status = "accepted"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusReviewing, StatusShortlisted, StatusRejected, StatusAccepted:
		return true
	}
	return false
}

// transitions is the linear workflow: pending -> reviewing -> shortlisted
// -> accepted, with rejected reachable from any non-terminal state.
// accepted and rejected are terminal.
var transitions = map[Status][]Status{
	StatusPending:     {StatusReviewing, StatusRejected},
	StatusReviewing:   {StatusShortlisted, StatusRejected},
	StatusShortlisted: {StatusAccepted, StatusRejected},
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Application struct {
	ID             uuid.UUID
	JobID          uuid.UUID
	ApplicantID    uuid.UUID
	RecruiterID    uuid.UUID // owner snapshot at submission; authorization re-derives from the job
	Status         Status
	CoverLetter    string
	Resume         string
	ExpectedSalary string
	Availability   string
	Notes          string
	AppliedAt      time.Time
	UpdatedAt      time.Time
}

// StatusEvent is one entry of the append-only status history.
type StatusEvent struct {
	ID            uuid.UUID
	ApplicationID uuid.UUID
	FromStatus    Status
	ToStatus      Status
	ActorID       uuid.UUID
	CreatedAt     time.Time
}

// JobSummary is the slice of the job embedded in application reads.
type JobSummary struct {
	ID       uuid.UUID
	Title    string
	Company  job.Company
	Location string
	JobType  job.Type
}

// Details is an application expanded with its job, applicant and recruiter
// for display. A read-side join, not part of the stored record.
type Details struct {
	Application
	Job       JobSummary
	Applicant user.Summary
	Recruiter user.Summary
}

package dto

import (
	"time"

	"hirehub/internal/domain/application"
	"hirehub/internal/domain/job"

	"github.com/google/uuid"
)

type ApplicationJobResponse struct {
	ID       uuid.UUID       `json:"id"`
	Title    string          `json:"title"`
	Company  CompanyResponse `json:"company"`
	Location string          `json:"location,omitempty"`
	JobType  job.Type        `json:"jobType,omitempty"`
}

type ApplicationResponse struct {
	ID             uuid.UUID              `json:"id"`
	Status         application.Status     `json:"status"`
	CoverLetter    string                 `json:"coverLetter"`
	Resume         string                 `json:"resume,omitempty"`
	ExpectedSalary string                 `json:"expectedSalary,omitempty"`
	Availability   string                 `json:"availability,omitempty"`
	Notes          string                 `json:"notes,omitempty"`
	AppliedAt      time.Time              `json:"appliedAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
	Job            ApplicationJobResponse `json:"job"`
	Applicant      UserSummaryResponse    `json:"applicant"`
	Recruiter      UserSummaryResponse    `json:"recruiter"`
}

type StatusEventResponse struct {
	ID         uuid.UUID          `json:"id"`
	FromStatus application.Status `json:"fromStatus"`
	ToStatus   application.Status `json:"toStatus"`
	ActorID    uuid.UUID          `json:"actorId"`
	CreatedAt  time.Time          `json:"createdAt"`
}

func NewApplicationResponse(d application.Details) ApplicationResponse {
	recruiter := NewUserSummaryResponse(d.Recruiter)
	recruiter.Profile = nil // recruiter embeds as name/email only

	return ApplicationResponse{
		ID:             d.ID,
		Status:         d.Status,
		CoverLetter:    d.CoverLetter,
		Resume:         d.Resume,
		ExpectedSalary: d.ExpectedSalary,
		Availability:   d.Availability,
		Notes:          d.Notes,
		AppliedAt:      d.AppliedAt,
		UpdatedAt:      d.UpdatedAt,
		Job: ApplicationJobResponse{
			ID:    d.Job.ID,
			Title: d.Job.Title,
			Company: CompanyResponse{
				Name:        d.Job.Company.Name,
				Website:     d.Job.Company.Website,
				Description: d.Job.Company.Description,
			},
			Location: d.Job.Location,
			JobType:  d.Job.JobType,
		},
		Applicant: NewUserSummaryResponse(d.Applicant),
		Recruiter: recruiter,
	}
}

func NewApplicationResponses(details []application.Details) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(details))
	for _, d := range details {
		out = append(out, NewApplicationResponse(d))
	}
	return out
}

func NewStatusEventResponses(events []application.StatusEvent) []StatusEventResponse {
	out := make([]StatusEventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, StatusEventResponse{
			ID:         ev.ID,
			FromStatus: ev.FromStatus,
			ToStatus:   ev.ToStatus,
			ActorID:    ev.ActorID,
			CreatedAt:  ev.CreatedAt,
		})
	}
	return out
}

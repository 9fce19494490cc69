package dto

import (
	"time"

	"hirehub/internal/domain/job"
	"hirehub/internal/usecase"

	"github.com/google/uuid"
)

type SalaryResponse struct {
	Min *int64 `json:"min,omitempty"`
	Max *int64 `json:"max,omitempty"`
}

type CompanyResponse struct {
	Name        string `json:"name"`
	Website     string `json:"website,omitempty"`
	Description string `json:"description,omitempty"`
}

type JobResponse struct {
	ID               uuid.UUID           `json:"id"`
	PostedBy         uuid.UUID           `json:"postedBy"`
	Title            string              `json:"title"`
	Description      string              `json:"description"`
	Requirements     []string            `json:"requirements"`
	Responsibilities []string            `json:"responsibilities"`
	Location         string              `json:"location"`
	JobType          job.Type            `json:"jobType"`
	ExperienceLevel  job.ExperienceLevel `json:"experienceLevel"`
	Skills           []string            `json:"skills"`
	Salary           *SalaryResponse     `json:"salary,omitempty"`
	Company          CompanyResponse     `json:"company"`
	Status           job.Status          `json:"status"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

// JobDetailResponse carries the poster expanded for the detail page.
type JobDetailResponse struct {
	JobResponse
	PostedByUser UserSummaryResponse `json:"postedByUser"`
}

type JobPageResponse struct {
	Jobs        []JobResponse `json:"jobs"`
	TotalPages  int           `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
	Total       int           `json:"total"`
}

func NewJobResponse(j job.Job) JobResponse {
	var salary *SalaryResponse
	if j.Salary.Min != nil || j.Salary.Max != nil {
		salary = &SalaryResponse{Min: j.Salary.Min, Max: j.Salary.Max}
	}
	return JobResponse{
		ID:               j.ID,
		PostedBy:         j.PostedBy,
		Title:            j.Title,
		Description:      j.Description,
		Requirements:     j.Requirements,
		Responsibilities: j.Responsibilities,
		Location:         j.Location,
		JobType:          j.JobType,
		ExperienceLevel:  j.ExperienceLevel,
		Skills:           j.Skills,
		Salary:           salary,
		Company: CompanyResponse{
			Name:        j.Company.Name,
			Website:     j.Company.Website,
			Description: j.Company.Description,
		},
		Status:    j.Status,
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
}

func NewJobResponses(jobs []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j))
	}
	return out
}

func NewJobDetailResponse(d usecase.JobDetail) JobDetailResponse {
	return JobDetailResponse{
		JobResponse:  NewJobResponse(d.Job),
		PostedByUser: NewUserSummaryResponse(d.PostedByUser),
	}
}

func NewJobPageResponse(p usecase.JobPage) JobPageResponse {
	return JobPageResponse{
		Jobs:        NewJobResponses(p.Jobs),
		TotalPages:  p.TotalPages,
		CurrentPage: p.CurrentPage,
		Total:       p.Total,
	}
}

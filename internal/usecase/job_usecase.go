package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"hirehub/internal/domain/job"
	"hirehub/internal/domain/user"

	"github.com/google/uuid"
)

var ErrOnlyRecruitersPost = errors.New("only recruiters can post jobs")

type JobInput struct {
	Title            string
	Description      string
	Requirements     []string
	Responsibilities []string
	Location         string
	JobType          string
	ExperienceLevel  string
	Skills           []string
	SalaryMin        *int64
	SalaryMax        *int64
	CompanyName      string
	CompanyWebsite   string
	CompanyDesc      string
	Status           string
}

// JobPatch is a partial update: nil fields keep the stored value. A present
// salary or company replaces that object whole.
type JobPatch struct {
	Title            *string
	Description      *string
	Requirements     *[]string
	Responsibilities *[]string
	Location         *string
	JobType          *string
	ExperienceLevel  *string
	Skills           *[]string
	Salary           *job.Salary
	Company          *job.Company
	Status           *string
}

type JobListParams struct {
	JobType         string
	ExperienceLevel string
	Location        string
	Skills          []string
	Search          string
	Page            int
	Limit           int
}

// JobPage is one page of the public listing plus the counts the client needs
// for its pagination controls.
type JobPage struct {
	Jobs        []job.Job `json:"jobs"`
	Total       int       `json:"total"`
	TotalPages  int       `json:"totalPages"`
	CurrentPage int       `json:"currentPage"`
}

// JobDetail is a job expanded with its poster for display.
type JobDetail struct {
	job.Job
	PostedByUser user.Summary
}

type JobUsecase interface {
	Create(ctx context.Context, caller Identity, in JobInput) (job.Job, error)
	List(ctx context.Context, params JobListParams) (JobPage, error)
	Get(ctx context.Context, id uuid.UUID) (JobDetail, error)
	Update(ctx context.Context, caller Identity, id uuid.UUID, patch JobPatch) (job.Job, error)
	Delete(ctx context.Context, caller Identity, id uuid.UUID) error
	ListMine(ctx context.Context, caller Identity) ([]job.Job, error)
}

type Jobs struct {
	jobs   job.Repository
	users  user.Repository
	cache  ListingCache
	logger *log.Logger
}

func NewJobUsecase(jobs job.Repository, users user.Repository, cache ListingCache, logger *log.Logger) *Jobs {
	return &Jobs{jobs: jobs, users: users, cache: cache, logger: logger}
}

func (u *Jobs) Create(ctx context.Context, caller Identity, in JobInput) (job.Job, error) {
	if caller.Role != user.RoleRecruiter {
		return job.Job{}, ErrOnlyRecruitersPost
	}

	j, verr := buildJob(in)
	if verr != nil {
		return job.Job{}, verr
	}
	j.ID = uuid.New()
	j.PostedBy = caller.UserID
	if j.Status == "" {
		j.Status = job.StatusActive
	}

	if err := u.jobs.Create(ctx, j); err != nil {
		return job.Job{}, internalErr(err)
	}

	created, err := u.jobs.GetByID(ctx, j.ID)
	if err != nil {
		return job.Job{}, internalErr(err)
	}

	u.invalidateListing(ctx)
	return created, nil
}

func (u *Jobs) List(ctx context.Context, params JobListParams) (JobPage, error) {
	page := params.Page
	if page <= 0 {
		page = 1
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	f := job.ListFilter{
		JobType:         job.Type(strings.TrimSpace(params.JobType)),
		ExperienceLevel: job.ExperienceLevel(strings.TrimSpace(params.ExperienceLevel)),
		Location:        strings.TrimSpace(params.Location),
		Skills:          trimSkills(params.Skills),
		Search:          strings.TrimSpace(params.Search),
		Limit:           limit,
		Offset:          (page - 1) * limit,
	}
	if f.JobType != "" && !f.JobType.Valid() {
		return JobPage{}, invalidField("jobType", "Valid job type is required")
	}
	if f.ExperienceLevel != "" && !f.ExperienceLevel.Valid() {
		return JobPage{}, invalidField("experienceLevel", "Valid experience level is required")
	}

	cacheKey := JobListCacheKey(f, page, limit)
	if u.cache != nil {
		var cached JobPage
		if hit, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	jobs, total, err := u.jobs.ListActive(ctx, f)
	if err != nil {
		return JobPage{}, internalErr(err)
	}

	out := JobPage{
		Jobs:        jobs,
		Total:       total,
		TotalPages:  (total + limit - 1) / limit,
		CurrentPage: page,
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, out, 0); err != nil && u.logger != nil {
			u.logger.Printf("[Jobs] cache set failed key=%s err=%v", cacheKey, err)
		}
	}
	return out, nil
}

func (u *Jobs) Get(ctx context.Context, id uuid.UUID) (JobDetail, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return JobDetail{}, job.ErrNotFound
		}
		return JobDetail{}, internalErr(err)
	}

	poster, err := u.users.GetByID(ctx, j.PostedBy)
	if err != nil {
		return JobDetail{}, internalErr(err)
	}

	return JobDetail{
		Job: j,
		PostedByUser: user.Summary{
			ID:      poster.ID,
			Name:    poster.Name,
			Email:   poster.Email,
			Profile: poster.Profile,
		},
	}, nil
}

func (u *Jobs) Update(ctx context.Context, caller Identity, id uuid.UUID, patch JobPatch) (job.Job, error) {
	cur, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, internalErr(err)
	}
	if cur.PostedBy != caller.UserID {
		return job.Job{}, ErrNotJobOwner
	}

	// Overlay the patch on the stored job, then validate the merged result, so
	// {"status": "closed"} on its own is a legal request.
	j, verr := buildJob(applyPatch(cur, patch))
	if verr != nil {
		return job.Job{}, verr
	}
	j.ID = cur.ID
	j.PostedBy = cur.PostedBy

	if err := u.jobs.Update(ctx, j); err != nil {
		return job.Job{}, internalErr(err)
	}

	updated, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		return job.Job{}, internalErr(err)
	}

	u.invalidateListing(ctx)
	return updated, nil
}

func (u *Jobs) Delete(ctx context.Context, caller Identity, id uuid.UUID) error {
	cur, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.ErrNotFound
		}
		return internalErr(err)
	}
	if cur.PostedBy != caller.UserID {
		return ErrNotJobOwner
	}

	if err := u.jobs.DeleteWithApplications(ctx, id); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.ErrNotFound
		}
		return internalErr(err)
	}

	u.invalidateListing(ctx)
	return nil
}

func (u *Jobs) ListMine(ctx context.Context, caller Identity) ([]job.Job, error) {
	if caller.Role != user.RoleRecruiter {
		return nil, ErrRecruitersOnly
	}

	out, err := u.jobs.ListByRecruiter(ctx, caller.UserID)
	if err != nil {
		return nil, internalErr(err)
	}
	return out, nil
}

func (u *Jobs) invalidateListing(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, jobListCachePattern()); err != nil && u.logger != nil {
		u.logger.Printf("[Jobs] cache invalidation failed: %v", err)
	}
}

func buildJob(in JobInput) (job.Job, *ValidationError) {
	var fields []FieldError
	addErr := func(field, msg string) {
		fields = append(fields, FieldError{Field: field, Message: msg})
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		addErr("title", "Job title is required")
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		addErr("description", "Job description is required")
	}
	requirements := trimAll(in.Requirements)
	if len(requirements) == 0 {
		addErr("requirements", "At least one requirement is required")
	}
	responsibilities := trimAll(in.Responsibilities)
	if len(responsibilities) == 0 {
		addErr("responsibilities", "At least one responsibility is required")
	}
	location := strings.TrimSpace(in.Location)
	if location == "" {
		addErr("location", "Location is required")
	}
	jobType := job.Type(strings.TrimSpace(in.JobType))
	if !jobType.Valid() {
		addErr("jobType", "Valid job type is required")
	}
	level := job.ExperienceLevel(strings.TrimSpace(in.ExperienceLevel))
	if !level.Valid() {
		addErr("experienceLevel", "Valid experience level is required")
	}
	skills := trimSkills(in.Skills)
	if len(skills) == 0 {
		addErr("skills", "At least one skill is required")
	}
	companyName := strings.TrimSpace(in.CompanyName)
	if companyName == "" {
		addErr("company.name", "Company name is required")
	}
	status := job.Status(strings.TrimSpace(in.Status))
	if status != "" && !status.Valid() {
		addErr("status", "Valid status is required")
	}
	if in.SalaryMin != nil && in.SalaryMax != nil && *in.SalaryMin > *in.SalaryMax {
		addErr("salary", "Salary minimum cannot exceed maximum")
	}

	if len(fields) > 0 {
		return job.Job{}, &ValidationError{Fields: fields}
	}

	return job.Job{
		Title:            title,
		Description:      description,
		Requirements:     requirements,
		Responsibilities: responsibilities,
		Location:         location,
		JobType:          jobType,
		ExperienceLevel:  level,
		Skills:           skills,
		Salary:           job.Salary{Min: in.SalaryMin, Max: in.SalaryMax},
		Company: job.Company{
			Name:        companyName,
			Website:     strings.TrimSpace(in.CompanyWebsite),
			Description: strings.TrimSpace(in.CompanyDesc),
		},
		Status: status,
	}, nil
}

// applyPatch starts from the stored job and overwrites the fields the patch
// carries, yielding the JobInput to validate.
func applyPatch(cur job.Job, patch JobPatch) JobInput {
	in := JobInput{
		Title:            cur.Title,
		Description:      cur.Description,
		Requirements:     cur.Requirements,
		Responsibilities: cur.Responsibilities,
		Location:         cur.Location,
		JobType:          string(cur.JobType),
		ExperienceLevel:  string(cur.ExperienceLevel),
		Skills:           cur.Skills,
		SalaryMin:        cur.Salary.Min,
		SalaryMax:        cur.Salary.Max,
		CompanyName:      cur.Company.Name,
		CompanyWebsite:   cur.Company.Website,
		CompanyDesc:      cur.Company.Description,
		Status:           string(cur.Status),
	}

	if patch.Title != nil {
		in.Title = *patch.Title
	}
	if patch.Description != nil {
		in.Description = *patch.Description
	}
	if patch.Requirements != nil {
		in.Requirements = *patch.Requirements
	}
	if patch.Responsibilities != nil {
		in.Responsibilities = *patch.Responsibilities
	}
	if patch.Location != nil {
		in.Location = *patch.Location
	}
	if patch.JobType != nil {
		in.JobType = *patch.JobType
	}
	if patch.ExperienceLevel != nil {
		in.ExperienceLevel = *patch.ExperienceLevel
	}
	if patch.Skills != nil {
		in.Skills = *patch.Skills
	}
	if patch.Salary != nil {
		in.SalaryMin = patch.Salary.Min
		in.SalaryMax = patch.Salary.Max
	}
	if patch.Company != nil {
		in.CompanyName = patch.Company.Name
		in.CompanyWebsite = patch.Company.Website
		in.CompanyDesc = patch.Company.Description
	}
	if patch.Status != nil {
		in.Status = *patch.Status
	}

	return in
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// trimSkills also de-duplicates, since skills behave as a set.
func trimSkills(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

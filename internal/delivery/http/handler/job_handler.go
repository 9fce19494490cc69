package handler

import (
	"errors"
	"strconv"
	"strings"

	"hirehub/internal/delivery/http/dto"
	"hirehub/internal/delivery/http/middleware"
	"hirehub/internal/domain/job"
	"hirehub/internal/pkg/response"
	"hirehub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

type salaryRequest struct {
	Min *int64 `json:"min"`
	Max *int64 `json:"max"`
}

type companyRequest struct {
	Name        string `json:"name"`
	Website     string `json:"website"`
	Description string `json:"description"`
}

type jobRequest struct {
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Requirements     []string       `json:"requirements"`
	Responsibilities []string       `json:"responsibilities"`
	Location         string         `json:"location"`
	JobType          string         `json:"jobType"`
	ExperienceLevel  string         `json:"experienceLevel"`
	Skills           []string       `json:"skills"`
	Salary           *salaryRequest `json:"salary"`
	Company          companyRequest `json:"company"`
	Status           string         `json:"status"`
}

// jobUpdateRequest is the partial-update body: absent keys leave the stored
// field alone, so closing a job is just {"status": "closed"}.
type jobUpdateRequest struct {
	Title            *string         `json:"title"`
	Description      *string         `json:"description"`
	Requirements     *[]string       `json:"requirements"`
	Responsibilities *[]string       `json:"responsibilities"`
	Location         *string         `json:"location"`
	JobType          *string         `json:"jobType"`
	ExperienceLevel  *string         `json:"experienceLevel"`
	Skills           *[]string       `json:"skills"`
	Salary           *salaryRequest  `json:"salary"`
	Company          *companyRequest `json:"company"`
	Status           *string         `json:"status"`
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/:id", h.Get)
}

func (h *JobHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
	r.Get("/my-jobs/posted", h.ListMine)
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	var req jobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	created, err := h.uc.Create(c.Context(), caller, jobInput(req))
	if err != nil {
		return mapJobUsecaseError(err, "")
	}

	return response.Resource(c, fiber.StatusCreated, "job", dto.NewJobResponse(created))
}

func (h *JobHandler) List(c fiber.Ctx) error {
	page, err := queryInt(c, "page", 1)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}
	limit, err := queryInt(c, "limit", 10)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	result, err := h.uc.List(c.Context(), usecase.JobListParams{
		JobType:         c.Query("jobType"),
		ExperienceLevel: c.Query("experienceLevel"),
		Location:        c.Query("location"),
		Skills:          splitCSV(c.Query("skills")),
		Search:          c.Query("search"),
		Page:            page,
		Limit:           limit,
	})
	if err != nil {
		return mapJobUsecaseError(err, "")
	}

	p := dto.NewJobPageResponse(result)
	return response.Envelope(c, fiber.StatusOK, fiber.Map{
		"jobs":        p.Jobs,
		"totalPages":  p.TotalPages,
		"currentPage": p.CurrentPage,
		"total":       p.Total,
	})
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", err)
	}

	detail, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapJobUsecaseError(err, "")
	}

	return response.Resource(c, fiber.StatusOK, "job", dto.NewJobDetailResponse(detail))
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", err)
	}

	var req jobUpdateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	updated, err := h.uc.Update(c.Context(), caller, id, jobPatch(req))
	if err != nil {
		return mapJobUsecaseError(err, "Not authorized to update this job")
	}

	return response.Resource(c, fiber.StatusOK, "job", dto.NewJobResponse(updated))
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", err)
	}

	if err := h.uc.Delete(c.Context(), caller, id); err != nil {
		return mapJobUsecaseError(err, "Not authorized to delete this job")
	}

	return response.Message(c, fiber.StatusOK, "Job deleted successfully")
}

func (h *JobHandler) ListMine(c fiber.Ctx) error {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	jobs, err := h.uc.ListMine(c.Context(), caller)
	if err != nil {
		return mapJobUsecaseError(err, "")
	}

	return response.Resource(c, fiber.StatusOK, "jobs", dto.NewJobResponses(jobs))
}

func jobInput(req jobRequest) usecase.JobInput {
	in := usecase.JobInput{
		Title:            req.Title,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		Location:         req.Location,
		JobType:          req.JobType,
		ExperienceLevel:  req.ExperienceLevel,
		Skills:           req.Skills,
		CompanyName:      req.Company.Name,
		CompanyWebsite:   req.Company.Website,
		CompanyDesc:      req.Company.Description,
		Status:           req.Status,
	}
	if req.Salary != nil {
		in.SalaryMin = req.Salary.Min
		in.SalaryMax = req.Salary.Max
	}
	return in
}

func jobPatch(req jobUpdateRequest) usecase.JobPatch {
	patch := usecase.JobPatch{
		Title:            req.Title,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		Location:         req.Location,
		JobType:          req.JobType,
		ExperienceLevel:  req.ExperienceLevel,
		Skills:           req.Skills,
		Status:           req.Status,
	}
	if req.Salary != nil {
		patch.Salary = &job.Salary{Min: req.Salary.Min, Max: req.Salary.Max}
	}
	if req.Company != nil {
		patch.Company = &job.Company{
			Name:        req.Company.Name,
			Website:     req.Company.Website,
			Description: req.Company.Description,
		}
	}
	return patch
}

func mapJobUsecaseError(err error, ownershipMessage string) error {
	if ownershipMessage == "" {
		ownershipMessage = response.MessageForbidden
	}

	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return middleware.NewValidationAppError(fieldErrors(verr), err)
	case errors.Is(err, usecase.ErrOnlyRecruitersPost):
		return middleware.NewAppError(fiber.StatusForbidden, "Only recruiters can post jobs", err)
	case errors.Is(err, usecase.ErrRecruitersOnly):
		return middleware.NewAppError(fiber.StatusForbidden, response.MessageForbidden, err)
	case errors.Is(err, usecase.ErrNotJobOwner):
		return middleware.NewAppError(fiber.StatusForbidden, ownershipMessage, err)
	case errors.Is(err, job.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageServerError, err)
	}
}

func queryInt(c fiber.Ctx, key string, def int) (int, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func splitCSV(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

package handler

import (
	"errors"

	"hirehub/internal/delivery/http/dto"
	"hirehub/internal/delivery/http/middleware"
	"hirehub/internal/domain/application"
	"hirehub/internal/pkg/response"
	"hirehub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

type applyRequest struct {
	Job            string `json:"job"`
	CoverLetter    string `json:"coverLetter"`
	Resume         string `json:"resume"`
	ExpectedSalary string `json:"expectedSalary"`
	Availability   string `json:"availability"`
	Notes          string `json:"notes"`
}

type statusRequest struct {
	Status string `json:"status"`
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Apply)
	r.Get("/job/:jobId", h.ListForJob)
	r.Get("/my-applications", h.ListMine)
	r.Put("/:id/status", h.UpdateStatus)
	r.Get("/:id/history", h.StatusHistory)
	r.Get("/recruiter/all", h.ListForRecruiter)
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	var req applyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	// An unparseable job id is indistinguishable from a missing job.
	jobID, err := uuid.Parse(req.Job)
	if err != nil {
		if req.Job == "" {
			return middleware.NewValidationAppError([]response.FieldError{
				{Field: "job", Message: "Job ID is required"},
			}, err)
		}
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found or not active", err)
	}

	d, err := h.uc.Apply(c.Context(), caller, usecase.ApplyInput{
		JobID:          jobID,
		CoverLetter:    req.CoverLetter,
		Resume:         req.Resume,
		ExpectedSalary: req.ExpectedSalary,
		Availability:   req.Availability,
		Notes:          req.Notes,
	})
	if err != nil {
		return mapApplicationUsecaseError(err, "")
	}

	return response.Resource(c, fiber.StatusCreated, "application", dto.NewApplicationResponse(d))
}

func (h *ApplicationHandler) ListForJob(c fiber.Ctx) error {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusForbidden, "Not authorized to view applications for this job", err)
	}

	apps, err := h.uc.ListForJob(c.Context(), caller, jobID)
	if err != nil {
		return mapApplicationUsecaseError(err, "Not authorized to view applications for this job")
	}

	return response.Resource(c, fiber.StatusOK, "applications", dto.NewApplicationResponses(apps))
}

func (h *ApplicationHandler) ListMine(c fiber.Ctx) error {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	apps, err := h.uc.ListMine(c.Context(), caller)
	if err != nil {
		return mapApplicationUsecaseError(err, "")
	}

	return response.Resource(c, fiber.StatusOK, "applications", dto.NewApplicationResponses(apps))
}

func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", err)
	}

	var req statusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	d, err := h.uc.UpdateStatus(c.Context(), caller, id, req.Status)
	if err != nil {
		return mapApplicationUsecaseError(err, "Not authorized to update this application")
	}

	return response.Resource(c, fiber.StatusOK, "application", dto.NewApplicationResponse(d))
}

func (h *ApplicationHandler) StatusHistory(c fiber.Ctx) error {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", err)
	}

	events, err := h.uc.StatusHistory(c.Context(), caller, id)
	if err != nil {
		return mapApplicationUsecaseError(err, "")
	}

	return response.Resource(c, fiber.StatusOK, "history", dto.NewStatusEventResponses(events))
}

func (h *ApplicationHandler) ListForRecruiter(c fiber.Ctx) error {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	apps, err := h.uc.ListForRecruiter(c.Context(), caller)
	if err != nil {
		return mapApplicationUsecaseError(err, "")
	}

	return response.Resource(c, fiber.StatusOK, "applications", dto.NewApplicationResponses(apps))
}

func mapApplicationUsecaseError(err error, ownershipMessage string) error {
	if ownershipMessage == "" {
		ownershipMessage = response.MessageForbidden
	}

	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return middleware.NewValidationAppError(fieldErrors(verr), err)
	case errors.Is(err, usecase.ErrOnlyCandidatesApply):
		return middleware.NewAppError(fiber.StatusForbidden, "Only candidates can apply for jobs", err)
	case errors.Is(err, usecase.ErrRecruitersOnly), errors.Is(err, usecase.ErrCandidatesOnly):
		return middleware.NewAppError(fiber.StatusForbidden, response.MessageForbidden, err)
	case errors.Is(err, usecase.ErrNotJobOwner):
		return middleware.NewAppError(fiber.StatusForbidden, ownershipMessage, err)
	case errors.Is(err, usecase.ErrJobNotOpen):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found or not active", err)
	case errors.Is(err, application.ErrAlreadyApplied):
		return middleware.NewAppError(fiber.StatusBadRequest, "You have already applied for this job", err)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid status transition", err)
	case errors.Is(err, application.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageServerError, err)
	}
}

package handler

import (
	"errors"

	"hirehub/internal/delivery/http/dto"
	"hirehub/internal/delivery/http/middleware"
	"hirehub/internal/domain/user"
	"hirehub/internal/pkg/response"
	"hirehub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc usecase.UserUsecase
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/profile", h.GetProfile)
	r.Put("/profile", h.UpdateProfile)
	r.Get("/candidates", h.ListCandidates)
}

func (h *UserHandler) GetProfile(c fiber.Ctx) error {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	usr, err := h.uc.GetProfile(c.Context(), caller.UserID)
	if err != nil {
		return mapUserUsecaseError(err)
	}

	return response.Resource(c, fiber.StatusOK, "user", dto.NewUserResponse(usr))
}

func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	// The body is open-shaped: name and email are top-level identity fields,
	// everything else merges into the profile blob.
	var body map[string]any
	if err := c.Bind().Body(&body); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	in := usecase.UpdateProfileInput{Profile: map[string]any{}}
	for k, v := range body {
		switch k {
		case "name":
			if s, ok := v.(string); ok {
				in.Name = &s
			}
		case "email":
			if s, ok := v.(string); ok {
				in.Email = &s
			}
		default:
			in.Profile[k] = v
		}
	}

	usr, err := h.uc.UpdateProfile(c.Context(), caller.UserID, in)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Email already exists", err)
		}
		return mapUserUsecaseError(err)
	}

	return response.Resource(c, fiber.StatusOK, "user", dto.NewUserResponse(usr))
}

func (h *UserHandler) ListCandidates(c fiber.Ctx) error {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	candidates, err := h.uc.ListCandidates(c.Context(), caller)
	if err != nil {
		return mapUserUsecaseError(err)
	}

	return response.Resource(c, fiber.StatusOK, "candidates", dto.NewUserResponses(candidates))
}

func mapUserUsecaseError(err error) error {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return middleware.NewValidationAppError(fieldErrors(verr), err)
	case errors.Is(err, usecase.ErrRecruitersOnly):
		return middleware.NewAppError(fiber.StatusForbidden, response.MessageForbidden, err)
	case errors.Is(err, user.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageServerError, err)
	}
}

func fieldErrors(verr *usecase.ValidationError) []response.FieldError {
	if verr == nil {
		return nil
	}
	out := make([]response.FieldError, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		out = append(out, response.FieldError{Field: f.Field, Message: f.Message})
	}
	return out
}

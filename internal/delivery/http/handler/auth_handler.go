package handler

import (
	"errors"

	"hirehub/internal/delivery/http/dto"
	"hirehub/internal/delivery/http/middleware"
	"hirehub/internal/pkg/response"
	"hirehub/internal/usecase"
	ucauth "hirehub/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc    usecase.AuthUsecase
	users usecase.UserUsecase
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthHandler(uc usecase.AuthUsecase, users usecase.UserUsecase) *AuthHandler {
	return &AuthHandler{uc: uc, users: users}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/refresh", h.Refresh)
}

func (h *AuthHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.Me)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	usr, access, refresh, err := h.uc.Register(c.Context(), ucauth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	return response.Envelope(c, fiber.StatusCreated, fiber.Map{
		"user":         dto.NewUserResponse(usr),
		"token":        access,
		"refreshToken": refresh,
	})
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	usr, access, refresh, err := h.uc.Login(c.Context(), ucauth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	return response.Envelope(c, fiber.StatusOK, fiber.Map{
		"user":         dto.NewUserResponse(usr),
		"token":        access,
		"refreshToken": refresh,
	})
}

func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	token, ok := middleware.BearerTokenFromHeader(c.Get("Authorization"))
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	access, refresh, err := h.uc.Refresh(c.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRefreshTokenExpired):
			return middleware.NewAppError(fiber.StatusUnauthorized, "Refresh token expired", err)
		case errors.Is(err, usecase.ErrInvalidRefreshToken):
			return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid refresh token", err)
		case errors.Is(err, usecase.ErrUnauthorized):
			return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageServerError, err)
		}
	}

	return response.Envelope(c, fiber.StatusOK, fiber.Map{
		"token":        access,
		"refreshToken": refresh,
	})
}

func (h *AuthHandler) Me(c fiber.Ctx) error {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	usr, err := h.users.GetProfile(c.Context(), caller.UserID)
	if err != nil {
		return mapUserUsecaseError(err)
	}

	return response.Resource(c, fiber.StatusOK, "user", dto.NewUserResponse(usr))
}

func mapAuthUsecaseError(err error) error {
	switch {
	case errors.Is(err, ucauth.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusBadRequest, "Email already exists", err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid credentials", err)
	case errors.Is(err, ucauth.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageServerError, err)
	}
}

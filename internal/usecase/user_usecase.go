package usecase

import (
	"context"
	"errors"
	"strings"

	"hirehub/internal/domain/user"

	"github.com/google/uuid"
)

type UpdateProfileInput struct {
	Name  *string
	Email *string

	// Everything else from the request body merges into the open profile
	// structure (phone, skills, company info and so on).
	Profile map[string]any
}

type UserUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (user.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.User, error)
	ListCandidates(ctx context.Context, caller Identity) ([]user.User, error)
}

type Users struct {
	users user.Repository
}

func NewUserUsecase(users user.Repository) *Users {
	return &Users{users: users}
}

func (u *Users) GetProfile(ctx context.Context, userID uuid.UUID) (user.User, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, internalErr(err)
	}
	return sanitize(usr), nil
}

func (u *Users) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.User, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, internalErr(err)
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return user.User{}, invalidField("name", "Name cannot be empty")
		}
		usr.Name = name
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email == "" || !strings.Contains(email, "@") {
			return user.User{}, invalidField("email", "Valid email is required")
		}
		usr.Email = email
	}
	if usr.Profile == nil {
		usr.Profile = user.Profile{}
	}
	for k, v := range in.Profile {
		usr.Profile[k] = v
	}

	if err := u.users.Update(ctx, usr); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return user.User{}, user.ErrEmailTaken
		}
		return user.User{}, internalErr(err)
	}

	updated, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, internalErr(err)
	}
	return sanitize(updated), nil
}

func (u *Users) ListCandidates(ctx context.Context, caller Identity) ([]user.User, error) {
	if caller.Role != user.RoleRecruiter {
		return nil, ErrRecruitersOnly
	}

	candidates, err := u.users.ListByRole(ctx, user.RoleCandidate)
	if err != nil {
		return nil, internalErr(err)
	}
	for i := range candidates {
		candidates[i] = sanitize(candidates[i])
	}
	return candidates, nil
}

func sanitize(u user.User) user.User {
	u.PasswordHash = ""
	return u
}

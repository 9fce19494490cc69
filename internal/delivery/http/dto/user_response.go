package dto

import (
	"time"

	"hirehub/internal/domain/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Role      user.Role    `json:"role"`
	Profile   user.Profile `json:"profile"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

type UserSummaryResponse struct {
	ID      uuid.UUID    `json:"id"`
	Name    string       `json:"name"`
	Email   string       `json:"email"`
	Profile user.Profile `json:"profile,omitempty"`
}

func NewUserResponse(u user.User) UserResponse {
	profile := u.Profile
	if profile == nil {
		profile = user.Profile{}
	}
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Profile:   profile,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func NewUserResponses(users []user.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

func NewUserSummaryResponse(s user.Summary) UserSummaryResponse {
	return UserSummaryResponse{ID: s.ID, Name: s.Name, Email: s.Email, Profile: s.Profile}
}

package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleRecruiter Role = "recruiter"
	RoleCandidate Role = "candidate"
)

func (r Role) Valid() bool {
	return r == RoleRecruiter || r == RoleCandidate
}

// Profile is an open structure; its shape depends on the role
// (phone, skills and location for candidates, company info for recruiters).
type Profile map[string]any

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Profile      Profile
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Summary is the slimmed-down shape embedded in job and application reads.
type Summary struct {
	ID      uuid.UUID
	Name    string
	Email   string
	Profile Profile
}

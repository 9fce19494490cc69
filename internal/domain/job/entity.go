package job

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeFullTime   Type = "full-time"
	TypePartTime   Type = "part-time"
	TypeContract   Type = "contract"
	TypeInternship Type = "internship"
	TypeRemote     Type = "remote"
)

func (t Type) Valid() bool {
	switch t {
	case TypeFullTime, TypePartTime, TypeContract, TypeInternship, TypeRemote:
		return true
	}
	return false
}

type ExperienceLevel string

const (
	LevelEntry     ExperienceLevel = "entry-level"
	LevelMid       ExperienceLevel = "mid-level"
	LevelSenior    ExperienceLevel = "senior-level"
	LevelExecutive ExperienceLevel = "executive"
)

func (l ExperienceLevel) Valid() bool {
	switch l {
	case LevelEntry, LevelMid, LevelSenior, LevelExecutive:
		return true
	}
	return false
}

type Status string

const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusClosed
}

type Salary struct {
	Min *int64
	Max *int64
}

type Company struct {
	Name        string
	Website     string
	Description string
}

type Job struct {
	ID               uuid.UUID
	PostedBy         uuid.UUID
	Title            string
	Description      string
	Requirements     []string
	Responsibilities []string
	Location         string
	JobType          Type
	ExperienceLevel  ExperienceLevel
	Skills           []string
	Salary           Salary
	Company          Company
	Status           Status
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ListFilter narrows the public listing. Zero values mean "no filter".
type ListFilter struct {
	JobType         Type
	ExperienceLevel ExperienceLevel
	Location        string
	Skills          []string
	Search          string
	Limit           int
	Offset          int
}

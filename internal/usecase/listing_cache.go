package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"hirehub/internal/domain/job"
)

// ListingCache fronts the public job listing. Implementations may be
// unavailable; callers treat every cache error as a miss.
type ListingCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

const jobListCachePrefix = "jobs:list:"

// JobListCacheKey is deterministic for a given filter set, so identical
// requests share an entry. Skills keep their case: the array-overlap match in
// storage is case-sensitive, so "Go" and "go" are different filters. They are
// sorted because overlap does not care about order. Location and search may
// lowercase freely since both match with ILIKE.
func JobListCacheKey(f job.ListFilter, page, limit int) string {
	skills := make([]string, 0, len(f.Skills))
	for _, s := range f.Skills {
		s = strings.TrimSpace(s)
		if s != "" {
			skills = append(skills, s)
		}
	}
	sort.Strings(skills)

	return jobListCachePrefix + fmt.Sprintf(
		"type=%s|level=%s|loc=%s|skills=%s|q=%s|page=%d|limit=%d",
		strings.ToLower(string(f.JobType)),
		strings.ToLower(string(f.ExperienceLevel)),
		strings.ToLower(strings.TrimSpace(f.Location)),
		strings.Join(skills, ","),
		strings.ToLower(strings.TrimSpace(f.Search)),
		page, limit,
	)
}

func jobListCachePattern() string {
	return jobListCachePrefix + "*"
}

package repository

import (
	"strings"
	"testing"

	"hirehub/internal/domain/job"
)

func TestBuildListWhereDefaultsToActiveOnly(t *testing.T) {
	where, args := buildListWhere(job.ListFilter{})
	if where != `status = 'active'` {
		t.Fatalf("unexpected clause %q", where)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
}

func TestBuildListWhereNumbersPlaceholders(t *testing.T) {
	f := job.ListFilter{
		JobType:         job.TypeFullTime,
		ExperienceLevel: job.LevelMid,
		Location:        "Berlin",
		Skills:          []string{"go", "postgres"},
		Search:          "backend",
	}

	where, args := buildListWhere(f)

	if len(args) != 5 {
		t.Fatalf("expected 5 args, got %d: %v", len(args), args)
	}
	if args[0] != job.TypeFullTime || args[1] != job.LevelMid || args[2] != "Berlin" {
		t.Errorf("unexpected arg order: %v", args)
	}
	if !strings.HasPrefix(where, `status = 'active' AND `) {
		t.Errorf("active filter must come first, got %q", where)
	}
	for _, want := range []string{
		`job_type = $1`,
		`experience_level = $2`,
		`location ILIKE '%' || $3 || '%'`,
		`skills && $4`,
	} {
		if !strings.Contains(where, want) {
			t.Errorf("missing %q in %q", want, where)
		}
	}
	// The search term is one arg referenced across all three columns.
	if strings.Count(where, "$5") != 3 {
		t.Errorf("expected search placeholder three times, got %q", where)
	}
	if !strings.Contains(where, "company_name ILIKE") {
		t.Errorf("search must include company name, got %q", where)
	}
}

func TestBuildListWhereSkipsEmptyFilters(t *testing.T) {
	where, args := buildListWhere(job.ListFilter{Search: "go"})
	if len(args) != 1 {
		t.Fatalf("expected one arg, got %v", args)
	}
	if strings.Contains(where, "job_type") || strings.Contains(where, "skills &&") {
		t.Errorf("unset filters must not appear, got %q", where)
	}
	if !strings.Contains(where, "$1") {
		t.Errorf("expected search bound to $1, got %q", where)
	}
}

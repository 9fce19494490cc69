package database

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL CHECK (role IN ('recruiter', 'candidate')),
		profile       JSONB NOT NULL DEFAULT '{}'::jsonb,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS jobs (
		id                  UUID PRIMARY KEY,
		posted_by           UUID NOT NULL REFERENCES users(id),
		title               TEXT NOT NULL,
		description         TEXT NOT NULL,
		requirements        TEXT[] NOT NULL,
		responsibilities    TEXT[] NOT NULL,
		location            TEXT NOT NULL,
		job_type            TEXT NOT NULL,
		experience_level    TEXT NOT NULL,
		skills              TEXT[] NOT NULL,
		salary_min          BIGINT,
		salary_max          BIGINT,
		company_name        TEXT NOT NULL,
		company_website     TEXT NOT NULL DEFAULT '',
		company_description TEXT NOT NULL DEFAULT '',
		status              TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'closed')),
		created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_jobs_listing ON jobs (status, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_posted_by ON jobs (posted_by)`,

	`CREATE TABLE IF NOT EXISTS applications (
		id              UUID PRIMARY KEY,
		job_id          UUID NOT NULL REFERENCES jobs(id),
		applicant_id    UUID NOT NULL REFERENCES users(id),
		recruiter_id    UUID NOT NULL REFERENCES users(id),
		status          TEXT NOT NULL DEFAULT 'pending'
			CHECK (status IN ('pending', 'reviewing', 'shortlisted', 'rejected', 'accepted')),
		cover_letter    TEXT NOT NULL,
		resume          TEXT NOT NULL DEFAULT '',
		expected_salary TEXT NOT NULL DEFAULT '',
		availability    TEXT NOT NULL DEFAULT '',
		notes           TEXT NOT NULL DEFAULT '',
		applied_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	// One application per (job, applicant). The insert path relies on this
	// constraint for duplicate detection.
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_applications_job_applicant
		ON applications (job_id, applicant_id)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_applicant ON applications (applicant_id, applied_at DESC)`,

	`CREATE TABLE IF NOT EXISTS application_status_events (
		id             UUID PRIMARY KEY,
		application_id UUID NOT NULL REFERENCES applications(id) ON DELETE CASCADE,
		from_status    TEXT NOT NULL,
		to_status      TEXT NOT NULL,
		actor_id       UUID NOT NULL REFERENCES users(id),
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema creates the tables and indexes on startup. Every statement is
// idempotent, so rerunning against an existing database is safe.
func EnsureSchema(ctx context.Context, db DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

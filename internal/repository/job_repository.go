package repository

import (
	"context"
	"fmt"
	"strings"

	"hirehub/internal/database"
	"hirehub/internal/domain/job"

	"github.com/google/uuid"
)

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, posted_by, title, description, requirements, responsibilities,
	location, job_type, experience_level, skills, salary_min, salary_max,
	company_name, company_website, company_description, status, created_at, updated_at`

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, posted_by, title, description, requirements, responsibilities,
			location, job_type, experience_level, skills, salary_min, salary_max,
			company_name, company_website, company_description, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		j.ID, j.PostedBy, j.Title, j.Description, j.Requirements, j.Responsibilities,
		j.Location, j.JobType, j.ExperienceLevel, j.Skills, j.Salary.Min, j.Salary.Max,
		j.Company.Name, j.Company.Website, j.Company.Description, j.Status,
	)
	return err
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	return scanJob(row)
}

func (r *PostgresJobRepository) Update(ctx context.Context, j job.Job) error {
	n, err := r.db.Exec(ctx,
		`UPDATE jobs
		 SET title = $2, description = $3, requirements = $4, responsibilities = $5,
			location = $6, job_type = $7, experience_level = $8, skills = $9,
			salary_min = $10, salary_max = $11, company_name = $12, company_website = $13,
			company_description = $14, status = $15, updated_at = now()
		 WHERE id = $1`,
		j.ID, j.Title, j.Description, j.Requirements, j.Responsibilities,
		j.Location, j.JobType, j.ExperienceLevel, j.Skills,
		j.Salary.Min, j.Salary.Max, j.Company.Name, j.Company.Website,
		j.Company.Description, j.Status,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

// DeleteWithApplications removes applications first, then the job, inside one
// transaction so the cascade is all-or-nothing. Status events hang off
// applications with ON DELETE CASCADE and go with them.
func (r *PostgresJobRepository) DeleteWithApplications(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM applications WHERE job_id = $1`, id); err != nil {
		return err
	}

	n, err := tx.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return job.ErrNotFound
	}

	return tx.Commit(ctx)
}

func (r *PostgresJobRepository) ListActive(ctx context.Context, f job.ListFilter) ([]job.Job, int, error) {
	where, args := buildListWhere(f)

	var total int
	row := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM jobs WHERE `+where, args...)
	if err := row.Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE `+where+
			fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args)),
		args...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out, err := collectJobs(rows)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresJobRepository) ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE posted_by = $1 ORDER BY created_at DESC`,
		recruiterID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func buildListWhere(f job.ListFilter) (string, []any) {
	conds := []string{`status = 'active'`}
	args := make([]any, 0, 5)

	arg := func(v any) int {
		args = append(args, v)
		return len(args)
	}

	if f.JobType != "" {
		conds = append(conds, fmt.Sprintf(`job_type = $%d`, arg(f.JobType)))
	}
	if f.ExperienceLevel != "" {
		conds = append(conds, fmt.Sprintf(`experience_level = $%d`, arg(f.ExperienceLevel)))
	}
	if f.Location != "" {
		conds = append(conds, fmt.Sprintf(`location ILIKE '%%' || $%d || '%%'`, arg(f.Location)))
	}
	if len(f.Skills) > 0 {
		conds = append(conds, fmt.Sprintf(`skills && $%d`, arg(f.Skills)))
	}
	if f.Search != "" {
		n := arg(f.Search)
		conds = append(conds, fmt.Sprintf(
			`(title ILIKE '%%' || $%d || '%%' OR description ILIKE '%%' || $%d || '%%' OR company_name ILIKE '%%' || $%d || '%%')`,
			n, n, n,
		))
	}

	return strings.Join(conds, " AND "), args
}

func collectJobs(rows database.Rows) ([]job.Job, error) {
	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanJob(row scanner) (job.Job, error) {
	var j job.Job
	err := row.Scan(
		&j.ID, &j.PostedBy, &j.Title, &j.Description, &j.Requirements, &j.Responsibilities,
		&j.Location, &j.JobType, &j.ExperienceLevel, &j.Skills, &j.Salary.Min, &j.Salary.Max,
		&j.Company.Name, &j.Company.Website, &j.Company.Description, &j.Status,
		&j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

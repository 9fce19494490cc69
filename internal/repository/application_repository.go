package repository

import (
	"context"

	"hirehub/internal/database"
	"hirehub/internal/domain/application"

	"github.com/google/uuid"
)

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, job_id, applicant_id, recruiter_id, status,
			cover_letter, resume, expected_salary, availability, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		a.ID, a.JobID, a.ApplicantID, a.RecruiterID, a.Status,
		a.CoverLetter, a.Resume, a.ExpectedSalary, a.Availability, a.Notes,
	)
	if err != nil {
		if isUniqueViolation(err, "uq_applications_job_applicant") {
			return application.ErrAlreadyApplied
		}
		return err
	}
	return nil
}

const applicationColumns = `id, job_id, applicant_id, recruiter_id, status, cover_letter,
	resume, expected_salary, availability, notes, applied_at, updated_at`

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	return scanApplication(row)
}

// UpdateStatus reads the current status under a row lock, overwrites it and
// appends the status event, all in one transaction.
func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, to application.Status, actorID uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var from application.Status
	row := tx.QueryRow(ctx, `SELECT status FROM applications WHERE id = $1 FOR UPDATE`, id)
	if err := row.Scan(&from); err != nil {
		if isNoRows(err) {
			return application.ErrNotFound
		}
		return err
	}

	if _, err := tx.Exec(ctx,
		`UPDATE applications SET status = $2, updated_at = now() WHERE id = $1`,
		id, to,
	); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO application_status_events (id, application_id, from_status, to_status, actor_id)
		 VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), id, from, to, actorID,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

const detailsQuery = `SELECT a.id, a.job_id, a.applicant_id, a.recruiter_id, a.status,
	a.cover_letter, a.resume, a.expected_salary, a.availability, a.notes,
	a.applied_at, a.updated_at,
	j.title, j.company_name, j.company_website, j.company_description, j.location, j.job_type,
	ap.name, ap.email, ap.profile,
	rc.name, rc.email
FROM applications a
JOIN jobs j ON j.id = a.job_id
JOIN users ap ON ap.id = a.applicant_id
JOIN users rc ON rc.id = a.recruiter_id`

func (r *PostgresApplicationRepository) GetDetails(ctx context.Context, id uuid.UUID) (application.Details, error) {
	row := r.db.QueryRow(ctx, detailsQuery+` WHERE a.id = $1`, id)
	d, err := scanDetails(row)
	if err != nil {
		if isNoRows(err) {
			return application.Details{}, application.ErrNotFound
		}
		return application.Details{}, err
	}
	return d, nil
}

func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.Details, error) {
	return r.listDetails(ctx, detailsQuery+` WHERE a.job_id = $1 ORDER BY a.applied_at DESC`, jobID)
}

func (r *PostgresApplicationRepository) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]application.Details, error) {
	return r.listDetails(ctx, detailsQuery+` WHERE a.applicant_id = $1 ORDER BY a.applied_at DESC`, applicantID)
}

// ListByRecruiter keys off the job's live owner rather than the denormalized
// recruiter column.
func (r *PostgresApplicationRepository) ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]application.Details, error) {
	return r.listDetails(ctx, detailsQuery+` WHERE j.posted_by = $1 ORDER BY a.applied_at DESC`, recruiterID)
}

func (r *PostgresApplicationRepository) ListStatusEvents(ctx context.Context, applicationID uuid.UUID) ([]application.StatusEvent, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, application_id, from_status, to_status, actor_id, created_at
		 FROM application_status_events
		 WHERE application_id = $1
		 ORDER BY created_at ASC`,
		applicationID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.StatusEvent, 0)
	for rows.Next() {
		var ev application.StatusEvent
		if err := rows.Scan(&ev.ID, &ev.ApplicationID, &ev.FromStatus, &ev.ToStatus, &ev.ActorID, &ev.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) listDetails(ctx context.Context, query string, arg any) ([]application.Details, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Details, 0)
	for rows.Next() {
		d, err := scanDetails(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanApplication(row scanner) (application.Application, error) {
	var a application.Application
	err := row.Scan(
		&a.ID, &a.JobID, &a.ApplicantID, &a.RecruiterID, &a.Status, &a.CoverLetter,
		&a.Resume, &a.ExpectedSalary, &a.Availability, &a.Notes, &a.AppliedAt, &a.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	return a, nil
}

func scanDetails(row scanner) (application.Details, error) {
	var d application.Details
	var applicantProfile []byte
	err := row.Scan(
		&d.ID, &d.JobID, &d.ApplicantID, &d.RecruiterID, &d.Status,
		&d.CoverLetter, &d.Resume, &d.ExpectedSalary, &d.Availability, &d.Notes,
		&d.AppliedAt, &d.UpdatedAt,
		&d.Job.Title, &d.Job.Company.Name, &d.Job.Company.Website, &d.Job.Company.Description,
		&d.Job.Location, &d.Job.JobType,
		&d.Applicant.Name, &d.Applicant.Email, &applicantProfile,
		&d.Recruiter.Name, &d.Recruiter.Email,
	)
	if err != nil {
		return application.Details{}, err
	}

	d.Job.ID = d.JobID
	d.Applicant.ID = d.ApplicantID
	d.Recruiter.ID = d.RecruiterID
	if d.Applicant.Profile, err = unmarshalProfile(applicantProfile); err != nil {
		return application.Details{}, err
	}
	return d, nil
}

package repository

import (
	"context"
	"encoding/json"

	"hirehub/internal/database"
	"hirehub/internal/domain/user"

	"github.com/google/uuid"
)

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u user.User) error {
	profile, err := marshalProfile(u.Profile)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, role, profile)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Role, profile,
	)
	if err != nil {
		if isUniqueViolation(err, "users_email_key") {
			return user.ErrEmailTaken
		}
		return err
	}
	return nil
}

const userColumns = `id, name, email, password_hash, role, profile, created_at, updated_at`

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *PostgresUserRepository) Update(ctx context.Context, u user.User) error {
	profile, err := marshalProfile(u.Profile)
	if err != nil {
		return err
	}

	n, err := r.db.Exec(ctx,
		`UPDATE users
		 SET name = $2, email = $3, password_hash = $4, profile = $5, updated_at = now()
		 WHERE id = $1`,
		u.ID, u.Name, u.Email, u.PasswordHash, profile,
	)
	if err != nil {
		if isUniqueViolation(err, "users_email_key") {
			return user.ErrEmailTaken
		}
		return err
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *PostgresUserRepository) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE role = $1 ORDER BY created_at DESC`, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (user.User, error) {
	var u user.User
	var profile []byte
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &profile, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	if u.Profile, err = unmarshalProfile(profile); err != nil {
		return user.User{}, err
	}
	return u, nil
}

func marshalProfile(p user.Profile) ([]byte, error) {
	if p == nil {
		p = user.Profile{}
	}
	return json.Marshal(p)
}

func unmarshalProfile(b []byte) (user.Profile, error) {
	p := user.Profile{}
	if len(b) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, err
	}
	return p, nil
}

package userinfra

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/1dhruvsingh/ResumeAI/pkg/iam/user"
	"github.com/1dhruvsingh/ResumeAI/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	uniqueViolation = "23505"

	// emailConstraint is the name Postgres gives the inline UNIQUE on users.email.
	emailConstraint = "users_email_key"
)

type PostgresUserRepository struct {
	db *sqlx.DB
}

// NewPostgresUserRepository creates a new Postgres-backed user repository
func NewPostgresUserRepository(db *sqlx.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// userRow mirrors the users table.
type userRow struct {
	ID           int64          `db:"id"`
	Email        string         `db:"email"`
	PasswordHash sql.NullString `db:"password_hash"`
	Name         string         `db:"name"`
	GoogleID     sql.NullString `db:"google_id"`
	CreatedAt    time.Time      `db:"created_at"`
}

func (r userRow) toEntity() *user.User {
	u := &user.User{
		ID:        kernel.NewUserID(r.ID),
		Email:     kernel.Email(r.Email),
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
	}
	if r.PasswordHash.Valid {
		hash := r.PasswordHash.String
		u.PasswordHash = &hash
	}
	if r.GoogleID.Valid {
		gid := kernel.GoogleID(r.GoogleID.String)
		u.GoogleID = &gid
	}
	return u
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullGoogleID(g *kernel.GoogleID) sql.NullString {
	if g == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: g.String(), Valid: true}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (email, password_hash, name, google_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		u.Email,
		nullString(u.PasswordHash),
		u.Name,
		nullGoogleID(u.GoogleID),
		u.CreatedAt,
	).Scan(&id)
	if err != nil {
		return mapWriteError(err, u.Email)
	}

	u.ID = kernel.NewUserID(id)
	return nil
}

func (r *PostgresUserRepository) Update(ctx context.Context, u *user.User) error {
	query := `
		UPDATE users
		SET email = $2, password_hash = $3, name = $4, google_id = $5
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		u.ID,
		u.Email,
		nullString(u.PasswordHash),
		u.Name,
		nullGoogleID(u.GoogleID),
	)
	if err != nil {
		return mapWriteError(err, u.Email)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return user.ErrUserStoreFailed(err)
	}
	if rows == 0 {
		return user.ErrUserNotFound().WithDetail("user_id", u.ID)
	}
	return nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id kernel.UserID) (*user.User, error) {
	query := `
		SELECT id, email, password_hash, name, google_id, created_at
		FROM users
		WHERE id = $1`

	var row userRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrUserNotFound().WithDetail("user_id", id)
		}
		return nil, user.ErrUserStoreFailed(err).WithDetail("operation", "get_by_id")
	}
	return row.toEntity(), nil
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email kernel.Email) (*user.User, error) {
	query := `
		SELECT id, email, password_hash, name, google_id, created_at
		FROM users
		WHERE email = $1`

	var row userRow
	if err := r.db.GetContext(ctx, &row, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrUserNotFound().WithDetail("email", email)
		}
		return nil, user.ErrUserStoreFailed(err).WithDetail("operation", "get_by_email")
	}
	return row.toEntity(), nil
}

func mapWriteError(err error, email kernel.Email) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation && pqErr.Constraint == emailConstraint {
		return user.ErrEmailAlreadyExists().WithDetail("email", email)
	}
	return user.ErrUserStoreFailed(err)
}

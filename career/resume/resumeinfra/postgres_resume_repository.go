package resumeinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/1dhruvsingh/ResumeAI/career/resume"
	"github.com/1dhruvsingh/ResumeAI/pkg/kernel"
	"github.com/jmoiron/sqlx"
)

type PostgresResumeRepository struct {
	db *sqlx.DB
}

// NewPostgresResumeRepository creates a new Postgres-backed resume repository
func NewPostgresResumeRepository(db *sqlx.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{db: db}
}

// resumeRow mirrors the resumes table; data is stored as JSON text.
type resumeRow struct {
	ID        string    `db:"id"`
	UserID    int64     `db:"user_id"`
	Title     string    `db:"title"`
	Data      string    `db:"data"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (row resumeRow) toEntity() *resume.Resume {
	return &resume.Resume{
		ID:        kernel.ResumeID(row.ID),
		UserID:    kernel.UserID(row.UserID),
		Title:     row.Title,
		Data:      json.RawMessage(row.Data),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func (r *PostgresResumeRepository) Create(ctx context.Context, res *resume.Resume) error {
	query := `
		INSERT INTO resumes (id, user_id, title, data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		res.ID,
		res.UserID,
		res.Title,
		string(res.Data),
		res.CreatedAt,
		res.UpdatedAt,
	)
	if err != nil {
		return resume.ErrResumeStoreFailed(err).WithDetail("operation", "create")
	}
	return nil
}

func (r *PostgresResumeRepository) Update(ctx context.Context, res *resume.Resume) error {
	query := `
		UPDATE resumes
		SET title = $3, data = $4, updated_at = $5
		WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query,
		res.ID,
		res.UserID,
		res.Title,
		string(res.Data),
		res.UpdatedAt,
	)
	if err != nil {
		return resume.ErrResumeStoreFailed(err).WithDetail("operation", "update")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return resume.ErrResumeStoreFailed(err).WithDetail("operation", "update")
	}
	if rows == 0 {
		return resume.ErrResumeNotFound().WithDetail("resume_id", res.ID)
	}
	return nil
}

func (r *PostgresResumeRepository) GetByID(ctx context.Context, id kernel.ResumeID, userID kernel.UserID) (*resume.Resume, error) {
	query := `
		SELECT id, user_id, title, data, created_at, updated_at
		FROM resumes
		WHERE id = $1 AND user_id = $2`

	var row resumeRow
	if err := r.db.GetContext(ctx, &row, query, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, resume.ErrResumeNotFound().WithDetail("resume_id", id)
		}
		return nil, resume.ErrResumeStoreFailed(err).WithDetail("operation", "get")
	}
	return row.toEntity(), nil
}

func (r *PostgresResumeRepository) ListByUser(ctx context.Context, userID kernel.UserID) ([]*resume.Resume, error) {
	query := `
		SELECT id, user_id, title, data, created_at, updated_at
		FROM resumes
		WHERE user_id = $1
		ORDER BY updated_at DESC`

	var rows []resumeRow
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, resume.ErrResumeStoreFailed(err).WithDetail("operation", "list")
	}

	resumes := make([]*resume.Resume, len(rows))
	for i, row := range rows {
		resumes[i] = row.toEntity()
	}
	return resumes, nil
}

func (r *PostgresResumeRepository) Delete(ctx context.Context, id kernel.ResumeID, userID kernel.UserID) error {
	query := `DELETE FROM resumes WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return resume.ErrResumeStoreFailed(err).WithDetail("operation", "delete")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return resume.ErrResumeStoreFailed(err).WithDetail("operation", "delete")
	}
	if rows == 0 {
		return resume.ErrResumeNotFound().WithDetail("resume_id", id)
	}
	return nil
}

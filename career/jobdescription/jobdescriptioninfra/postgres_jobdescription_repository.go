package jobdescriptioninfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/1dhruvsingh/ResumeAI/career/jobdescription"
	"github.com/1dhruvsingh/ResumeAI/pkg/kernel"
	"github.com/jmoiron/sqlx"
)

type PostgresJobDescriptionRepository struct {
	db *sqlx.DB
}

// NewPostgresJobDescriptionRepository creates a new Postgres-backed job description repository
func NewPostgresJobDescriptionRepository(db *sqlx.DB) *PostgresJobDescriptionRepository {
	return &PostgresJobDescriptionRepository{db: db}
}

// jobDescriptionRow mirrors the job_descriptions table; keywords is a JSON
// array stored as text, or NULL.
type jobDescriptionRow struct {
	ID        string         `db:"id"`
	UserID    int64          `db:"user_id"`
	Title     string         `db:"title"`
	Text      string         `db:"text"`
	Keywords  sql.NullString `db:"keywords"`
	CreatedAt time.Time      `db:"created_at"`
}

func (row jobDescriptionRow) toEntity() (*jobdescription.JobDescription, error) {
	j := &jobdescription.JobDescription{
		ID:        kernel.JobDescriptionID(row.ID),
		UserID:    kernel.UserID(row.UserID),
		Title:     row.Title,
		Text:      row.Text,
		CreatedAt: row.CreatedAt,
	}
	if row.Keywords.Valid && row.Keywords.String != "" {
		if err := json.Unmarshal([]byte(row.Keywords.String), &j.Keywords); err != nil {
			return nil, err
		}
	}
	return j, nil
}

// keywordsColumn stores an empty keyword list as NULL.
func keywordsColumn(j *jobdescription.JobDescription) (sql.NullString, error) {
	if !j.HasKeywords() {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(j.Keywords)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

func (r *PostgresJobDescriptionRepository) Create(ctx context.Context, j *jobdescription.JobDescription) error {
	keywords, err := keywordsColumn(j)
	if err != nil {
		return jobdescription.ErrStoreFailed(err).WithDetail("field", "keywords")
	}

	query := `
		INSERT INTO job_descriptions (id, user_id, title, text, keywords, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := r.db.ExecContext(ctx, query,
		j.ID,
		j.UserID,
		j.Title,
		j.Text,
		keywords,
		j.CreatedAt,
	); err != nil {
		return jobdescription.ErrStoreFailed(err).WithDetail("operation", "create")
	}
	return nil
}

func (r *PostgresJobDescriptionRepository) GetByID(ctx context.Context, id kernel.JobDescriptionID, userID kernel.UserID) (*jobdescription.JobDescription, error) {
	query := `
		SELECT id, user_id, title, text, keywords, created_at
		FROM job_descriptions
		WHERE id = $1 AND user_id = $2`

	var row jobDescriptionRow
	if err := r.db.GetContext(ctx, &row, query, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, jobdescription.ErrJobDescriptionNotFound().WithDetail("job_description_id", id)
		}
		return nil, jobdescription.ErrStoreFailed(err).WithDetail("operation", "get")
	}

	j, err := row.toEntity()
	if err != nil {
		return nil, jobdescription.ErrStoreFailed(err).WithDetail("job_description_id", id)
	}
	return j, nil
}

func (r *PostgresJobDescriptionRepository) ListByUser(ctx context.Context, userID kernel.UserID) ([]*jobdescription.JobDescription, error) {
	query := `
		SELECT id, user_id, title, text, keywords, created_at
		FROM job_descriptions
		WHERE user_id = $1
		ORDER BY created_at DESC`

	var rows []jobDescriptionRow
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, jobdescription.ErrStoreFailed(err).WithDetail("operation", "list")
	}

	jds := make([]*jobdescription.JobDescription, len(rows))
	for i, row := range rows {
		j, err := row.toEntity()
		if err != nil {
			return nil, jobdescription.ErrStoreFailed(err).
				WithDetail("job_description_id", row.ID)
		}
		jds[i] = j
	}
	return jds, nil
}

func (r *PostgresJobDescriptionRepository) Delete(ctx context.Context, id kernel.JobDescriptionID, userID kernel.UserID) error {
	query := `DELETE FROM job_descriptions WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return jobdescription.ErrStoreFailed(err).WithDetail("operation", "delete")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return jobdescription.ErrStoreFailed(err).WithDetail("operation", "delete")
	}
	if rows == 0 {
		return jobdescription.ErrJobDescriptionNotFound().WithDetail("job_description_id", id)
	}
	return nil
}

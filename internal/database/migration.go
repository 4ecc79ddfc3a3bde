package database

import (
	"context"
	"fmt"

	"github.com/1dhruvsingh/ResumeAI/pkg/logx"
	"github.com/jmoiron/sqlx"
)

// Migration is one idempotent schema step.
type Migration struct {
	Name  string
	Query string
}

// Migrations run in order on every startup.
var Migrations = []Migration{
	{
		Name: "create_users",
		Query: `
			CREATE TABLE IF NOT EXISTS users (
				id            BIGSERIAL PRIMARY KEY,
				email         VARCHAR(120) NOT NULL CONSTRAINT users_email_key UNIQUE,
				password_hash VARCHAR(255),
				name          VARCHAR(100) NOT NULL DEFAULT '',
				google_id     VARCHAR(120),
				created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				CONSTRAINT users_credentials_check CHECK (password_hash IS NOT NULL OR google_id IS NOT NULL)
			)`,
	},
	{
		Name: "create_resumes",
		Query: `
			CREATE TABLE IF NOT EXISTS resumes (
				id         VARCHAR(36) PRIMARY KEY,
				user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				title      VARCHAR(100) NOT NULL,
				data       TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
	},
	{
		Name:  "index_resumes_user_id",
		Query: `CREATE INDEX IF NOT EXISTS idx_resumes_user_id ON resumes (user_id, updated_at DESC)`,
	},
	{
		Name: "create_job_descriptions",
		Query: `
			CREATE TABLE IF NOT EXISTS job_descriptions (
				id         VARCHAR(36) PRIMARY KEY,
				user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				title      VARCHAR(100) NOT NULL,
				text       TEXT NOT NULL,
				keywords   TEXT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
	},
	{
		Name:  "index_job_descriptions_user_id",
		Query: `CREATE INDEX IF NOT EXISTS idx_job_descriptions_user_id ON job_descriptions (user_id, created_at DESC)`,
	},
}

// RunMigrations applies every migration, stopping at the first failure.
func RunMigrations(ctx context.Context, db *sqlx.DB) error {
	logx.Info("Starting database migrations")

	for _, m := range Migrations {
		if _, err := db.ExecContext(ctx, m.Query); err != nil {
			logx.Error("Migration failed", "name", m.Name, "error", err)
			return fmt.Errorf("migration %s: %w", m.Name, err)
		}
		logx.Debug("Migration completed", "name", m.Name)
	}

	logx.Info("All migrations completed successfully")
	return nil
}

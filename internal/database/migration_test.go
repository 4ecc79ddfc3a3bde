package database

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestRunMigrationsAppliesAllInOrder(t *testing.T) {
	db, mock := newMockDB(t)
	for _, m := range Migrations {
		mock.ExpectExec(regexp.QuoteMeta(m.Query)).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, RunMigrations(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrationsStopsOnFailure(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta(Migrations[0].Query)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(Migrations[1].Query)).WillReturnError(errors.New("permission denied"))

	err := RunMigrations(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), Migrations[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrationsCascadeUserDeletes(t *testing.T) {
	for _, m := range Migrations {
		if m.Name == "create_resumes" || m.Name == "create_job_descriptions" {
			assert.Contains(t, m.Query, "REFERENCES users(id) ON DELETE CASCADE", m.Name)
		}
	}
}

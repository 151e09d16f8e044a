package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock
}

func TestLayoutRepoGetByName(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewLayoutRepo(db)

	now := time.Now()
	mock.ExpectQuery("SELECT id, name, elements_json").
		WithArgs("Wedding").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "elements_json", "created_at", "updated_at"}).
			AddRow(1, "Wedding", `[{"id":"A1"}]`, now, now))

	l, err := repo.GetByName(context.Background(), "Wedding")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), l.ID)
	assert.Equal(t, "Wedding", l.Name)
	assert.Equal(t, `[{"id":"A1"}]`, l.RawElements)
}

func TestLayoutRepoGetByName_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewLayoutRepo(db)

	mock.ExpectQuery("SELECT id, name, elements_json").
		WithArgs("Missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByName(context.Background(), "Missing")
	assert.ErrorIs(t, err, ErrLayoutNotFound)
}

func TestLayoutRepoUpsert(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewLayoutRepo(db)

	mock.ExpectExec("INSERT INTO layouts .+ ON DUPLICATE KEY UPDATE").
		WithArgs("Wedding", `[]`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Upsert(context.Background(), "Wedding", `[]`))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLayoutRepoDeleteByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewLayoutRepo(db)

	mock.ExpectExec("DELETE FROM layouts").
		WithArgs(uint64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteByID(context.Background(), 9)
	assert.ErrorIs(t, err, ErrLayoutNotFound)
}

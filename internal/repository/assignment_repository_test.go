package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignmentRepoMapByLayout(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewAssignmentRepo(db)

	mock.ExpectQuery("SELECT seat_id, guest_name FROM seat_assignments").
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"seat_id", "guest_name"}).
			AddRow("A1", "Alice").
			AddRow("A2", "")) // explicitly cleared seat is included

	m, err := repo.MapByLayout(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"A1": "Alice", "A2": ""}, m)
}

func TestAssignmentRepoMapByLayout_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewAssignmentRepo(db)

	mock.ExpectQuery("SELECT seat_id, guest_name FROM seat_assignments").
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"seat_id", "guest_name"}))

	m, err := repo.MapByLayout(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, m)
	assert.NotNil(t, m)
}

func TestAssignmentRepoUpsert(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewAssignmentRepo(db)

	mock.ExpectExec("INSERT INTO seat_assignments .+ ON DUPLICATE KEY UPDATE guest_name").
		WithArgs(uint64(3), "A1", "Alice").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Upsert(context.Background(), 3, "A1", "Alice"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepoDeleteByLayout(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewAssignmentRepo(db)

	mock.ExpectExec("DELETE FROM seat_assignments WHERE layout_id").
		WithArgs(uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 5))

	require.NoError(t, repo.DeleteByLayout(context.Background(), 3))
}

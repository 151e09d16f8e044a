package repository // repository defines data access for seat assignments

import (
	"context"
	"database/sql"

	"github.com/lmoretti/seatplan/internal/model"
)

// AssignmentRepo provides methods to work with seat assignments.
type AssignmentRepo struct {
	db *sql.DB
}

// NewAssignmentRepo constructs an AssignmentRepo with the given DB handle.
func NewAssignmentRepo(db *sql.DB) *AssignmentRepo {
	return &AssignmentRepo{db: db}
}

// MapByLayout loads all assignment rows for a layout keyed by seat id.
// Rows holding the empty unassigned sentinel are included so callers can
// distinguish "explicitly cleared" from "never assigned".
func (r *AssignmentRepo) MapByLayout(ctx context.Context, layoutID uint64) (map[string]string, error) {
	const q = `SELECT seat_id, guest_name FROM seat_assignments WHERE layout_id = ?`
	rows, err := r.db.QueryContext(ctx, q, layoutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	m := make(map[string]string)
	for rows.Next() {
		var seatID, guestName string
		if err := rows.Scan(&seatID, &guestName); err != nil {
			return nil, err
		}
		m[seatID] = guestName
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// ListByLayout retrieves all assignment rows for a layout ordered by seat id.
func (r *AssignmentRepo) ListByLayout(ctx context.Context, layoutID uint64) ([]model.SeatAssignment, error) {
	const q = `SELECT id, layout_id, seat_id, guest_name, created_at, updated_at
	           FROM seat_assignments
	           WHERE layout_id = ?
	           ORDER BY seat_id`
	rows, err := r.db.QueryContext(ctx, q, layoutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.SeatAssignment
	for rows.Next() {
		var a model.SeatAssignment
		if err := rows.Scan(&a.ID, &a.LayoutID, &a.SeatID, &a.GuestName, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Upsert writes the assignment row for (layout_id, seat_id), overwriting
// the guest name when the row already exists. The unique key makes the
// operation idempotent and last-writer-wins under concurrent callers.
func (r *AssignmentRepo) Upsert(ctx context.Context, layoutID uint64, seatID, guestName string) error {
	const q = `INSERT INTO seat_assignments (layout_id, seat_id, guest_name) VALUES (?, ?, ?)
	           ON DUPLICATE KEY UPDATE guest_name = VALUES(guest_name)`
	_, err := r.db.ExecContext(ctx, q, layoutID, seatID, guestName)
	return err
}

// DeleteByLayout removes all assignment rows for a layout. Run before
// deleting the layout row itself so a crash between the two statements
// only ever leaves orphaned assignments, never a dangling layout lookup.
func (r *AssignmentRepo) DeleteByLayout(ctx context.Context, layoutID uint64) error {
	const q = `DELETE FROM seat_assignments WHERE layout_id = ?`
	_, err := r.db.ExecContext(ctx, q, layoutID)
	return err
}

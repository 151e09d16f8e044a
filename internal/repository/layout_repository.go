package repository // repository defines data access for layouts

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lmoretti/seatplan/internal/model"
)

// LayoutRepo provides methods to work with layouts in the database.
type LayoutRepo struct {
	db *sql.DB
}

// NewLayoutRepo constructs a LayoutRepo with the given DB handle.
func NewLayoutRepo(db *sql.DB) *LayoutRepo {
	return &LayoutRepo{db: db}
}

// GetByName retrieves a layout by its unique name.
func (r *LayoutRepo) GetByName(ctx context.Context, name string) (*model.Layout, error) {
	const q = `SELECT id, name, elements_json, created_at, updated_at
	           FROM layouts WHERE name = ?`
	var l model.Layout
	err := r.db.QueryRowContext(ctx, q, name).
		Scan(&l.ID, &l.Name, &l.RawElements, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLayoutNotFound
		}
		return nil, err
	}
	return &l, nil
}

// ListNames returns the names of all stored layouts in insertion order.
func (r *LayoutRepo) ListNames(ctx context.Context) ([]string, error) {
	const q = `SELECT name FROM layouts ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// Upsert stores the serialized element payload under the given name,
// overwriting the payload of an existing layout. Seat-assignment rows
// are deliberately left untouched; assignments keyed on seat ids that
// disappear from the document become orphans until the layout is deleted.
func (r *LayoutRepo) Upsert(ctx context.Context, name, rawElements string) error {
	const q = `INSERT INTO layouts (name, elements_json) VALUES (?, ?)
	           ON DUPLICATE KEY UPDATE elements_json = VALUES(elements_json)`
	_, err := r.db.ExecContext(ctx, q, name, rawElements)
	return err
}

// DeleteByID removes a layout row. Callers delete the layout's
// seat-assignment rows first; see AssignmentRepo.DeleteByLayout.
func (r *LayoutRepo) DeleteByID(ctx context.Context, id uint64) error {
	const q = `DELETE FROM layouts WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrLayoutNotFound
	}
	return nil
}

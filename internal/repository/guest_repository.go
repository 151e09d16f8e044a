package repository // repository defines data access for guests

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/lmoretti/seatplan/internal/model"
)

const guestColumns = `id, token, name, menu, appetiser, COALESCE(allergies, ''), steak_cook, created_at, updated_at`

// GuestRepo provides methods to work with guests in the database.
type GuestRepo struct {
	db *sql.DB
}

// NewGuestRepo constructs a GuestRepo with the given DB handle.
func NewGuestRepo(db *sql.DB) *GuestRepo {
	return &GuestRepo{db: db}
}

// Create inserts a guest row. On success the guest's ID is populated.
// The case-insensitive unique index on name surfaces duplicates as MySQL
// error 1062, which is translated into ErrGuestNameExists.
func (r *GuestRepo) Create(ctx context.Context, g *model.Guest) error {
	const q = `INSERT INTO guests (token, name, menu, appetiser, allergies, steak_cook)
	           VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, g.Token, g.Name, g.Menu, g.Appetiser, g.Allergies, g.SteakCook)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrGuestNameExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	g.ID = uint64(id)
	return nil
}

// List retrieves all guests ordered by insertion.
func (r *GuestRepo) List(ctx context.Context) ([]model.Guest, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+guestColumns+` FROM guests ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Guest
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID fetches a guest by primary key.
func (r *GuestRepo) GetByID(ctx context.Context, id uint64) (*model.Guest, error) {
	return r.getOne(ctx, `SELECT `+guestColumns+` FROM guests WHERE id = ?`, id)
}

// GetByToken fetches a guest by its opaque token.
func (r *GuestRepo) GetByToken(ctx context.Context, token string) (*model.Guest, error) {
	return r.getOne(ctx, `SELECT `+guestColumns+` FROM guests WHERE token = ?`, token)
}

// GetByName fetches a guest by name, matched case-insensitively.
func (r *GuestRepo) GetByName(ctx context.Context, name string) (*model.Guest, error) {
	return r.getOne(ctx, `SELECT `+guestColumns+` FROM guests WHERE LOWER(name) = LOWER(?)`, name)
}

func (r *GuestRepo) getOne(ctx context.Context, q string, arg any) (*model.Guest, error) {
	g, err := scanGuest(r.db.QueryRowContext(ctx, q, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}
	return &g, nil
}

// UpdatePrefsByToken overwrites the dining preference columns of the
// guest holding the token. Name and token are immutable through this path.
func (r *GuestRepo) UpdatePrefsByToken(ctx context.Context, token, menu, appetiser, allergies, steakCook string) error {
	const q = `UPDATE guests
	           SET menu = ?, appetiser = ?, allergies = ?, steak_cook = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE token = ?`
	res, err := r.db.ExecContext(ctx, q, menu, appetiser, allergies, steakCook, token)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrGuestNotFound
	}
	return nil
}

// DeleteByToken removes the guest holding the token.
func (r *GuestRepo) DeleteByToken(ctx context.Context, token string) error {
	return r.deleteOne(ctx, `DELETE FROM guests WHERE token = ?`, token)
}

// DeleteByID removes the guest with the given primary key.
func (r *GuestRepo) DeleteByID(ctx context.Context, id uint64) error {
	return r.deleteOne(ctx, `DELETE FROM guests WHERE id = ?`, id)
}

// DeleteByName removes the guest matched case-insensitively by name.
func (r *GuestRepo) DeleteByName(ctx context.Context, name string) error {
	return r.deleteOne(ctx, `DELETE FROM guests WHERE LOWER(name) = LOWER(?)`, name)
}

func (r *GuestRepo) deleteOne(ctx context.Context, q string, arg any) error {
	res, err := r.db.ExecContext(ctx, q, arg)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrGuestNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGuest(s rowScanner) (model.Guest, error) {
	var g model.Guest
	err := s.Scan(&g.ID, &g.Token, &g.Name, &g.Menu, &g.Appetiser, &g.Allergies, &g.SteakCook, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}

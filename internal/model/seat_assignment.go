package model

import "time"

// SeatAssignment is a persisted override mapping a specific seat in a
// specific layout to a guest name. At most one row exists per
// (layout_id, seat_id); an empty GuestName means the seat was explicitly
// unassigned.
//
// Fields:
//
//	ID        – primary key identifier.
//	LayoutID  – layout the seat belongs to.
//	SeatID    – seat element identifier inside the layout document.
//	GuestName – assigned guest name, "" when unassigned.
//	CreatedAt – creation timestamp.
//	UpdatedAt – last update timestamp.
type SeatAssignment struct {
	ID        uint64    // seat_assignments.id
	LayoutID  uint64    // seat_assignments.layout_id
	SeatID    string    // seat_assignments.seat_id
	GuestName string    // seat_assignments.guest_name
	CreatedAt time.Time // seat_assignments.created_at
	UpdatedAt time.Time // seat_assignments.updated_at
}

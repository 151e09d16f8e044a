// Package queue defines message payloads exchanged over the message broker.
package queue

// SeatAssignedEvent is published after a seat assignment is upserted.
// It carries enough information for downstream consumers to log or
// notify without querying the primary database. An empty GuestName
// means the seat was cleared.
type SeatAssignedEvent struct {
	LayoutName string `json:"layout_name"`
	SeatID     string `json:"seat_id"`
	GuestName  string `json:"guest_name"`
	AssignedAt string `json:"assigned_at"`
}

package model

import "time"

// Layout is a named seating chart. The element list is stored wholesale
// as a serialized JSON array; this service only interprets the "id" and
// "guest" keys of each element, everything else (positions, rotation,
// styling) passes through opaquely.
//
// Fields:
//
//	ID        – primary key identifier.
//	Name      – unique layout name, the public handle for the chart.
//	RawElements – serialized JSON array of seat elements.
//	CreatedAt – creation timestamp.
//	UpdatedAt – last update timestamp.
type Layout struct {
	ID          uint64    // layouts.id
	Name        string    // layouts.name
	RawElements string    // layouts.elements_json
	CreatedAt   time.Time // layouts.created_at
	UpdatedAt   time.Time // layouts.updated_at
}

// SeatElement is one positionable item inside a layout document. It is a
// generic key-value record because the stored shape is controlled by the
// chart editor, not by this service.
type SeatElement = map[string]any

package model

import "time"

// Guest is a person record with dining preferences. Guests are looked up
// by one of three candidate keys: their opaque token (shared with the
// guest for self-service updates), their numeric id, or their name
// matched case-insensitively. Guests are not structurally related to
// seats; seat assignments reference guests by name string only.
//
// Fields:
//
//	ID        – primary key identifier.
//	Token     – UUID handed to the guest, unique.
//	Name      – guest name, unique case-insensitively.
//	Menu      – main course choice.
//	Appetiser – starter choice.
//	Allergies – comma-separated allergy list as stored; exposed as an
//	            array on the API surface.
//	SteakCook – preferred steak doneness.
//	CreatedAt – creation timestamp.
//	UpdatedAt – last update timestamp.
type Guest struct {
	ID        uint64    // guests.id
	Token     string    // guests.token
	Name      string    // guests.name
	Menu      string    // guests.menu
	Appetiser string    // guests.appetiser
	Allergies string    // guests.allergies
	SteakCook string    // guests.steak_cook
	CreatedAt time.Time // guests.created_at
	UpdatedAt time.Time // guests.updated_at
}

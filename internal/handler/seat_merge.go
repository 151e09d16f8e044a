package handler

// seat_merge.go holds the merge and normalization core shared by the
// layout handlers. A layout document is an ordered JSON array of seat
// elements; only the "id" and "guest" keys are interpreted here, the
// rest of each element passes through untouched.

import (
	"encoding/json"
	"strings"

	"github.com/lmoretti/seatplan/internal/model"
)

// normalizeGuestName trims the incoming name and collapses the
// unassigned spellings to the empty sentinel: an empty or
// whitespace-only string, or the literal string "null" in any case,
// all mean "seat has no guest".
func normalizeGuestName(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "null") {
		return ""
	}
	return s
}

// parseElements decodes a stored layout payload. The payload must be a
// JSON array of objects; anything else is invalid data.
func parseElements(raw string) ([]model.SeatElement, error) {
	var elements []model.SeatElement
	if err := json.Unmarshal([]byte(raw), &elements); err != nil {
		return nil, err
	}
	if elements == nil {
		elements = []model.SeatElement{}
	}
	return elements, nil
}

// mergeAssignments overlays the persisted assignment map onto the
// elements in place, preserving document order. For every element the
// output "guest" key is the persisted assignment when present and
// non-empty, else the element's own embedded guest when it is a
// non-empty string, else JSON null.
func mergeAssignments(elements []model.SeatElement, assignments map[string]string) {
	for _, el := range elements {
		var guest any
		if s, ok := el["guest"].(string); ok && strings.TrimSpace(s) != "" {
			guest = s
		}
		if id, ok := el["id"].(string); ok {
			if name, ok := assignments[id]; ok && name != "" {
				guest = name
			}
		}
		el["guest"] = guest
	}
}

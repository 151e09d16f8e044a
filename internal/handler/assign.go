package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/lmoretti/seatplan/internal/queue"
	"github.com/lmoretti/seatplan/internal/repository"
)

// AssignSeat handles POST /api/layouts/:layoutName/assign-seat. The
// assignment is upserted keyed by (layout, seat), so repeating the same
// call is a no-op and concurrent writers resolve last-writer-wins. The
// guest name is normalized first: empty, whitespace-only, absent or a
// literal "null" (any case) all store the unassigned sentinel.
func (h *LayoutHandler) AssignSeat(c echo.Context) error {
	layoutName := c.Param("layoutName")

	var body struct {
		SeatID    string  `json:"seatId"`
		GuestName *string `json:"guestName"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	seatID := strings.TrimSpace(body.SeatID)
	if seatID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seatId is required"})
	}
	guestName := ""
	if body.GuestName != nil {
		guestName = normalizeGuestName(*body.GuestName)
	}

	ctx := c.Request().Context()
	layout, err := h.LayoutRepo.GetByName(ctx, layoutName)
	if err != nil {
		if errors.Is(err, repository.ErrLayoutNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Layout not found"})
		}
		log.Error().Err(err).Str("layout", layoutName).Msg("load layout failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	if err := h.AssignmentRepo.Upsert(ctx, layout.ID, seatID, guestName); err != nil {
		log.Error().Err(err).Str("layout", layoutName).Str("seat", seatID).Msg("assign seat failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not assign seat"})
	}

	if h.Publish != nil {
		// Best effort; the publisher logs its own failures.
		_ = h.Publish(ctx, queue.SeatAssignedEvent{
			LayoutName: layout.Name,
			SeatID:     seatID,
			GuestName:  guestName,
			AssignedAt: time.Now().UTC().Format(time.RFC3339),
		})
	}

	var guestOut any
	if guestName != "" {
		guestOut = guestName
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":   true,
		"seatId":    seatID,
		"guestName": guestOut,
	})
}

package handler // handler package contains layout endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/lmoretti/seatplan/internal/model"
	"github.com/lmoretti/seatplan/internal/repository"
)

// ListLayouts handles GET /api/layouts and returns the stored layout names.
func (h *LayoutHandler) ListLayouts(c echo.Context) error {
	names, err := h.LayoutRepo.ListNames(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("list layouts failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": names})
}

// GetMergedLayout handles GET /api/layouts/:name. It loads the stored
// document, overlays the persisted seat assignments and returns the
// elements in stored order. Every element carries a "guest" key in the
// response, null when nobody sits there.
func (h *LayoutHandler) GetMergedLayout(c echo.Context) error {
	name := c.Param("name")
	ctx := c.Request().Context()

	layout, err := h.LayoutRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrLayoutNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Layout not found"})
		}
		log.Error().Err(err).Str("layout", name).Msg("load layout failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	elements, err := parseElements(layout.RawElements)
	if err != nil {
		log.Error().Err(err).Str("layout", name).Msg("stored layout payload is not valid JSON")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid layout data"})
	}

	assignments, err := h.AssignmentRepo.MapByLayout(ctx, layout.ID)
	if err != nil {
		log.Error().Err(err).Str("layout", name).Msg("load assignments failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	mergeAssignments(elements, assignments)
	return c.JSON(http.StatusOK, echo.Map{"name": layout.Name, "elements": elements})
}

// ListAssignments handles GET /api/layouts/:name/assignments and
// returns the raw persisted assignment rows, including rows whose seat
// ids no longer appear in the layout document. Useful for spotting
// orphans left behind by layout re-saves.
func (h *LayoutHandler) ListAssignments(c echo.Context) error {
	name := c.Param("name")
	ctx := c.Request().Context()

	layout, err := h.LayoutRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrLayoutNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Layout not found"})
		}
		log.Error().Err(err).Str("layout", name).Msg("load layout failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	rows, err := h.AssignmentRepo.ListByLayout(ctx, layout.ID)
	if err != nil {
		log.Error().Err(err).Str("layout", name).Msg("list assignments failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	items := make([]echo.Map, 0, len(rows))
	for _, a := range rows {
		var guest any
		if a.GuestName != "" {
			guest = a.GuestName
		}
		items = append(items, echo.Map{"seatId": a.SeatID, "guestName": guest})
	}
	return c.JSON(http.StatusOK, echo.Map{"layout": layout.Name, "items": items})
}

// SaveLayout handles POST /api/layouts and upserts a layout by name.
// Existing seat-assignment rows are not touched: assignments keyed on
// seat ids that vanish from the new document stay behind as orphans.
func (h *LayoutHandler) SaveLayout(c echo.Context) error {
	var body struct {
		Name     string              `json:"name"`
		Elements []model.SeatElement `json:"elements"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" || body.Elements == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and elements are required"})
	}

	raw, err := json.Marshal(body.Elements)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "elements are not serializable"})
	}
	if err := h.LayoutRepo.Upsert(c.Request().Context(), name, string(raw)); err != nil {
		log.Error().Err(err).Str("layout", name).Msg("save layout failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not save layout"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"name": name})
}

// DeleteLayout handles DELETE /api/layouts/:name. Assignment rows go
// first, then the layout row; the two statements are not wrapped in a
// transaction because a crash in between only leaves orphaned
// assignment rows, which the next full delete removes.
func (h *LayoutHandler) DeleteLayout(c echo.Context) error {
	name := c.Param("name")
	ctx := c.Request().Context()

	layout, err := h.LayoutRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrLayoutNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Layout not found"})
		}
		log.Error().Err(err).Str("layout", name).Msg("load layout failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	if err := h.AssignmentRepo.DeleteByLayout(ctx, layout.ID); err != nil {
		log.Error().Err(err).Str("layout", name).Msg("delete assignments failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	if err := h.LayoutRepo.DeleteByID(ctx, layout.ID); err != nil && !errors.Is(err, repository.ErrLayoutNotFound) {
		log.Error().Err(err).Str("layout", name).Msg("delete layout failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

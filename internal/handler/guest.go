package handler // handler package contains guest CRUD endpoints

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/lmoretti/seatplan/internal/model"
	"github.com/lmoretti/seatplan/internal/repository"
)

// guestView is the JSON shape for guests. Allergies are stored as
// comma-separated text but always exposed as an array.
type guestView struct {
	ID        uint64   `json:"id"`
	Token     string   `json:"token"`
	Name      string   `json:"name"`
	Menu      string   `json:"menu"`
	Appetiser string   `json:"appetiser"`
	Allergies []string `json:"allergies"`
	SteakCook string   `json:"steakCook"`
}

func toGuestView(g model.Guest) guestView {
	return guestView{
		ID:        g.ID,
		Token:     g.Token,
		Name:      g.Name,
		Menu:      g.Menu,
		Appetiser: g.Appetiser,
		Allergies: splitAllergies(g.Allergies),
		SteakCook: g.SteakCook,
	}
}

// splitAllergies turns the stored comma-separated text into a clean
// array. The result is never nil so the JSON field is always [].
func splitAllergies(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func joinAllergies(list []string) string {
	parts := []string{}
	for _, p := range list {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// CreateGuest handles POST /api/guests. Each guest receives a UUID
// token for later self-service lookups and updates. A name colliding
// case-insensitively with an existing guest yields 409.
func (h *GuestHandler) CreateGuest(c echo.Context) error {
	var body struct {
		Name      string   `json:"name"`
		Menu      string   `json:"menu"`
		Appetiser string   `json:"appetiser"`
		Allergies []string `json:"allergies"`
		SteakCook string   `json:"steakCook"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	g := model.Guest{
		Token:     uuid.NewString(),
		Name:      name,
		Menu:      strings.TrimSpace(body.Menu),
		Appetiser: strings.TrimSpace(body.Appetiser),
		Allergies: joinAllergies(body.Allergies),
		SteakCook: strings.TrimSpace(body.SteakCook),
	}
	if err := h.GuestRepo.Create(c.Request().Context(), &g); err != nil {
		if errors.Is(err, repository.ErrGuestNameExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "guest name already exists"})
		}
		log.Error().Err(err).Str("guest", name).Msg("create guest failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create guest"})
	}
	return c.JSON(http.StatusCreated, toGuestView(g))
}

// ListGuests handles GET /api/guests.
func (h *GuestHandler) ListGuests(c echo.Context) error {
	guests, err := h.GuestRepo.List(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("list guests failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	items := make([]guestView, 0, len(guests))
	for _, g := range guests {
		items = append(items, toGuestView(g))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetGuestByID handles GET /api/guests/id/:id.
func (h *GuestHandler) GetGuestByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	g, err := h.GuestRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return h.guestLookupError(c, err)
	}
	return c.JSON(http.StatusOK, toGuestView(*g))
}

// GetGuestByToken handles GET /api/guests/token/:guestToken.
func (h *GuestHandler) GetGuestByToken(c echo.Context) error {
	g, err := h.GuestRepo.GetByToken(c.Request().Context(), c.Param("guestToken"))
	if err != nil {
		return h.guestLookupError(c, err)
	}
	return c.JSON(http.StatusOK, toGuestView(*g))
}

// UpdateGuest handles PUT /api/guests/:guestToken and updates the
// dining preferences. Fields absent from the body keep their current
// values; name and token cannot change through this endpoint.
func (h *GuestHandler) UpdateGuest(c echo.Context) error {
	token := c.Param("guestToken")
	ctx := c.Request().Context()

	cur, err := h.GuestRepo.GetByToken(ctx, token)
	if err != nil {
		return h.guestLookupError(c, err)
	}

	var body struct {
		Menu      *string   `json:"menu"`
		Appetiser *string   `json:"appetiser"`
		Allergies *[]string `json:"allergies"`
		SteakCook *string   `json:"steakCook"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	menu := cur.Menu
	if body.Menu != nil {
		menu = strings.TrimSpace(*body.Menu)
	}
	appetiser := cur.Appetiser
	if body.Appetiser != nil {
		appetiser = strings.TrimSpace(*body.Appetiser)
	}
	allergies := cur.Allergies
	if body.Allergies != nil {
		allergies = joinAllergies(*body.Allergies)
	}
	steakCook := cur.SteakCook
	if body.SteakCook != nil {
		steakCook = strings.TrimSpace(*body.SteakCook)
	}

	if err := h.GuestRepo.UpdatePrefsByToken(ctx, token, menu, appetiser, allergies, steakCook); err != nil {
		return h.guestLookupError(c, err)
	}
	cur.Menu, cur.Appetiser, cur.Allergies, cur.SteakCook = menu, appetiser, allergies, steakCook
	return c.JSON(http.StatusOK, toGuestView(*cur))
}

// DeleteGuest handles DELETE /api/guests/:identifier. The identifier is
// tried against an ordered list of lookup strategies — token, then
// numeric id, then case-insensitive name — short-circuiting on the
// first match.
func (h *GuestHandler) DeleteGuest(c echo.Context) error {
	identifier := c.Param("identifier")
	ctx := c.Request().Context()

	for _, del := range h.deleteStrategies(identifier) {
		err := del(ctx)
		if err == nil {
			return c.NoContent(http.StatusNoContent)
		}
		if !errors.Is(err, repository.ErrGuestNotFound) {
			log.Error().Err(err).Str("identifier", identifier).Msg("delete guest failed")
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
		}
	}
	return c.JSON(http.StatusNotFound, echo.Map{"error": "Guest not found"})
}

// deleteStrategies builds the candidate-key deletion order. The numeric
// id strategy is only included when the identifier parses as an integer.
func (h *GuestHandler) deleteStrategies(identifier string) []func(context.Context) error {
	strategies := []func(context.Context) error{
		func(ctx context.Context) error { return h.GuestRepo.DeleteByToken(ctx, identifier) },
	}
	if id, err := strconv.ParseUint(identifier, 10, 64); err == nil {
		strategies = append(strategies, func(ctx context.Context) error { return h.GuestRepo.DeleteByID(ctx, id) })
	}
	strategies = append(strategies, func(ctx context.Context) error { return h.GuestRepo.DeleteByName(ctx, identifier) })
	return strategies
}

func (h *GuestHandler) guestLookupError(c echo.Context, err error) error {
	if errors.Is(err, repository.ErrGuestNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Guest not found"})
	}
	log.Error().Err(err).Msg("guest lookup failed")
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
}

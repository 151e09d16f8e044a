package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmoretti/seatplan/internal/repository"
)

func newGuestTestEnv(t *testing.T) (*echo.Echo, sqlmock.Sqlmock, *GuestHandler, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	h := NewGuestHandler(repository.NewGuestRepo(db))
	return echo.New(), mock, h, func() { db.Close() }
}

func guestRow(id uint64, token, name, menu, appetiser, allergies, steakCook string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "token", "name", "menu", "appetiser", "allergies", "steak_cook", "created_at", "updated_at"}).
		AddRow(id, token, name, menu, appetiser, allergies, steakCook, now, now)
}

func TestCreateGuest_MintsToken(t *testing.T) {
	e, mock, h, done := newGuestTestEnv(t)
	defer done()

	mock.ExpectExec("INSERT INTO guests").
		WillReturnResult(sqlmock.NewResult(7, 1))

	body := `{"name":"Alice","menu":"Beef","allergies":["nuts","shellfish"],"steakCook":"medium"}`
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/guests", body), rec)

	require.NoError(t, h.CreateGuest(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp guestView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint64(7), resp.ID)
	assert.Equal(t, "Alice", resp.Name)
	assert.Equal(t, []string{"nuts", "shellfish"}, resp.Allergies)
	_, err := uuid.Parse(resp.Token)
	assert.NoError(t, err, "token should be a UUID")
}

func TestCreateGuest_DuplicateNameConflicts(t *testing.T) {
	e, mock, h, done := newGuestTestEnv(t)
	defer done()

	// The case-insensitive unique index rejects "ALICE" when "Alice"
	// exists; the driver surfaces MySQL error 1062.
	mock.ExpectExec("INSERT INTO guests").
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'ALICE' for key 'guests.uq_guests_name'"))

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/guests", `{"name":"ALICE"}`), rec)

	require.NoError(t, h.CreateGuest(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateGuest_NameRequired(t *testing.T) {
	e, _, h, done := newGuestTestEnv(t)
	defer done()

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/guests", `{"menu":"Fish"}`), rec)

	require.NoError(t, h.CreateGuest(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListGuests_ParsesAllergies(t *testing.T) {
	e, mock, h, done := newGuestTestEnv(t)
	defer done()

	rows := guestRow(1, "tok-1", "Alice", "Beef", "Soup", "nuts, gluten", "rare").
		AddRow(2, "tok-2", "Bob", "Fish", "", "", "", time.Now(), time.Now())
	mock.ExpectQuery("SELECT id, token, name").
		WillReturnRows(rows)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodGet, "/api/guests", ""), rec)

	require.NoError(t, h.ListGuests(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items []guestView `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, []string{"nuts", "gluten"}, resp.Items[0].Allergies)
	assert.Equal(t, []string{}, resp.Items[1].Allergies)
}

func TestGetGuestByToken_NotFound(t *testing.T) {
	e, mock, h, done := newGuestTestEnv(t)
	defer done()

	mock.ExpectQuery("SELECT id, token, name").
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"id", "token", "name", "menu", "appetiser", "allergies", "steak_cook", "created_at", "updated_at"}))

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodGet, "/api/guests/token/nope", ""), rec)
	c.SetParamNames("guestToken")
	c.SetParamValues("nope")

	require.NoError(t, h.GetGuestByToken(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Guest not found"}`, rec.Body.String())
}

func TestUpdateGuest_PartialUpdateKeepsOtherFields(t *testing.T) {
	e, mock, h, done := newGuestTestEnv(t)
	defer done()

	mock.ExpectQuery("SELECT id, token, name").
		WithArgs("tok-1").
		WillReturnRows(guestRow(1, "tok-1", "Alice", "Beef", "Soup", "nuts", "rare"))
	mock.ExpectExec("UPDATE guests").
		WithArgs("Fish", "Soup", "nuts", "rare", "tok-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPut, "/api/guests/tok-1", `{"menu":"Fish"}`), rec)
	c.SetParamNames("guestToken")
	c.SetParamValues("tok-1")

	require.NoError(t, h.UpdateGuest(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp guestView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Fish", resp.Menu)
	assert.Equal(t, "Soup", resp.Appetiser)
	assert.Equal(t, []string{"nuts"}, resp.Allergies)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteGuest_StrategyOrder(t *testing.T) {
	e, mock, h, done := newGuestTestEnv(t)
	defer done()

	// Identifier "7" is a valid token candidate and a valid numeric id.
	// The token strategy runs first and misses; the id strategy matches.
	mock.ExpectExec("DELETE FROM guests WHERE token").
		WithArgs("7").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM guests WHERE id").
		WithArgs(uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodDelete, "/api/guests/7", ""), rec)
	c.SetParamNames("identifier")
	c.SetParamValues("7")

	require.NoError(t, h.DeleteGuest(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteGuest_FallsBackToName(t *testing.T) {
	e, mock, h, done := newGuestTestEnv(t)
	defer done()

	// Non-numeric identifier: token first, then case-insensitive name.
	mock.ExpectExec("DELETE FROM guests WHERE token").
		WithArgs("Alice").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM guests WHERE LOWER\(name\)`).
		WithArgs("Alice").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodDelete, "/api/guests/Alice", ""), rec)
	c.SetParamNames("identifier")
	c.SetParamValues("Alice")

	require.NoError(t, h.DeleteGuest(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteGuest_NotFound(t *testing.T) {
	e, mock, h, done := newGuestTestEnv(t)
	defer done()

	mock.ExpectExec("DELETE FROM guests WHERE token").
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM guests WHERE LOWER\(name\)`).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodDelete, "/api/guests/ghost", ""), rec)
	c.SetParamNames("identifier")
	c.SetParamValues("ghost")

	require.NoError(t, h.DeleteGuest(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Guest not found"}`, rec.Body.String())
}

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmoretti/seatplan/internal/utils"
)

func TestAuthToken(t *testing.T) {
	hash, err := utils.HashKey("open-sesame", 4) // low cost keeps the test fast
	require.NoError(t, err)
	h := NewAuthHandler(hash, "signing-secret", 10)
	e := echo.New()

	t.Run("valid key", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(jsonRequest(http.MethodPost, "/api/auth/token", `{"key":"open-sesame"}`), rec)

		require.NoError(t, h.Token(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			AccessToken string `json:"access_token"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("wrong key", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(jsonRequest(http.MethodPost, "/api/auth/token", `{"key":"guess"}`), rec)

		require.NoError(t, h.Token(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("empty key", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(jsonRequest(http.MethodPost, "/api/auth/token", `{}`), rec)

		require.NoError(t, h.Token(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

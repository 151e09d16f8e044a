package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lmoretti/seatplan/internal/utils"
)

// AuthHandler exchanges the admin key for a short-lived access token.
// It is only registered when the admin guard is configured.
type AuthHandler struct {
	AdminKeyHash string // bcrypt hash of the admin key
	JWTSecret    string
	AccessTTLMin int
}

// NewAuthHandler constructs an AuthHandler from the configured secrets.
func NewAuthHandler(adminKeyHash, jwtSecret string, accessTTLMin int) *AuthHandler {
	return &AuthHandler{
		AdminKeyHash: adminKeyHash,
		JWTSecret:    jwtSecret,
		AccessTTLMin: accessTTLMin,
	}
}

// Token handles POST /api/auth/token. The caller presents the admin key
// and receives an HS256 JWT valid for the configured TTL.
func (a *AuthHandler) Token(c echo.Context) error {
	var body struct {
		Key string `json:"key"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Key == "" || !utils.VerifyKey(a.AdminKeyHash, body.Key) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid key"})
	}
	tok, err := utils.NewAccessToken(a.JWTSecret, a.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not issue token"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"access_token": tok.Token,
		"expires_at":   tok.Exp,
	})
}

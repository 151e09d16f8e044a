package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/lmoretti/seatplan/internal/config"
	"github.com/lmoretti/seatplan/internal/handler"
	"github.com/lmoretti/seatplan/internal/middleware"
)

// RegisterRoutes registers routes that carry no handler state. Currently
// it exposes only the health check used by load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAPI wires the /api surface. Layout reads, seat assignment and
// the guest endpoints are always open. When the admin guard is
// configured the layout mutations (save/delete) require a Bearer token
// obtained from POST /api/auth/token; without configuration they stay
// open and the token endpoint is not registered.
func RegisterAPI(e *echo.Echo, cfg config.Config, lh *handler.LayoutHandler, gh *handler.GuestHandler, dh *handler.DebugHandler, ah *handler.AuthHandler) {
	api := e.Group("/api")

	// Debug connectivity check; intentionally echoes the ping error.
	api.GET("/debug/db", dh.DBCheck)

	// Layout reads and seat assignment.
	api.GET("/layouts", lh.ListLayouts)
	api.GET("/layouts/:name", lh.GetMergedLayout)
	api.GET("/layouts/:name/assignments", lh.ListAssignments)
	api.POST("/layouts/:layoutName/assign-seat", lh.AssignSeat)

	// Layout mutations, optionally behind the admin guard.
	mut := api.Group("")
	if cfg.AdminAuthEnabled() {
		api.POST("/auth/token", ah.Token)
		mut.Use(middleware.AdminAuth(cfg.JWTSecret))
	}
	mut.POST("/layouts", lh.SaveLayout)
	mut.DELETE("/layouts/:name", lh.DeleteLayout)

	// Guest CRUD.
	api.POST("/guests", gh.CreateGuest)
	api.GET("/guests", gh.ListGuests)
	api.GET("/guests/id/:id", gh.GetGuestByID)
	api.GET("/guests/token/:guestToken", gh.GetGuestByToken)
	api.PUT("/guests/:guestToken", gh.UpdateGuest)
	api.DELETE("/guests/:identifier", gh.DeleteGuest)
}

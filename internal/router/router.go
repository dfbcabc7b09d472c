// Package router wires HTTP routes to handlers and applies the
// route-guard middleware: JWT authentication, role checks and the
// session gate.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/sriluxe/hotel-reservation/internal/handler"
	"github.com/sriluxe/hotel-reservation/internal/middleware"
	"github.com/sriluxe/hotel-reservation/internal/model"
)

// RegisterRoutes registers routes that carry no authentication at all.
// Currently that is only the health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the auth endpoints.  Register, login, logout
// and the session probe are open; /v1/me sits behind the JWT guard.
// The session probe does its own readiness handling so a client
// polling it during startup sees 503 rather than "signed out".
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string, ready func() bool) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/logout", a.Logout)
	g.GET("/session", a.Session)

	auth := e.Group("/v1")
	auth.Use(middleware.SessionGate(ready))
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}

// RegisterPublic registers the unauthenticated catalog and search
// endpoints.  cache is the response-cache middleware; pass a
// pass-through when caching is disabled.
func RegisterPublic(e *echo.Echo, p *handler.CatalogHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/v1", cache)
	g.GET("/hotels", p.ListHotels)
	g.GET("/hotels/:id", p.GetHotel)
	g.GET("/hotels/:id/rooms", p.ListHotelRooms)
	g.GET("/rooms/:id", p.GetRoom)
	g.GET("/search/rooms", p.SearchRooms)
}

// RegisterCustomer registers the signed-in guest's booking endpoints.
// Any authenticated role may book; ownership checks inside the
// handlers keep guests out of each other's reservations.
func RegisterCustomer(e *echo.Echo, r *handler.ReservationHandler, jwtSecret string, ready func() bool) {
	g := e.Group("/v1/reservations")
	g.Use(middleware.SessionGate(ready))
	g.Use(middleware.JWTAuth(jwtSecret))
	g.POST("", r.Create)
	g.GET("", r.List)
	g.GET("/:id", r.Get)
	g.POST("/:id/cancel", r.Cancel)
	g.GET("/:id/bill", r.GetBill)
}

// RegisterDesk registers the staff endpoints.  The desk group admits
// clerks and admins; the admin subgroup is admin only.
func RegisterDesk(e *echo.Echo, d *handler.DeskHandler, jwtSecret string, ready func() bool) {
	g := e.Group("/v1/desk")
	g.Use(middleware.SessionGate(ready))
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleClerk, model.RoleAdmin))
	g.GET("/reservations/:id", d.GetReservation)
	g.PATCH("/reservations/:id", d.Update)
	g.POST("/reservations/:id/check-in", d.CheckIn)
	g.POST("/reservations/:id/check-out", d.CheckOut)
	g.POST("/reservations/:id/bill/items", d.AddBillItem)
	g.GET("/users/:id/reservations", d.ListUserReservations)

	admin := e.Group("/v1/admin")
	admin.Use(middleware.SessionGate(ready))
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	admin.PATCH("/rooms/:id/availability", d.SetRoomAvailability)
}

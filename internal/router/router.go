package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/jukebox/internal/handler"    // handlers that drive the jukebox
	"github.com/iliyamo/jukebox/internal/middleware" // JWT authentication and role enforcement
	"github.com/iliyamo/jukebox/internal/model"
)

// Handlers groups everything RegisterRoutes mounts.
type Handlers struct {
	Health  echo.HandlerFunc
	Auth    *handler.AuthHandler
	Jukebox *handler.JukeboxHandler
	Admin   *handler.AdminHandler
}

// RegisterRoutes mounts the public, authenticated and admin routes.
// limiter guards everything under /v1; pass nil to skip rate limiting.
func RegisterRoutes(e *echo.Echo, h Handlers, jwtSecret string, limiter echo.MiddlewareFunc) {
	e.GET("/healthz", h.Health)

	var pre []echo.MiddlewareFunc
	if limiter != nil {
		pre = append(pre, limiter)
	}

	// Login does not require a session.
	e.Group("/v1/auth", pre...).POST("/login", h.Auth.Login)

	// Every account, admin or not, may pick songs.  JWTAuth runs before the
	// limiter so per-user keys see the caller.
	authed := append([]echo.MiddlewareFunc{middleware.JWTAuth(jwtSecret)}, pre...)
	v1 := e.Group("/v1", authed...)
	v1.Use(middleware.RequireRole(model.RoleAdmin, model.RoleUser))
	v1.GET("/me", h.Auth.Me)
	v1.GET("/songs", h.Jukebox.ListSongs)
	v1.GET("/queue", h.Jukebox.Queue)
	v1.GET("/queue/now-playing", h.Jukebox.NowPlaying)
	v1.POST("/queue", h.Jukebox.Select)

	admin := v1.Group("/admin", middleware.RequireRole(model.RoleAdmin))
	admin.GET("/accounts", h.Admin.ListAccounts)
	admin.PUT("/accounts/:username", h.Admin.PutAccount)
	admin.DELETE("/accounts/:username", h.Admin.DeleteAccount)
	admin.POST("/save", h.Admin.Save)
}

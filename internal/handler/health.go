package handler // declare the package name; contains HTTP handlers

import (
	"net/http" // net/http provides status codes and response helpers

	"github.com/labstack/echo/v4" // echo is the web framework used for this project

	"github.com/iliyamo/jukebox/internal/jukebox"
)

// Health returns a health-check endpoint used by load balancers and
// monitoring systems.  Besides "ok" it reports how many songs are loaded
// and waiting so an empty catalog is visible at a glance.
func Health(box *jukebox.Jukebox) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"status": "ok",
			"songs":  len(box.Songs()),
			"queued": len(box.QueueOrder()),
		})
	}
}

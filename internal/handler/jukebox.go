package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/jukebox/internal/jukebox"
	"github.com/iliyamo/jukebox/internal/middleware"
	"github.com/iliyamo/jukebox/internal/model"
)

// JukeboxHandler serves the catalog, the play queue and song selection.
type JukeboxHandler struct {
	Box *jukebox.Jukebox
	Now func() time.Time
}

func NewJukeboxHandler(box *jukebox.Jukebox) *JukeboxHandler {
	return &JukeboxHandler{Box: box, Now: time.Now}
}

type selectReq struct {
	Title string `json:"title"`
}

type selectResp struct {
	Outcome        string   `json:"outcome"`
	Message        string   `json:"message"`
	BalanceSeconds int      `json:"balance_seconds"`
	Queue          []string `json:"queue"`
}

// ListSongs returns the catalog in load order with today's counts.
func (h *JukeboxHandler) ListSongs(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"songs": h.Box.Songs()})
}

// Queue returns the titles waiting to play, head first.
func (h *JukeboxHandler) Queue(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"queue": h.Box.QueueOrder()})
}

// NowPlaying returns the head of the queue, or 204 when nothing plays.
func (h *JukeboxHandler) NowPlaying(c echo.Context) error {
	song, ok := h.Box.NowPlaying()
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, song)
}

// Select asks the jukebox to queue a song for the caller.  Admission is
// 201; each rejection has its own status and the human readable message.
func (h *JukeboxHandler) Select(c echo.Context) error {
	var req selectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Title) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title required"})
	}

	username := middleware.Username(c)
	outcome, err := h.Box.Evaluate(username, req.Title, h.Now())
	if err != nil {
		if errors.Is(err, jukebox.ErrAccountNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "account not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "selection failed"})
	}

	userCap, songCap := h.Box.DailyCaps()
	limit := userCap
	if outcome == model.RejectedItemDailyLimitReached {
		limit = songCap
	}
	resp := selectResp{
		Outcome: outcome.String(),
		Message: outcome.Message(req.Title, limit),
		Queue:   h.Box.QueueOrder(),
	}
	if acc, err := h.Box.Account(username); err == nil {
		resp.BalanceSeconds = acc.BalanceSeconds
	}
	return c.JSON(outcomeStatus(outcome), resp)
}

func outcomeStatus(o model.Outcome) int {
	switch o {
	case model.Admitted:
		return http.StatusCreated
	case model.RejectedUnknownItem:
		return http.StatusNotFound
	case model.RejectedInsufficientBalance:
		return http.StatusUnprocessableEntity
	case model.RejectedUserDailyLimitReached, model.RejectedItemDailyLimitReached:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

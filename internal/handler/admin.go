package handler

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/jukebox/internal/jukebox"
	"github.com/iliyamo/jukebox/internal/model"
)

// AdminHandler exposes account management and state saving to ADMIN
// accounts.
type AdminHandler struct {
	Box   *jukebox.Jukebox
	Store jukebox.BlobStore
}

func NewAdminHandler(box *jukebox.Jukebox, st jukebox.BlobStore) *AdminHandler {
	return &AdminHandler{Box: box, Store: st}
}

type accountReq struct {
	Password string `json:"password"`
	Admin    bool   `json:"admin"`
}

// ListAccounts returns every account sorted by username.
func (h *AdminHandler) ListAccounts(c echo.Context) error {
	accounts := h.Box.Accounts()
	out := make([]accountPart, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAccountPart(a))
	}
	return c.JSON(http.StatusOK, echo.Map{"accounts": out})
}

// PutAccount creates :username or replaces its password and role.
// Balances and daily counts are left alone on update.
func (h *AdminHandler) PutAccount(c echo.Context) error {
	username := strings.TrimSpace(c.Param("username"))
	var req accountReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	change, err := h.Box.AddOrUpdateAccount(username, req.Password, req.Admin)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	}
	status := http.StatusOK
	msg := fmt.Sprintf("Account information for '%s' has been updated.", username)
	if change == model.AccountCreated {
		status = http.StatusCreated
		msg = fmt.Sprintf("New account for '%s' has been added.", username)
	}
	return c.JSON(status, echo.Map{"result": change.String(), "message": msg})
}

// DeleteAccount removes :username.  The protected administrator and
// unknown names are reported with 404.
func (h *AdminHandler) DeleteAccount(c echo.Context) error {
	username := c.Param("username")
	if !h.Box.RemoveAccount(username) {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": fmt.Sprintf("Account for '%s' does not exist or cannot be removed.", username),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("Account for '%s' has been removed.", username),
	})
}

// Save writes accounts, songs and queue to the configured store now.
func (h *AdminHandler) Save(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()
	if err := h.Box.Save(ctx, h.Store); err != nil {
		log.Printf("admin: save failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

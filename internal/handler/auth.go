package handler

import (
	"net/http" // HTTP status codes and primitives
	"strings"  // string manipulation utilities
	"time"

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/iliyamo/jukebox/internal/config"     // app configuration
	"github.com/iliyamo/jukebox/internal/jukebox"    // account ledger behind the jukebox
	"github.com/iliyamo/jukebox/internal/middleware" // caller identity
	"github.com/iliyamo/jukebox/internal/model"
	"github.com/iliyamo/jukebox/internal/utils" // token issuing
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg config.Config
	Box *jukebox.Jukebox
}

func NewAuthHandler(cfg config.Config, box *jukebox.Jukebox) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Box: box}
}

// ----- DTOs -----

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

type accountPart struct {
	Username        string `json:"username"`
	Role            string `json:"role"`
	BalanceSeconds  int    `json:"balance_seconds"`
	SelectionsToday int    `json:"selections_today"`
}

type authResp struct {
	Account accountPart `json:"account"`
	Access  tokenPart   `json:"access"`
}

func toAccountPart(a model.Account) accountPart {
	return accountPart{
		Username:        a.Username,
		Role:            a.Role(),
		BalanceSeconds:  a.BalanceSeconds,
		SelectionsToday: a.SelectionsToday,
	}
}

// Login verifies username and password and issues an access token whose
// role claim is ADMIN or USER.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	if !h.Box.Verify(req.Username, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	acc, err := h.Box.Account(req.Username)
	if err != nil {
		// removed between Verify and here
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	at, err := utils.NewAccessToken(h.Cfg.JWTSecret, acc.Username, acc.Role(), h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(http.StatusOK, authResp{
		Account: toAccountPart(acc),
		Access:  tokenPart{Token: at.Token, Expires: at.Exp},
	})
}

// Me returns the caller's account: remaining balance and today's count.
func (h *AuthHandler) Me(c echo.Context) error {
	acc, err := h.Box.Account(middleware.Username(c))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "account not found"})
	}
	return c.JSON(http.StatusOK, toAccountPart(acc))
}

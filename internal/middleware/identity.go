package middleware

import "github.com/labstack/echo/v4"

// Username returns the account name JWTAuth stored in the context, or ""
// when the request is unauthenticated.
func Username(c echo.Context) string {
	s, _ := c.Get(CtxUsername).(string)
	return s
}

// rateIdentity is the caller used in rate limit keys; "anon" for guests.
func rateIdentity(c echo.Context) string {
	if u := Username(c); u != "" {
		return u
	}
	return "anon"
}

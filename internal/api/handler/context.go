package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the identity injected by the session middleware and
// performs a fast-fail check before any handler logic: both values must be
// present, their presence proves the gate ran.
func ctxIdentity(c echo.Context) (userID, username string, err error) {
	userID, _ = c.Get("user_id").(string)
	username, _ = c.Get("username").(string)
	if userID == "" || username == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return userID, username, nil
}

// tokenFromRequest extracts the session token: Authorization bearer header
// first, then the session cookie.
func tokenFromRequest(c echo.Context, cookieName string) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
	}

	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie.Value
	}
	return ""
}

package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/authgate/session-service/internal/api/metrics"
	"github.com/authgate/session-service/internal/core/domain"
	"github.com/authgate/session-service/internal/core/ports"
)

// SessionAuth is the request gate: it resolves the incoming session token
// and injects the identity into context. It runs before any protected
// handler logic executes; requests without a live session never reach the
// handler.
func SessionAuth(gate ports.RequestGate, cookieName string, audit ports.AuditSink) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c, cookieName)
			if token == "" {
				metrics.ResolutionsTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session token")
			}

			session, err := gate.Resolve(c.Request().Context(), token)
			if err != nil {
				metrics.ResolutionsTotal.WithLabelValues("unauthenticated").Inc()
				audit.Enqueue(domain.AuthEvent{
					Type:     domain.EventAccessDenied,
					RemoteIP: c.RealIP(),
					At:       time.Now().UTC(),
				})
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
			}

			metrics.ResolutionsTotal.WithLabelValues("ok").Inc()
			c.Set("user_id", session.UserID)
			c.Set("username", session.Username)

			return next(c)
		}
	}
}

// extractToken pulls the session token from the Authorization bearer header
// first, then the session cookie.
func extractToken(c echo.Context, cookieName string) string {
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

package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/authgate/session-service/internal/api/metrics"
	"github.com/authgate/session-service/internal/core/domain"
	"github.com/authgate/session-service/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	audit       ports.AuditSink
	cookieName  string
}

func NewAuthHandler(authService ports.AuthService, audit ports.AuditSink, cookieName string) *AuthHandler {
	return &AuthHandler{authService: authService, audit: audit, cookieName: cookieName}
}

type credentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Username and password"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		status := http.StatusInternalServerError
		result := "error"
		switch {
		case errors.Is(err, domain.ErrUserExists):
			status = http.StatusBadRequest
			result = "duplicate"
		case errors.Is(err, domain.ErrInvalidCredentials):
			status = http.StatusBadRequest
			result = "invalid"
		}
		metrics.RegistrationsTotal.WithLabelValues(result).Inc()
		return c.JSON(status, map[string]string{"error": err.Error()})
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	h.audit.Enqueue(domain.AuthEvent{
		Type:     domain.EventRegistered,
		UserID:   user.ID,
		Username: user.Username,
		RemoteIP: c.RealIP(),
		At:       time.Now().UTC(),
	})

	return c.JSON(http.StatusCreated, registerResponse{Message: "user registered", User: user})
}

// Login verifies credentials and issues a session token. The token is
// returned in the body and set as an HttpOnly cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	ctx := c.Request().Context()

	user, err := h.authService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("denied").Inc()
		h.audit.Enqueue(domain.AuthEvent{
			Type:     domain.EventLoginDenied,
			Username: req.Username,
			RemoteIP: c.RealIP(),
			At:       time.Now().UTC(),
		})
		return c.JSON(http.StatusBadRequest, map[string]string{"error": domain.ErrInvalidCredentials.Error()})
	}

	session, err := h.authService.Login(ctx, user)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create session"})
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.audit.Enqueue(domain.AuthEvent{
		Type:     domain.EventLoggedIn,
		UserID:   user.ID,
		Username: user.Username,
		RemoteIP: c.RealIP(),
		At:       time.Now().UTC(),
	})

	return c.JSON(http.StatusOK, loginResponse{Message: "logged in", Token: session.Token})
}

// Logout revokes the presented session token and clears the cookie.
// Logging out an already-revoked token is treated as success.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := tokenFromRequest(c, h.cookieName)

	if token != "" {
		err := h.authService.Logout(c.Request().Context(), token)
		if err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not revoke session"})
		}
		if err == nil {
			h.audit.Enqueue(domain.AuthEvent{
				Type:     domain.EventLoggedOut,
				RemoteIP: c.RealIP(),
				At:       time.Now().UTC(),
			})
		}
	}

	metrics.LogoutsTotal.Inc()

	// Expire the cookie regardless of whether a session was revoked.
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

package handler

import (
	"log/slog"
	"net/http"
	"time"

	"accounts/config"
	"accounts/internal/delivery/http/middleware"
	"accounts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler serves the cookie-session login surface.
type AuthHandler struct {
	userUC     usecase.UserUsecase
	sessionUC  usecase.SessionUsecase
	cookieName string
	logger     *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx. It
// issues and clears the cookie named by session.cookieName.
func NewAuthHandler(userUC usecase.UserUsecase, sessionUC usecase.SessionUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	cookieName := middleware.SessionCookieName
	if cfg != nil && cfg.Session.CookieName != "" {
		cookieName = cfg.Session.CookieName
	}

	return &AuthHandler{
		userUC:     userUC,
		sessionUC:  sessionUC,
		cookieName: cookieName,
		logger:     logger,
	}
}

// Login verifies credentials and issues a session cookie. The body is
// empty on success.
func (h *AuthHandler) Login(c echo.Context) error {
	var input LoginRequest
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.userUC.Authenticate(c.Request().Context(), input.Login, input.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	session, err := h.sessionUC.Create(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    session.ID,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info("Session established", slog.Int64("user_id", user.ID))

	return c.NoContent(http.StatusOK)
}

// Logout invalidates the current session, if any, and expires the cookie.
// It succeeds even without a session.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.cookieName); err == nil && cookie.Value != "" {
		if err := h.sessionUC.Invalidate(c.Request().Context(), cookie.Value); err != nil {
			return errors.WithStack(err)
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.NoContent(http.StatusOK)
}

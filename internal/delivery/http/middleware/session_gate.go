package middleware

import (
	"net/http"
	"strings"

	"accounts/config"
	delctx "accounts/internal/delivery/context"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the default cookie carrying the session identifier
// for the cookie-authenticated surface; session.cookieName overrides it.
const SessionCookieName = "SESSION_ID"

// SessionGate authenticates requests on the /v1 and /auth surface from the
// session cookie. A few entry points are exempt so that clients can obtain
// a session in the first place.
type SessionGate struct {
	sessionUC  usecase.SessionUsecase
	userUC     usecase.UserUsecase
	cookieName string
}

// NewSessionGate creates the cookie-session gate. The cookie name comes
// from session.cookieName, falling back to SessionCookieName.
func NewSessionGate(sessionUC usecase.SessionUsecase, userUC usecase.UserUsecase, cfg *config.Config) *SessionGate {
	cookieName := SessionCookieName
	if cfg != nil && cfg.Session.CookieName != "" {
		cookieName = cfg.Session.CookieName
	}

	return &SessionGate{
		sessionUC:  sessionUC,
		userUC:     userUC,
		cookieName: cookieName,
	}
}

// CookieName returns the configured session cookie name.
func (g *SessionGate) CookieName() string {
	return g.cookieName
}

// exempt reports whether the request may pass without a session: CORS
// preflight, the login endpoints and customer registration.
func (g *SessionGate) exempt(c echo.Context) bool {
	method := c.Request().Method
	path := c.Request().URL.Path

	if method == http.MethodOptions {
		return true
	}

	if strings.HasPrefix(path, "/auth/login") {
		return true
	}

	if method == http.MethodPost && path == "/v1/users" {
		return true
	}

	return false
}

// Gate returns the echo middleware enforcing the session check.
func (g *SessionGate) Gate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if g.exempt(c) {
				return next(c)
			}

			cookie, err := c.Cookie(g.cookieName)
			if err != nil || cookie.Value == "" {
				return domainerrors.ErrUnauthorized
			}

			session, err := g.sessionUC.Find(c.Request().Context(), cookie.Value)
			if err != nil {
				return domainerrors.ErrUnauthorized
			}

			subject := ""
			if user, err := g.userUC.FindByID(c.Request().Context(), session.UserID); err == nil {
				subject = user.Login
			}

			delctx.SetAuthenticated(c, session.UserID, subject)

			return next(c)
		}
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"accounts/config"
	delctx "accounts/internal/delivery/context"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	mockUC "accounts/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func runSessionGate(t *testing.T, gate *SessionGate, req *http.Request) (echo.Context, error) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := gate.Gate()(next)(c)

	return c, err
}

func TestSessionGate_ExemptRequestsPass(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "preflight", method: http.MethodOptions, path: "/v1/users/7"},
		{name: "login", method: http.MethodPost, path: "/auth/login"},
		{name: "registration", method: http.MethodPost, path: "/v1/users"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessionUC := mockUC.NewMockSessionUsecase(t)
			userUC := mockUC.NewMockUserUsecase(t)
			gate := NewSessionGate(sessionUC, userUC, nil)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			_, err := runSessionGate(t, gate, req)

			assert.NoError(t, err)
		})
	}
}

func TestSessionGate_MissingCookieRejected(t *testing.T) {
	sessionUC := mockUC.NewMockSessionUsecase(t)
	userUC := mockUC.NewMockUserUsecase(t)
	gate := NewSessionGate(sessionUC, userUC, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
	_, err := runSessionGate(t, gate, req)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestSessionGate_UnknownSessionRejected(t *testing.T) {
	sessionUC := mockUC.NewMockSessionUsecase(t)
	userUC := mockUC.NewMockUserUsecase(t)
	gate := NewSessionGate(sessionUC, userUC, nil)

	sessionUC.EXPECT().
		Find(mock.Anything, "stale-session").
		Return(nil, repository.ErrSessionNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "stale-session"})

	_, err := runSessionGate(t, gate, req)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestSessionGate_ValidSessionAuthenticates(t *testing.T) {
	sessionUC := mockUC.NewMockSessionUsecase(t)
	userUC := mockUC.NewMockUserUsecase(t)
	gate := NewSessionGate(sessionUC, userUC, nil)

	session := &entity.Session{ID: "live-session", UserID: 42, ExpiresAt: time.Now().Add(time.Hour)}
	sessionUC.EXPECT().Find(mock.Anything, "live-session").Return(session, nil)
	userUC.EXPECT().FindByID(mock.Anything, int64(42)).Return(&entity.User{ID: 42, Login: "ada"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "live-session"})

	c, err := runSessionGate(t, gate, req)

	require.NoError(t, err)
	userID, ok := delctx.AuthenticatedUserID(c)
	require.True(t, ok)
	assert.Equal(t, int64(42), userID)
	subject, _ := delctx.AuthenticatedSubject(c)
	assert.Equal(t, "ada", subject)
}

func TestSessionGate_ConfiguredCookieNameHonored(t *testing.T) {
	sessionUC := mockUC.NewMockSessionUsecase(t)
	userUC := mockUC.NewMockUserUsecase(t)
	cfg := &config.Config{Session: config.SessionConfig{CookieName: "ACCOUNTS_SESSION"}}
	gate := NewSessionGate(sessionUC, userUC, cfg)

	require.Equal(t, "ACCOUNTS_SESSION", gate.CookieName())

	session := &entity.Session{ID: "live-session", UserID: 42, ExpiresAt: time.Now().Add(time.Hour)}
	sessionUC.EXPECT().Find(mock.Anything, "live-session").Return(session, nil)
	userUC.EXPECT().FindByID(mock.Anything, int64(42)).Return(&entity.User{ID: 42, Login: "ada"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
	req.AddCookie(&http.Cookie{Name: "ACCOUNTS_SESSION", Value: "live-session"})

	_, err := runSessionGate(t, gate, req)

	assert.NoError(t, err)
}

func TestSessionGate_DefaultCookieNameRejectedUnderCustomConfig(t *testing.T) {
	sessionUC := mockUC.NewMockSessionUsecase(t)
	userUC := mockUC.NewMockUserUsecase(t)
	cfg := &config.Config{Session: config.SessionConfig{CookieName: "ACCOUNTS_SESSION"}}
	gate := NewSessionGate(sessionUC, userUC, cfg)

	req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "live-session"})

	_, err := runSessionGate(t, gate, req)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	delctx "accounts/internal/delivery/context"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/service"
	mockSvc "accounts/internal/mocks/service"
	mockUC "accounts/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func runTokenGate(t *testing.T, gate *TokenGate, req *http.Request) (echo.Context, error) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := gate.Gate()(next)(c)

	return c, err
}

func TestTokenGate_NoHeaderLeavesRequestAnonymous(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userUC := mockUC.NewMockUserUsecase(t)
	gate := NewTokenGate(tokenSvc, userUC)

	req := httptest.NewRequest(http.MethodGet, "/v2/users", nil)
	c, err := runTokenGate(t, gate, req)

	require.NoError(t, err)
	assert.False(t, delctx.IsAuthenticated(c))
}

func TestTokenGate_NonBearerSchemeIgnored(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userUC := mockUC.NewMockUserUsecase(t)
	gate := NewTokenGate(tokenSvc, userUC)

	req := httptest.NewRequest(http.MethodGet, "/v2/users", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")

	c, err := runTokenGate(t, gate, req)

	require.NoError(t, err)
	assert.False(t, delctx.IsAuthenticated(c))
}

func TestTokenGate_InvalidTokenSwallowed(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userUC := mockUC.NewMockUserUsecase(t)
	gate := NewTokenGate(tokenSvc, userUC)

	tokenSvc.EXPECT().Parse("garbage").Return(nil, errors.New("failed to parse token"))

	req := httptest.NewRequest(http.MethodGet, "/v2/users", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer garbage")

	c, err := runTokenGate(t, gate, req)

	require.NoError(t, err)
	assert.False(t, delctx.IsAuthenticated(c))
}

func TestTokenGate_UnknownSubjectSwallowed(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userUC := mockUC.NewMockUserUsecase(t)
	gate := NewTokenGate(tokenSvc, userUC)

	tokenSvc.EXPECT().Parse("token-for-ghost").Return(&service.TokenClaims{
		Subject:   "ghost",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	userUC.EXPECT().FindByLogin(mock.Anything, "ghost").Return(nil, domainerrors.ErrUserNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v2/users", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer token-for-ghost")

	c, err := runTokenGate(t, gate, req)

	require.NoError(t, err)
	assert.False(t, delctx.IsAuthenticated(c))
}

func TestTokenGate_ValidTokenAuthenticates(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userUC := mockUC.NewMockUserUsecase(t)
	gate := NewTokenGate(tokenSvc, userUC)

	tokenSvc.EXPECT().Parse("valid-token").Return(&service.TokenClaims{
		Subject:   "ada",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	userUC.EXPECT().FindByLogin(mock.Anything, "ada").Return(&entity.User{ID: 42, Login: "ada"}, nil)
	tokenSvc.EXPECT().Validate("valid-token", "ada").Return(true)

	req := httptest.NewRequest(http.MethodGet, "/v2/users", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer valid-token")

	c, err := runTokenGate(t, gate, req)

	require.NoError(t, err)
	userID, ok := delctx.AuthenticatedUserID(c)
	require.True(t, ok)
	assert.Equal(t, int64(42), userID)
}

func TestTokenGate_SubjectMismatchSwallowed(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userUC := mockUC.NewMockUserUsecase(t)
	gate := NewTokenGate(tokenSvc, userUC)

	tokenSvc.EXPECT().Parse("stale-token").Return(&service.TokenClaims{
		Subject:   "ada",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	userUC.EXPECT().FindByLogin(mock.Anything, "ada").Return(&entity.User{ID: 42, Login: "ada"}, nil)
	tokenSvc.EXPECT().Validate("stale-token", "ada").Return(false)

	req := httptest.NewRequest(http.MethodGet, "/v2/users", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer stale-token")

	c, err := runTokenGate(t, gate, req)

	require.NoError(t, err)
	assert.False(t, delctx.IsAuthenticated(c))
}

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	mockSvc "accounts/internal/mocks/service"
	mockUC "accounts/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandlerV2_Login_ReturnsBearerToken(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	h := NewAuthHandlerV2(userUC, tokenSvc, newDiscardLogger())

	user := &entity.User{ID: 42, Login: "ada"}
	userUC.EXPECT().Authenticate(mock.Anything, "ada", "secret123").Return(user, nil)
	tokenSvc.EXPECT().Generate("ada", int64(42)).Return("signed-token", nil)

	req := httptest.NewRequest(http.MethodPost, "/v2/auth/login",
		strings.NewReader(`{"login":"ada","password":"secret123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newEchoContext(req)

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "signed-token", body.Token)
	assert.Equal(t, "Bearer", body.Type)
}

func TestAuthHandlerV2_Login_InvalidCredentials(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	h := NewAuthHandlerV2(userUC, tokenSvc, newDiscardLogger())

	userUC.EXPECT().
		Authenticate(mock.Anything, "ghost", "whatever").
		Return(nil, domainerrors.ErrInvalidCredentials)

	req := httptest.NewRequest(http.MethodPost, "/v2/auth/login",
		strings.NewReader(`{"login":"ghost","password":"whatever"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, _ := newEchoContext(req)

	assert.ErrorIs(t, h.Login(c), domainerrors.ErrInvalidCredentials)
}

func TestAuthHandlerV2_Logout_IsStateless(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	h := NewAuthHandlerV2(userUC, tokenSvc, newDiscardLogger())

	req := httptest.NewRequest(http.MethodPost, "/v2/auth/logout", nil)
	c, rec := newEchoContext(req)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

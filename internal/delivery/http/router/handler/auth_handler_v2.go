package handler

import (
	"log/slog"
	"net/http"

	"accounts/internal/domain/service"
	"accounts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandlerV2 serves the bearer-token login surface.
type AuthHandlerV2 struct {
	userUC   usecase.UserUsecase
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthHandlerV2 is the constructor for AuthHandlerV2, injected by Fx.
func NewAuthHandlerV2(userUC usecase.UserUsecase, tokenSvc service.TokenService, logger *slog.Logger) *AuthHandlerV2 {
	return &AuthHandlerV2{
		userUC:   userUC,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// Login verifies credentials and returns a signed bearer token.
func (h *AuthHandlerV2) Login(c echo.Context) error {
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

	token, err := h.tokenSvc.Generate(user.Login, user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("Token issued", slog.Int64("user_id", user.ID))

	return c.JSON(http.StatusOK, TokenResponse{
		Token: token,
		Type:  "Bearer",
	})
}

// Logout acknowledges the request. Tokens are stateless and remain valid
// until they expire; clients discard the token on their side.
func (h *AuthHandlerV2) Logout(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

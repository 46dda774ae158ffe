package middleware

import (
	"strings"

	delctx "accounts/internal/delivery/context"
	"accounts/internal/domain/service"
	"accounts/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// TokenGate populates the request principal from a bearer token. It never
// rejects a request on its own: a missing or invalid token simply leaves
// the request unauthenticated for the policy layer to judge.
type TokenGate struct {
	tokenSvc service.TokenService
	userUC   usecase.UserUsecase
}

// NewTokenGate creates the bearer-token gate.
func NewTokenGate(tokenSvc service.TokenService, userUC usecase.UserUsecase) *TokenGate {
	return &TokenGate{
		tokenSvc: tokenSvc,
		userUC:   userUC,
	}
}

// Gate returns the echo middleware extracting the bearer principal.
func (g *TokenGate) Gate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if delctx.IsAuthenticated(c) {
				return next(c)
			}

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				return next(c)
			}

			tokenString := header[len(bearerPrefix):]

			claims, err := g.tokenSvc.Parse(tokenString)
			if err != nil {
				return next(c)
			}

			user, err := g.userUC.FindByLogin(c.Request().Context(), claims.Subject)
			if err != nil {
				return next(c)
			}

			if !g.tokenSvc.Validate(tokenString, user.Login) {
				return next(c)
			}

			delctx.SetAuthenticated(c, user.ID, user.Login)

			return next(c)
		}
	}
}

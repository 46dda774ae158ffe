// Package router contains routing setup for the HTTP delivery.
package router

import (
	"accounts/internal/delivery/http/middleware"
	"accounts/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler   *handler.UserHandler
	AuthHandler   *handler.AuthHandler
	AuthHandlerV2 *handler.AuthHandlerV2
	SessionGate   *middleware.SessionGate
	TokenGate     *middleware.TokenGate
	Policy        *middleware.PolicyMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler   *handler.UserHandler
	authHandler   *handler.AuthHandler
	authHandlerV2 *handler.AuthHandlerV2
	sessionGate   *middleware.SessionGate
	tokenGate     *middleware.TokenGate
	policy        *middleware.PolicyMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:   params.UserHandler,
		authHandler:   params.AuthHandler,
		authHandlerV2: params.AuthHandlerV2,
		sessionGate:   params.SessionGate,
		tokenGate:     params.TokenGate,
		policy:        params.Policy,
	}
}

// RegisterRoutes sets up all the API routes for the application. The
// cookie surface (/auth, /v1) sits behind the session gate; the token
// surface (/v2) behind the bearer gate plus the authorization policy.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Cookie-session surface.
	authGroup := e.Group("/auth", r.sessionGate.Gate())
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	v1 := e.Group("/v1", r.sessionGate.Gate())
	r.registerUserRoutes(v1)

	// Bearer-token surface.
	v2 := e.Group("/v2", r.tokenGate.Gate(), r.policy.Enforce())
	{
		v2.POST("/auth/login", r.authHandlerV2.Login)
		v2.POST("/auth/logout", r.authHandlerV2.Logout)
	}
	r.registerUserRoutes(v2)
}

// registerUserRoutes mounts the user CRUD endpoints on a version group.
// Both surfaces expose the same routes; only the gates differ.
func (r *router) registerUserRoutes(g *echo.Group) {
	g.POST("/users", r.userHandler.Create)
	g.GET("/users", r.userHandler.List)
	g.GET("/users/search/name", r.userHandler.SearchByName)
	g.GET("/users/search/login", r.userHandler.SearchByLogin)
	g.GET("/users/search/email", r.userHandler.SearchByEmail)
	g.GET("/users/:id", r.userHandler.GetByID)
	g.PUT("/users/:id", r.userHandler.Update)
	g.PATCH("/users/:id/password", r.userHandler.ChangePassword)
	g.DELETE("/users/:id", r.userHandler.Delete)
}

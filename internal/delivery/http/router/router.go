// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"identity/internal/delivery/http/middleware"
	"identity/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	users := e.Group("/users")
	users.POST("/create", r.accountHandler.Create)
	users.POST("/login", r.accountHandler.Login)

	// The remaining routes require a token admitted by the access guard.
	guard := r.authMiddleware.Authenticate
	users.GET("/list", r.accountHandler.List, guard)
	users.PUT("/update/:email", r.accountHandler.Update, guard)
	users.DELETE("/remove/:email", r.accountHandler.Remove, guard)
}

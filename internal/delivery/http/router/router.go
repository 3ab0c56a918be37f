// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ezytutor/internal/delivery/http/middleware"
	"ezytutor/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	TutorHandler        *handler.TutorHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	tutorHandler        *handler.TutorHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		tutorHandler:        params.TutorHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	e.Use(r.requestIDMiddleware.Process)

	// Registration and sign-in forms
	e.GET("/", r.tutorHandler.ShowRegisterForm)
	e.POST("/register", r.tutorHandler.HandleRegister)
	e.GET("/signinform", r.tutorHandler.ShowSignInForm)
	e.POST("/signin", r.tutorHandler.HandleSignIn)

	// Stylesheets and other assets
	e.Static("/static", "static")
}

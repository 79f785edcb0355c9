// Package router contains routing for the HTTP delivery.
package router

import (
	"contacts/internal/delivery/api/middleware"
	"contacts/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	ContactHandler *handler.ContactHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	contactHandler *handler.ContactHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		contactHandler: params.ContactHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/refresh_token", r.authHandler.RefreshToken)
		authGroup.GET("/confirmed_email/:token", r.authHandler.ConfirmEmail)
		authGroup.POST("/request_email", r.authHandler.RequestEmail)
		authGroup.POST("/password-reset-request", r.authHandler.RequestPasswordReset, r.authMiddleware.Authenticate)
		authGroup.GET("/password-reset", r.authHandler.VerifyResetToken)
		authGroup.POST("/set-new-password", r.authHandler.SetNewPassword)
	}

	// User routes that require authentication
	userGroup := api.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.Me)
		userGroup.PATCH("/avatar", r.userHandler.UpdateAvatar)
	}

	// Contact routes, scoped to the authenticated owner
	contactGroup := api.Group("/contacts")
	contactGroup.Use(r.authMiddleware.Authenticate)
	{
		contactGroup.POST("", r.contactHandler.Create)
		contactGroup.GET("", r.contactHandler.List)
		contactGroup.GET("/upcoming-birthdays", r.contactHandler.UpcomingBirthdays)
		contactGroup.GET("/by-first-name/:name", r.contactHandler.ByFirstName)
		contactGroup.GET("/by-last-name/:name", r.contactHandler.ByLastName)
		contactGroup.GET("/by-email/:email", r.contactHandler.ByEmail)
		contactGroup.GET("/:id", r.contactHandler.Get)
		contactGroup.PUT("/:id", r.contactHandler.Update)
		contactGroup.DELETE("/:id", r.contactHandler.Delete)
	}
}

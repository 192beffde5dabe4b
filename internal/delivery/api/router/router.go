// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pinmap/internal/delivery/api/middleware"
	"pinmap/internal/delivery/api/router/handler"
	"pinmap/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PinHandler      *handler.PinHandler
	SessionHandler  *handler.SessionHandler
	CategoryHandler *handler.CategoryHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Metrics         *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	pinHandler      *handler.PinHandler
	sessionHandler  *handler.SessionHandler
	categoryHandler *handler.CategoryHandler
	authMiddleware  *middleware.AuthMiddleware
	metrics         *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		pinHandler:      params.PinHandler,
		sessionHandler:  params.SessionHandler,
		categoryHandler: params.CategoryHandler,
		authMiddleware:  params.AuthMiddleware,
		metrics:         params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	apiV1.GET("/categories", r.categoryHandler.ListCategories)

	pinsGroup := apiV1.Group("/pins")
	{
		pinsGroup.GET("", r.pinHandler.ListPins)
		pinsGroup.POST("", r.pinHandler.CreatePin)
		pinsGroup.PATCH("/:id", r.pinHandler.UpdatePin)
		pinsGroup.DELETE("/:id", r.pinHandler.DeletePin)
	}

	sessionGroup := apiV1.Group("/session")
	{
		sessionGroup.POST("", r.sessionHandler.Start)
		sessionGroup.DELETE("", r.sessionHandler.End)

		sessionGroup.GET("/pins", r.sessionHandler.Pins)
		sessionGroup.PATCH("/pins/:id", r.sessionHandler.UpdatePin)
		sessionGroup.DELETE("/pins/:id", r.sessionHandler.DeletePin)

		sessionGroup.POST("/clicks", r.sessionHandler.Click)

		sessionGroup.GET("/draft", r.sessionHandler.Draft)
		sessionGroup.PATCH("/draft", r.sessionHandler.EditDraft)
		sessionGroup.DELETE("/draft", r.sessionHandler.CancelDraft)
		sessionGroup.POST("/draft/submit", r.sessionHandler.SubmitDraft)

		sessionGroup.GET("/markers", r.sessionHandler.Markers)
		sessionGroup.POST("/exports", r.sessionHandler.Export)
	}
}

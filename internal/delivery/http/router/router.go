// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pindrop/config"
	"pindrop/internal/delivery/http/middleware"
	"pindrop/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config            *config.Config
	PinHandler        *handler.PinHandler
	MapHandler        *handler.MapHandler
	VisibilityHandler *handler.VisibilityHandler
	TestHandler       *handler.TestHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg               *config.Config
	pinHandler        *handler.PinHandler
	mapHandler        *handler.MapHandler
	visibilityHandler *handler.VisibilityHandler
	testHandler       *handler.TestHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:               params.Config,
		pinHandler:        params.PinHandler,
		mapHandler:        params.MapHandler,
		visibilityHandler: params.VisibilityHandler,
		testHandler:       params.TestHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Pin routes that require authentication
	pinGroup := e.Group("/pins")
	pinGroup.Use(r.authMiddleware.Authenticate)
	{
		pinGroup.POST("", r.pinHandler.DropPin)
		pinGroup.GET("/mine", r.pinHandler.ListOwnPins)
		pinGroup.DELETE("/:id", r.pinHandler.DeletePin)
		pinGroup.GET("/:id/qrcode", r.pinHandler.GeneratePinShareQR)
	}

	// Map routes that require authentication
	mapGroup := e.Group("/map")
	mapGroup.Use(r.authMiddleware.Authenticate)
	{
		mapGroup.GET("/pins", r.mapHandler.QueryViewport)
		mapGroup.GET("/incoming", r.mapHandler.IncomingVisitors)
	}

	// Visibility setting routes
	visibilityGroup := e.Group("/visibility")
	visibilityGroup.Use(r.authMiddleware.Authenticate)
	{
		visibilityGroup.GET("", r.visibilityHandler.GetVisibility)
		visibilityGroup.PUT("", r.visibilityHandler.SetVisibility)
	}

	// Test routes, gated behind config for non-production use
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		{
			testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
			testGroup.POST("/token", r.testHandler.MintTestToken)
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
		}
	}
}

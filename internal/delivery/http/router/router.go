// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"measure/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MeasureHandler    *handler.MeasureHandler
	CanvasHandler     *handler.CanvasHandler
	CollectionHandler *handler.CollectionHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	measureHandler    *handler.MeasureHandler
	canvasHandler     *handler.CanvasHandler
	collectionHandler *handler.CollectionHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		measureHandler:    params.MeasureHandler,
		canvasHandler:     params.CanvasHandler,
		collectionHandler: params.CollectionHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Tool lifecycle
	toolGroup := e.Group("/tool")
	{
		toolGroup.POST("/activate", r.measureHandler.ActivateTool)
		toolGroup.POST("/deactivate", r.measureHandler.DeactivateTool)
		toolGroup.POST("/toggle", r.measureHandler.ToggleTool)
	}

	// Measurement session events
	sessionGroup := e.Group("/session")
	{
		sessionGroup.POST("/clicks", r.measureHandler.Click)
		sessionGroup.POST("/preview", r.measureHandler.Preview)
		sessionGroup.POST("/finish", r.measureHandler.Finish)
		sessionGroup.POST("/cancel", r.measureHandler.Cancel)
		sessionGroup.POST("/undo", r.measureHandler.Undo)
	}
	e.GET("/session", r.measureHandler.Session)
	e.GET("/overlays", r.measureHandler.Overlays)
	e.GET("/status", r.measureHandler.Status)

	// Canvas reference system
	e.GET("/canvas", r.canvasHandler.GetCanvas)
	e.PUT("/canvas/crs", r.canvasHandler.UpdateCRS)

	// Persisted collections
	e.GET("/collections", r.collectionHandler.ListCollections)
	e.GET("/collections/:name", r.collectionHandler.GetCollection)
}

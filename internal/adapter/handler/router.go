package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	minutesController *MinutesController
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, minutesController *MinutesController) *Router {
	return &Router{
		cfg:               cfg,
		minutesController: minutesController,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")
	rt.setupMinutesRoutes(v1)
}

// setupMinutesRoutes configures minutes generation routes
func (rt *Router) setupMinutesRoutes(g *echo.Group) {
	if rt.minutesController == nil {
		g.POST("/minutes", rt.notImplemented)
		g.GET("/minutes/models", rt.notImplemented)
		g.GET("/artifacts/:name", rt.notImplemented)
		return
	}
	g.POST("/minutes", rt.minutesController.Generate)
	g.GET("/minutes/models", rt.minutesController.Models)
	g.GET("/artifacts/:name", rt.minutesController.Download)
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":  "This endpoint is not yet implemented",
		"path":   c.Request().URL.Path,
		"method": c.Request().Method,
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}

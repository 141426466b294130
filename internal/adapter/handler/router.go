package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/muhammedmuflih/meeting-minutes-generator/internal/infrastructure/media"
	"github.com/muhammedmuflih/meeting-minutes-generator/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	uploadHandler   *Upload
	jobHandler      *Job
	downloadHandler *Download
	minutesHandler  *Minutes
	converter       *media.Converter
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	uploadHandler *Upload,
	jobHandler *Job,
	downloadHandler *Download,
	minutesHandler *Minutes,
	converter *media.Converter,
) *Router {
	return &Router{
		cfg:             cfg,
		uploadHandler:   uploadHandler,
		jobHandler:      jobHandler,
		downloadHandler: downloadHandler,
		minutesHandler:  minutesHandler,
		converter:       converter,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)

	v1 := e.Group("/v1")

	v1.POST("/meetings/upload", rt.uploadHandler.Create)
	v1.GET("/jobs/:id", rt.jobHandler.Status)
	v1.GET("/jobs/:id/results", rt.jobHandler.Results)
	v1.GET("/downloads/:filename", rt.downloadHandler.Get)
	v1.POST("/minutes", rt.minutesHandler.Generate)
}

// healthCheck returns health status, including external tool availability.
func (rt *Router) healthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":       "ok",
		"environment":  rt.cfg.Server.Environment,
		"dependencies": rt.converter.CheckDependencies(ctx),
	})
}

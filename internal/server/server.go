package server

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"taskmgr/internal/models"
	"taskmgr/internal/reminder"
	"taskmgr/internal/task"
)

// Server provides the HTTP surface of the task tracker: the JSON API consumed
// by the frontend plus the static frontend itself.
type Server struct {
	engine    *gin.Engine
	store     *task.Store
	logger    *slog.Logger
	staticDir string

	bannerMu sync.Mutex
	banner   reminder.Banner
}

// New constructs the HTTP server with routes and middleware configured.
// banner is the result of the startup reminder evaluation.
func New(store *task.Store, banner reminder.Banner, logger *slog.Logger, staticDir string) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.LoggerWithWriter(gin.DefaultWriter, "/api"))

	srv := &Server{
		engine:    router,
		store:     store,
		logger:    logger,
		staticDir: staticDir,
		banner:    banner,
	}

	srv.registerRoutes()
	return srv
}

// Engine exposes the underlying Gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// registerRoutes wires all API and static handlers together.
func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")
	{
		api.GET("/healthz", s.handleHealth)
		api.GET("/meta", s.handleMeta)
		api.GET("/assets", s.handleAssets)

		tasks := api.Group("/tasks")
		{
			tasks.GET("", s.handleListTasks)
			tasks.POST("", s.handleCreateTask)
			tasks.PUT(":id", s.handleUpdateTask)
			tasks.PATCH(":id/completed", s.handleSetCompleted)
			tasks.DELETE(":id", s.handleDeleteTask)
		}

		api.GET("/stats", s.handleStats)
		api.GET("/reminder", s.handleGetReminder)
		api.POST("/reminder/dismiss", s.handleDismissReminder)
		api.POST("/import", s.handleImport)
	}

	s.mountStatic()
}

// handleHealth provides a basic readiness endpoint.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleMeta exposes the fixed choice lists the UI selects are built from.
func (s *Server) handleMeta(c *gin.Context) {
	respondSuccess(c, http.StatusOK, gin.H{
		"categories": models.Categories,
		"priorities": models.Priorities,
		"sorts":      models.SortKeys,
	})
}

// respondTaskError maps core errors to HTTP statuses.
func (s *Server) respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		s.respondError(c, http.StatusBadRequest, err)
	case errors.Is(err, models.ErrNotFound):
		s.respondError(c, http.StatusNotFound, err)
	default:
		s.respondError(c, http.StatusInternalServerError, err)
	}
}

// respondError logs the error and returns a JSON payload.
func (s *Server) respondError(c *gin.Context, status int, err error) {
	if err != nil && status >= http.StatusInternalServerError {
		s.logger.Error("request failed", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// respondSuccess wraps a payload in a JSON envelope for consistency.
func respondSuccess(c *gin.Context, status int, payload any) {
	if payload == nil {
		c.Status(status)
		return
	}
	c.JSON(status, payload)
}

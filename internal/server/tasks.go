package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskmgr/internal/models"
	"taskmgr/internal/task"
)

type taskRequest struct {
	Title         string     `json:"title"`
	Desc          string     `json:"desc"`
	Category      string     `json:"category"`
	Priority      string     `json:"priority"`
	Due           *time.Time `json:"due"`
	DailyReminder bool       `json:"dailyReminder"`
	Subtasks      []string   `json:"subtasks"`
}

func (r taskRequest) draft() models.Draft {
	return models.Draft{
		Title:         r.Title,
		Desc:          r.Desc,
		Category:      r.Category,
		Priority:      r.Priority,
		Due:           r.Due,
		DailyReminder: r.DailyReminder,
		Subtasks:      r.Subtasks,
	}
}

// handleListTasks returns the collection filtered and sorted by query params.
func (s *Server) handleListTasks(c *gin.Context) {
	filters := models.Filters{
		Search:   c.Query("search"),
		Category: c.DefaultQuery("category", "all"),
		Priority: c.DefaultQuery("priority", "all"),
		Sort:     c.DefaultQuery("sort", models.SortNewest),
	}

	tasks := task.Apply(s.store.Tasks(), filters)
	respondSuccess(c, http.StatusOK, gin.H{"tasks": tasks})
}

// handleCreateTask creates a task from the submitted draft.
func (s *Server) handleCreateTask(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	t, err := s.store.Create(req.draft())
	if err != nil {
		s.respondTaskError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"task": t})
}

// handleUpdateTask replaces the mutable fields of an existing task.
func (s *Server) handleUpdateTask(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	t, err := s.store.Update(c.Param("id"), req.draft())
	if err != nil {
		s.respondTaskError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"task": t})
}

// handleSetCompleted sets or clears the completed flag.
func (s *Server) handleSetCompleted(c *gin.Context) {
	var req struct {
		Completed *bool `json:"completed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Completed == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "completed is required"})
		return
	}

	t, err := s.store.SetCompleted(c.Param("id"), *req.Completed)
	if err != nil {
		s.respondTaskError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"task": t})
}

// handleDeleteTask removes a task completely. The confirmation prompt lives in
// the frontend; a declined delete never reaches the API.
func (s *Server) handleDeleteTask(c *gin.Context) {
	if err := s.store.Delete(c.Param("id")); err != nil {
		s.respondTaskError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"status": "deleted"})
}

// handleStats returns the aggregate completion counters.
func (s *Server) handleStats(c *gin.Context) {
	respondSuccess(c, http.StatusOK, gin.H{"stats": task.ComputeStats(s.store.Tasks())})
}

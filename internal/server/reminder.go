package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleGetReminder returns the banner computed once at process start.
func (s *Server) handleGetReminder(c *gin.Context) {
	s.bannerMu.Lock()
	banner := s.banner
	s.bannerMu.Unlock()
	respondSuccess(c, http.StatusOK, gin.H{"reminder": banner})
}

// handleDismissReminder hides the banner for the rest of the process lifetime.
// The persisted last-shown date is not touched here; it was already written
// when the banner was computed.
func (s *Server) handleDismissReminder(c *gin.Context) {
	s.bannerMu.Lock()
	s.banner.Visible = false
	s.bannerMu.Unlock()
	respondSuccess(c, http.StatusOK, gin.H{"status": "dismissed"})
}

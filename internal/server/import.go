package server

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmgr/internal/importer"
)

// handleImport bulk-creates tasks from a YAML document in the request body.
func (s *Server) handleImport(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	if len(body) == 0 {
		s.respondError(c, http.StatusBadRequest, fmt.Errorf("empty request body"))
		return
	}

	count, err := importer.Import(s.store, string(body))
	if err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"imported": count})
}

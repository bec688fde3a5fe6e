package server

import (
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// mountStatic serves the frontend from the configured directory.
func (s *Server) mountStatic() {
	if s.staticDir == "" {
		s.logger.Warn("static directory not configured; API only mode")
		return
	}

	info, err := os.Stat(s.staticDir)
	if err != nil || !info.IsDir() {
		s.logger.Warn("static directory missing", "path", s.staticDir, "error", err)
		return
	}

	indexPath := filepath.Join(s.staticDir, "index.html")
	if _, err := os.Stat(indexPath); err != nil {
		s.logger.Warn("index.html not found", "path", indexPath, "error", err)
	} else {
		s.engine.GET("/", func(c *gin.Context) {
			c.File(indexPath)
		})
		s.engine.NoRoute(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api/") {
				c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found"})
				return
			}
			c.File(indexPath)
		})
	}

	assetsDir := filepath.Join(s.staticDir, "assets")
	if _, err := os.Stat(assetsDir); err == nil {
		s.engine.StaticFS("/assets", gin.Dir(assetsDir, true))
	}

	for _, name := range []string{"favicon.ico", "manifest.json"} {
		p := filepath.Join(s.staticDir, name)
		if _, err := os.Stat(p); err == nil {
			s.engine.StaticFile("/"+name, p)
		}
	}
}

// handleAssets lists the relative paths of the static files, so the frontend
// service worker knows what to pre-cache for offline use. An unconfigured or
// missing static dir yields an empty list rather than an error.
func (s *Server) handleAssets(c *gin.Context) {
	assets := []string{}
	if s.staticDir != "" {
		root := s.staticDir
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				return nil
			}
			assets = append(assets, "/"+filepath.ToSlash(rel))
			return nil
		})
	}
	respondSuccess(c, http.StatusOK, gin.H{"assets": assets})
}

// Package contentserver publishes the terminal's startup text and profile
// over HTTP so remote terminals can fetch them at session start.
package contentserver

import (
	"log/slog"
	"net/http"

	"termfolio/internal/content"

	"github.com/gin-gonic/gin"
)

// NewRouter returns the gin engine serving store's content.
//
//	GET /startup.txt   startup text (text/plain, no-store)
//	GET /profile.toml  profile document
//	GET /healthz       liveness
func NewRouter(store *content.Store, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))

	r.GET("/startup.txt", func(c *gin.Context) {
		text, err := store.StartupText()
		if err != nil {
			logger.Error("read startup text", "error", err)
			c.String(http.StatusInternalServerError, "startup text unavailable")
			return
		}
		c.Header("Cache-Control", "no-store")
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
	})

	r.GET("/profile.toml", func(c *gin.Context) {
		data, err := store.ProfileTOML()
		if err != nil {
			logger.Error("read profile", "error", err)
			c.String(http.StatusInternalServerError, "profile unavailable")
			return
		}
		c.Data(http.StatusOK, "application/toml; charset=utf-8", data)
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
		)
	}
}

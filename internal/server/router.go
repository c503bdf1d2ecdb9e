// Package server exposes the store and analysis operations over a small
// JSON HTTP API consumed by the browser frontend.
package server

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/gverdi/frasario-backend/internal/config"
)

// NewRouter builds the gin engine with all routes registered.
func NewRouter(h *Handler, corsCfg config.CORSConfig, version string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(requestLogger(h.log))
	r.Use(corsMiddleware(corsCfg))

	r.GET("/healthcheck", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": version})
	})

	api := r.Group("/api")
	{
		api.POST("/sentences", h.AnalyzeSentence)
		api.GET("/sentences", h.ListSentences)
		api.GET("/sentences/exists", h.SentenceExists)
		api.GET("/sentences/:id", h.GetSentence)
		api.POST("/sentences/:id/grammar-cards", h.AppendGrammarCard)
		api.POST("/sentences/:id/grammar-cards/explain", h.ExplainGrammar)
		api.DELETE("/sentences/:id/grammar-cards/:cardID", h.RemoveGrammarCard)
	}

	return r
}

func corsMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     splitCSV(cfg.AllowedOrigins),
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           time.Duration(cfg.MaxAge) * time.Second,
	})
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Package api exposes the descriptor pipeline over HTTP.
package api

import (
	"net/http"

	"veoforge/generator"
	"veoforge/resume"
	"veoforge/rules"
	"veoforge/storage"

	"github.com/gin-gonic/gin"
)

// Deps holds the shared components the controllers operate on.
type Deps struct {
	Generator *generator.Generator
	Store     *storage.DocumentStore
	Uploader  *storage.Uploader
	Resume    *resume.Parser
	Catalog   *rules.Catalog

	// LLMConfigured reports whether a completion provider is wired in,
	// surfaced by the test endpoint so clients can tell fallback output apart.
	LLMConfigured bool
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	// Register resource routers
	RegisterGenerateRoutes(r, deps)
	RegisterResumeRoutes(r, deps)
	RegisterHealthRoutes(r, deps)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Endpoint not found",
		})
	})
	return r
}

package api

import (
	"net/http"

	"veoforge/config"

	"github.com/gin-gonic/gin"
)

// RegisterHealthRoutes registers health and readiness endpoints.
func RegisterHealthRoutes(r *gin.Engine, deps Deps) {
	r.GET("/api/health", handleHealth)
	r.GET("/api/test", handleTest(deps))
}

// handleHealth reports liveness.
// GET /api/health
func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// handleTest reports component wiring so clients can tell whether output
// will come from the language model or the deterministic fallbacks.
// GET /api/test
func handleTest(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		message := "Backend is ready!"
		if !deps.LLMConfigured {
			message = "COHERE_API_KEY not configured; deterministic fallbacks in use"
		}

		c.JSON(http.StatusOK, gin.H{
			"success":        true,
			"llm_configured": deps.LLMConfigured,
			"components_initialized": gin.H{
				"generator":     deps.Generator != nil,
				"resume_parser": deps.Resume != nil,
				"store":         deps.Store != nil,
				"s3_uploader":   deps.Uploader != nil,
			},
			"config": gin.H{
				"clip_duration_seconds":     config.ClipDurationSeconds,
				"dialogue_deadline_seconds": config.DialogueDeadlineSeconds,
				"default_clip_count":        config.DefaultClipCount,
				"completion_model":          config.CompletionModel,
				"speed_keys":                deps.Catalog.SpeedKeys(),
			},
			"message": message,
		})
	}
}

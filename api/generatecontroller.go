package api

import (
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"veoforge/config"
	"veoforge/generator"
	"veoforge/master"

	"github.com/gin-gonic/gin"
)

// RegisterGenerateRoutes registers descriptor generation endpoints.
func RegisterGenerateRoutes(r *gin.Engine, deps Deps) {
	r.POST("/api/generate", handleGenerate(deps))
}

// GenerateRequest is the JSON payload for a descriptor generation request.
type GenerateRequest struct {
	ContentDescription     string `json:"content_description" binding:"required"`
	ReferenceImage         string `json:"reference_image" binding:"required"`
	VoiceTone              string `json:"voice_tone"`
	Speed                  string `json:"speed"`
	NumClips               int    `json:"num_clips"`
	BackgroundMusic        bool   `json:"background_music"`
	BackgroundPreset       string `json:"background_preset"`
	BackgroundCustom       string `json:"background_custom"`
	AdditionalInstructions string `json:"additional_instructions"`
}

// handleGenerate builds a master descriptor and one descriptor per clip,
// persists them, and returns the full set.
// POST /api/generate
func handleGenerate(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GenerateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		log.Printf("🎬 Generating descriptors: clips=%d speed=%s tone=%s music=%v",
			req.NumClips, req.Speed, req.VoiceTone, req.BackgroundMusic)

		imagePath, err := saveReferenceImage(req.ReferenceImage)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid reference image: " + err.Error()})
			return
		}
		log.Printf("📸 Reference image saved: %s", filepath.Base(imagePath))

		result := deps.Generator.Generate(c.Request.Context(), generator.Request{
			Description:        req.ContentDescription,
			ReferenceImagePath: imagePath,
			Options: master.Options{
				ClipCount:              req.NumClips,
				Speed:                  req.Speed,
				BackgroundMusic:        req.BackgroundMusic,
				UserTone:               req.VoiceTone,
				BackgroundPreset:       req.BackgroundPreset,
				BackgroundCustom:       req.BackgroundCustom,
				AdditionalInstructions: req.AdditionalInstructions,
			},
		})

		paths, err := deps.Store.SaveProject(result.ProjectID, result.Master, result.Clips)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to save descriptors: " + err.Error()})
			return
		}
		log.Printf("✅ Saved %d descriptor files for project %s", len(paths), result.ProjectID)

		if deps.Uploader != nil {
			if err := deps.Uploader.UploadProject(c.Request.Context(), result.ProjectID, paths); err != nil {
				log.Printf("⚠️ S3 upload failed for project %s: %v", result.ProjectID, err)
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"project_id": result.ProjectID,
			"master":     result.Master,
			"clips":      result.Clips,
			"message":    fmt.Sprintf("Generated master descriptor and %d clip descriptors", len(result.Clips)),
		})
	}
}

// saveReferenceImage decodes a base64 image (with or without a data URL
// prefix) into the upload directory and returns the file path.
func saveReferenceImage(encoded string) (string, error) {
	if i := strings.Index(encoded, ","); i >= 0 {
		encoded = encoded[i+1:]
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", fmt.Errorf("empty image payload")
	}

	if err := os.MkdirAll(config.UploadDir, 0o755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("reference_%s.jpg", time.Now().Format("20060102_150405"))
	path := filepath.Join(config.UploadDir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

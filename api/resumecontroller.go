package api

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"veoforge/config"
	"veoforge/resume"

	"github.com/gin-gonic/gin"
)

// RegisterResumeRoutes registers resume parsing endpoints.
func RegisterResumeRoutes(r *gin.Engine, deps Deps) {
	r.POST("/api/parse-resume", handleParseResume(deps))
	r.POST("/api/generate-description", handleGenerateDescription)
}

// handleParseResume extracts structured data from an uploaded PDF or DOCX.
// POST /api/parse-resume (multipart form, field "file")
func handleParseResume(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No file uploaded"})
			return
		}
		if fileHeader.Filename == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No file selected"})
			return
		}

		ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
		if ext != ".pdf" && ext != ".docx" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Only PDF and DOCX files are supported"})
			return
		}

		if err := os.MkdirAll(config.UploadDir, 0o755); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		filename := fmt.Sprintf("resume_%s_%s", time.Now().Format("20060102_150405"), filepath.Base(fileHeader.Filename))
		path := filepath.Join(config.UploadDir, filename)
		if err := c.SaveUploadedFile(fileHeader, path); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to save upload: " + err.Error()})
			return
		}

		log.Printf("📄 Parsing resume: %s", filename)

		data, err := deps.Resume.ParseFile(c.Request.Context(), path)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}

		if data.IsFallback {
			log.Printf("⚠️ Resume parsed with fallback data: %v", data.Warnings)
		} else {
			log.Printf("✅ Resume parsed successfully")
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    data,
			"message": "Resume parsed successfully",
		})
	}
}

// GenerateDescriptionRequest carries parsed resume data plus the desired focus.
type GenerateDescriptionRequest struct {
	ResumeData *resume.Data `json:"resume_data" binding:"required"`
	Focus      string       `json:"focus"`
}

// handleGenerateDescription turns parsed resume data into a video description.
// POST /api/generate-description
func handleGenerateDescription(c *gin.Context) {
	var req GenerateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No resume data provided"})
		return
	}

	focus := req.Focus
	if focus == "" {
		focus = "comprehensive"
	}

	log.Printf("📝 Generating video description (focus: %s)", focus)
	description := resume.GenerateVideoDescription(*req.ResumeData, focus)

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"description": description,
		"message":     "Description generated successfully",
	})
}

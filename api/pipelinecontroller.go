package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shortstudio/studio"
)

// RegisterPipelineRoutes registers one endpoint per pipeline stage. The
// runner holds a single session; this is a single-user tool, so stage calls
// are not expected to race.
func RegisterPipelineRoutes(r *gin.Engine, runner *studio.Runner) {
	g := r.Group("/api")
	g.POST("/source", handleSource(runner))
	g.POST("/generate", handleGenerate(runner))
	g.POST("/script", handleScript(runner))
	g.POST("/voiceover", handleVoiceover(runner))
	g.GET("/voiceover", handleVoiceoverDownload(runner))
	g.POST("/previews", handlePreviews(runner))
	g.GET("/previews/:idx", handlePreviewDownload(runner))
	g.POST("/export", handleExport(runner))
	g.GET("/session", handleSession(runner))
	g.POST("/reset", handleReset(runner))
}

// SourceRequest carries exactly one of url, text, or feed.
type SourceRequest struct {
	URL  string `json:"url"`
	Text string `json:"text"`
	Feed string `json:"feed"`
}

// GenerateRequest carries the optional topic hint.
type GenerateRequest struct {
	TopicHint string `json:"topic_hint"`
}

// ScriptRequest records a user edit of the voiceover script.
type ScriptRequest struct {
	Script string `json:"script" binding:"required"`
}

// VoiceoverRequest selects the TTS voice.
type VoiceoverRequest struct {
	VoiceName string `json:"voice_name"`
}

// ExportRequest carries optional metadata overrides for the bundle.
type ExportRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Tags        string `json:"tags"`
}

func handleSource(runner *studio.Runner) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SourceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var err error
		switch {
		case req.URL != "":
			err = runner.LoadURL(c.Request.Context(), req.URL)
		case req.Feed != "":
			err = runner.LoadFeed(c.Request.Context(), req.Feed)
		case req.Text != "":
			err = runner.LoadText(req.Text)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "provide a url, feed, or article text"})
			return
		}
		if err != nil {
			respondError(c, err)
			return
		}

		// Truncate on a rune boundary so multi-byte text stays valid UTF-8
		preview := runner.Session.ArticleText
		if runes := []rune(preview); len(runes) > 500 {
			preview = string(runes[:500])
		}
		c.JSON(http.StatusOK, gin.H{
			"chars":   len(runner.Session.ArticleText),
			"preview": preview,
		})
	}
}

func handleGenerate(runner *studio.Runner) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Every field is optional, so an absent body is fine
		var req GenerateRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := runner.GeneratePackage(c.Request.Context(), req.TopicHint); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, runner.Session.Package)
	}
}

func handleScript(runner *studio.Runner) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ScriptRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := runner.EditScript(req.Script); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"script": runner.Session.FinalScript()})
	}
}

func handleVoiceover(runner *studio.Runner) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VoiceoverRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := runner.Voiceover(c.Request.Context(), req.VoiceName); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"voice": runner.Session.VoiceName,
			"bytes": len(runner.Session.Voiceover),
		})
	}
}

func handleVoiceoverDownload(runner *studio.Runner) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !runner.Session.HasVoiceover() {
			c.JSON(http.StatusNotFound, gin.H{"error": "no voiceover generated yet"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="voiceover.mp3"`)
		c.Data(http.StatusOK, "audio/mpeg", runner.Session.Voiceover)
	}
}

func handlePreviews(runner *studio.Runner) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := runner.Previews(); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"rendered": len(runner.Session.Previews)})
	}
}

func handlePreviewDownload(runner *studio.Runner) gin.HandlerFunc {
	return func(c *gin.Context) {
		idx, err := strconv.Atoi(c.Param("idx"))
		if err != nil || idx < 0 || idx >= len(runner.Session.Previews) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no such preview"})
			return
		}
		c.Data(http.StatusOK, "image/png", runner.Session.Previews[idx])
	}
}

func handleExport(runner *studio.Runner) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ExportRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		data, err := runner.Export(req.Title, req.Description, req.Tags)
		if err != nil {
			respondError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="short_bundle.zip"`)
		c.Data(http.StatusOK, "application/zip", data)
	}
}

func handleSession(runner *studio.Runner) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := runner.Session
		c.JSON(http.StatusOK, gin.H{
			"id":            s.ID,
			"started_at":    s.StartedAt,
			"source_url":    s.SourceURL,
			"has_article":   s.HasArticle(),
			"has_package":   s.HasPackage(),
			"has_voiceover": s.HasVoiceover(),
			"previews":      len(s.Previews),
		})
	}
}

func handleReset(runner *studio.Runner) gin.HandlerFunc {
	return func(c *gin.Context) {
		runner.Session = studio.NewSession()
		c.JSON(http.StatusOK, gin.H{"id": runner.Session.ID})
	}
}

// respondError maps the stage error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, studio.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, studio.ErrConfiguration):
		status = http.StatusServiceUnavailable
	case errors.Is(err, studio.ErrRetrieval),
		errors.Is(err, studio.ErrGeneration),
		errors.Is(err, studio.ErrSynthesis):
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

package api

import (
	"context"
	"errors"
	"log"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"docgen-form/pkg/middleware"
	"docgen-form/pkg/services"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	submissionService services.SubmissionService
	downloads         *services.DownloadStore
}

// NewHandlers creates a new Handlers instance
func NewHandlers(submissionService services.SubmissionService, downloads *services.DownloadStore) *Handlers {
	return &Handlers{
		submissionService: submissionService,
		downloads:         downloads,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// ShowForm renders the generation form
func (h *Handlers) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, indexTemplate, gin.H{
		"SubmitURL": SubmitPath,
	})
}

// HandleSubmission runs one form submission and responds with the result
// fragment the page swaps into its result area.
func (h *Handlers) HandleSubmission(c *gin.Context) {
	log.Printf("Received submission (request %s)", middleware.GetRequestID(c))

	// The exchange with the generation service runs to completion even if
	// the browser disconnects.
	ctx := context.WithoutCancel(c.Request.Context())

	view := &resultFragment{}
	h.submissionService.Submit(ctx, &formReader{c: c}, view)

	c.HTML(http.StatusOK, resultTemplate, view)
}

// ServeDownload sends a stored binary result as an attachment
func (h *Handlers) ServeDownload(c *gin.Context) {
	download, err := h.downloads.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrDownloadNotFound) || errors.Is(err, services.ErrDownloadExpired) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error loading download: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading download"})
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": download.Filename,
	}))
	c.Data(http.StatusOK, download.ContentType, download.Data)
}

package api

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"docgen-form/pkg/models"
	"docgen-form/pkg/services"
)

const (
	resultText     = "text"
	resultDownload = "download"
	resultError    = "error"
)

// formReader reads a submission from the posted form fields
type formReader struct {
	c *gin.Context
}

func (r *formReader) ReadSubmission() (models.Submission, error) {
	var form models.SubmissionForm
	if err := r.c.ShouldBind(&form); err != nil {
		return models.Submission{}, fmt.Errorf("invalid form data: %w", err)
	}
	return form.ToSubmission(), nil
}

// resultFragment is the result area rendered back to the page
type resultFragment struct {
	Kind string
	Text string
	Link services.DownloadLink
}

func (f *resultFragment) ShowText(text string) {
	*f = resultFragment{Kind: resultText, Text: text}
}

func (f *resultFragment) ShowDownload(link services.DownloadLink) {
	*f = resultFragment{Kind: resultDownload, Link: link}
}

func (f *resultFragment) ShowError(message string) {
	*f = resultFragment{Kind: resultError, Text: message}
}

package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"docgen-form/pkg/clients/docgen"
	"docgen-form/pkg/models"
	"docgen-form/pkg/utils"
)

const defaultDownloadType = "application/octet-stream"

// FormReader reads the current form inputs at submission time
type FormReader interface {
	ReadSubmission() (models.Submission, error)
}

// ResultView is the result area a submission renders into. Each call replaces
// whatever the view showed before.
type ResultView interface {
	ShowText(text string)
	ShowDownload(link DownloadLink)
	ShowError(message string)
}

// DownloadLink describes a generated file offered to the user
type DownloadLink struct {
	URL      string
	Filename string
	Label    string
}

// ServerError is a non-2xx answer from the generation service
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("Server Error (%d): %s", e.StatusCode, e.Message)
}

// SubmissionService defines the interface for handling form submissions
type SubmissionService interface {
	Submit(ctx context.Context, form FormReader, view ResultView)
}

type submissionServiceImpl struct {
	client         docgen.Client
	downloads      *DownloadStore
	downloadPrefix string
}

// NewSubmissionService creates a new submission service. Download links are
// built as downloadPrefix + id.
func NewSubmissionService(client docgen.Client, downloads *DownloadStore, downloadPrefix string) SubmissionService {
	return &submissionServiceImpl{
		client:         client,
		downloads:      downloads,
		downloadPrefix: downloadPrefix,
	}
}

// Submit runs one submission end to end. Every failure ends up in the view.
func (s *submissionServiceImpl) Submit(ctx context.Context, form FormReader, view ResultView) {
	if err := s.submit(ctx, form, view); err != nil {
		log.Printf("Submission failed: %v", err)

		var serverErr *ServerError
		if errors.As(err, &serverErr) {
			view.ShowError(serverErr.Error())
			return
		}
		view.ShowError("Error: " + err.Error())
	}
}

func (s *submissionServiceImpl) submit(ctx context.Context, form FormReader, view ResultView) error {
	submission, err := form.ReadSubmission()
	if err != nil {
		return fmt.Errorf("error reading form: %w", err)
	}

	log.Printf("Processing %s submission for %s (output=%s)",
		submission.Mode, fingerprint(submission.Profile), submission.OutputType)

	resp, err := s.client.Generate(ctx, submission.Mode, models.NewGenerationRequest(submission))
	if err != nil {
		return err
	}

	if submission.OutputType.IsBinary() && resp.OK() {
		link, err := s.storeDownload(submission, resp)
		if err != nil {
			return err
		}
		view.ShowDownload(link)
		return nil
	}

	raw := string(resp.Body)

	if !resp.OK() {
		return &ServerError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(raw, resp.StatusText()),
		}
	}

	view.ShowText(successText(raw))
	return nil
}

func (s *submissionServiceImpl) storeDownload(submission models.Submission, resp *docgen.Response) (DownloadLink, error) {
	contentType := resp.ContentType
	if contentType == "" {
		contentType = defaultDownloadType
	}

	filename := DownloadFilename(submission.Mode, submission.OutputType)
	download, err := s.downloads.Put(filename, contentType, resp.Body)
	if err != nil {
		return DownloadLink{}, fmt.Errorf("error storing download: %w", err)
	}

	return DownloadLink{
		URL:      s.downloadPrefix + download.ID,
		Filename: filename,
		Label:    fmt.Sprintf("Download %s (%s)", submission.Mode.Title(), strings.ToUpper(string(submission.OutputType))),
	}, nil
}

// DownloadFilename names the file offered for a binary result,
// e.g. Resume.pdf or Cover_Letter.pdf
func DownloadFilename(mode models.Mode, output models.OutputType) string {
	return strings.ReplaceAll(mode.Title(), " ", "_") + "." + string(output)
}

// errorMessage extracts the message shown for a failed generation
func errorMessage(raw, statusText string) string {
	var parsed interface{}
	if err := json.Unmarshal([]byte(raw), &parsed); err == nil && parsed != nil {
		if obj, ok := parsed.(map[string]interface{}); ok {
			if msg, ok := obj["error"].(string); ok && msg != "" {
				return msg
			}
		}
		var compact bytes.Buffer
		if err := json.Compact(&compact, []byte(raw)); err == nil {
			return compact.String()
		}
	}

	if raw != "" {
		return raw
	}
	return statusText
}

// successText extracts the generated text, falling back to the raw body
func successText(raw string) string {
	var body models.GenerationText
	if err := json.Unmarshal([]byte(raw), &body); err == nil && body.Text != nil {
		return *body.Text
	}
	return raw
}

func fingerprint(p models.Profile) string {
	return utils.Fingerprint(p.Contact, 12)
}

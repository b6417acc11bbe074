package docgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"docgen-form/pkg/models"
)

const (
	resumePath      = "/generate-resume"
	coverLetterPath = "/generate-cover-letter"
)

// Client defines the interface for interacting with the document generation service
type Client interface {
	EndpointFor(mode models.Mode) string
	Generate(ctx context.Context, mode models.Mode, payload models.GenerationRequest) (*Response, error)
}

// Response is a fully read response from the generation service.
// Body holds the only read of the response stream.
type Response struct {
	StatusCode  int
	Status      string
	ContentType string
	Body        []byte
}

// OK reports whether the status is in the 2xx range
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// StatusText returns the reason phrase sent by the server, or the standard one
func (r *Response) StatusText() string {
	code := strconv.Itoa(r.StatusCode)
	if text := strings.TrimSpace(strings.TrimPrefix(r.Status, code)); text != "" {
		return text
	}
	return http.StatusText(r.StatusCode)
}

type clientImpl struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new generation service client rooted at baseURL.
// A nil httpClient uses a plain client with no timeout.
func NewClient(baseURL string, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &clientImpl{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *clientImpl) EndpointFor(mode models.Mode) string {
	if mode.IsResume() {
		return c.baseURL + resumePath
	}
	return c.baseURL + coverLetterPath
}

func (c *clientImpl) Generate(ctx context.Context, mode models.Mode, payload models.GenerationRequest) (*Response, error) {
	endpoint := c.EndpointFor(mode)

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonPayload))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling generation service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	log.Printf("Generation service %s responded %d (%d bytes)", endpoint, resp.StatusCode, len(body))

	return &Response{
		StatusCode:  resp.StatusCode,
		Status:      resp.Status,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

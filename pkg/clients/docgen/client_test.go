package docgen_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"docgen-form/pkg/clients/docgen"
	"docgen-form/pkg/models"
)

func TestEndpointFor(t *testing.T) {
	client := docgen.NewClient("http://localhost:5000/", nil)

	cases := map[models.Mode]string{
		models.ModeResume:      "http://localhost:5000/generate-resume",
		models.ModeCoverLetter: "http://localhost:5000/generate-cover-letter",
		"":                     "http://localhost:5000/generate-cover-letter",
		"Resume":               "http://localhost:5000/generate-cover-letter",
	}
	for mode, want := range cases {
		if got := client.EndpointFor(mode); got != want {
			t.Errorf("EndpointFor(%q) = %q, want %q", mode, got, want)
		}
	}
}

func TestGenerateSendsJSONPayload(t *testing.T) {
	var (
		gotPath        string
		gotMethod      string
		gotContentType string
		gotBody        map[string]interface{}
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"ok"}`))
	}))
	defer server.Close()

	client := docgen.NewClient(server.URL, server.Client())
	payload := models.GenerationRequest{
		Profile: models.Profile{
			Name:       "Ada",
			Contact:    "ada@example.com",
			Education:  "",
			Skills:     "Go",
			Experience: "10y",
		},
		JobDesc:    "Backend engineer",
		OutputType: "text",
	}

	resp, err := client.Generate(context.Background(), models.ModeResume, payload)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if gotPath != "/generate-resume" || gotMethod != http.MethodPost {
		t.Fatalf("request = %s %s, want POST /generate-resume", gotMethod, gotPath)
	}
	if gotContentType != "application/json" {
		t.Fatalf("content type = %q, want application/json", gotContentType)
	}

	wantBody := map[string]interface{}{
		"profile": map[string]interface{}{
			"name":       "Ada",
			"contact":    "ada@example.com",
			"education":  "",
			"skills":     "Go",
			"experience": "10y",
		},
		"jobDesc":    "Backend engineer",
		"outputType": "text",
	}
	if diff := cmp.Diff(wantBody, gotBody); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}

	if !resp.OK() || string(resp.Body) != `{"text":"ok"}` || resp.ContentType != "application/json" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestGenerateReturnsFailureResponses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := docgen.NewClient(server.URL, nil)
	resp, err := client.Generate(context.Background(), models.ModeCoverLetter, models.GenerationRequest{})
	if err != nil {
		t.Fatalf("non-2xx status must not be a transport error: %v", err)
	}
	if resp.OK() {
		t.Fatal("expected non-OK response")
	}
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if got := resp.StatusText(); got != "Service Unavailable" {
		t.Fatalf("StatusText() = %q", got)
	}
}

func TestGenerateTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := docgen.NewClient(url, nil)
	_, err := client.Generate(context.Background(), models.ModeResume, models.GenerationRequest{})
	if err == nil {
		t.Fatal("expected transport error")
	}
	if !strings.Contains(err.Error(), "error calling generation service") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStatusTextFallsBackToStandardText(t *testing.T) {
	resp := &docgen.Response{StatusCode: 418, Status: "418"}
	if got := resp.StatusText(); got != "I'm a teapot" {
		t.Fatalf("StatusText() = %q", got)
	}
	resp = &docgen.Response{StatusCode: 500, Status: "500 Model Offline"}
	if got := resp.StatusText(); got != "Model Offline" {
		t.Fatalf("StatusText() = %q", got)
	}
}

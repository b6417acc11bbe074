package api

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"

	"docgen-form/pkg/middleware"
)

const (
	SubmitPath     = "/submit"
	DownloadPrefix = "/downloads/"

	indexTemplate  = "index.tmpl"
	resultTemplate = "result.tmpl"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// RouterOptions configures the middleware around the routes
type RouterOptions struct {
	AllowedOrigins []string
	SubmitRate     int
	SubmitBurst    int
}

// LoadTemplates parses the embedded page and fragment templates
func LoadTemplates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.tmpl")
}

// NewRouter creates a gin router with all routes registered
func NewRouter(h *Handlers, opts RouterOptions) (*gin.Engine, error) {
	tmpl, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	// Create a new Gin router with default middleware
	router := gin.Default()
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(opts.AllowedOrigins))
	router.SetHTMLTemplate(tmpl)

	router.GET("/", h.ShowForm)
	router.POST(SubmitPath, middleware.RateLimit(opts.SubmitRate, opts.SubmitBurst), h.HandleSubmission)
	router.GET(DownloadPrefix+":id", h.ServeDownload)
	router.GET("/health", h.HealthCheck)

	return router, nil
}

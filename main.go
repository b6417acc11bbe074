package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"docgen-form/pkg/api"
	"docgen-form/pkg/clients/docgen"
	"docgen-form/pkg/config"
	"docgen-form/pkg/services"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// Initialize API clients
	docgenClient := docgen.NewClient(cfg.BaseURL, nil)

	// Initialize services
	downloads := services.NewDownloadStore(cfg.DownloadTTL)
	submissionService := services.NewSubmissionService(docgenClient, downloads, api.DownloadPrefix)

	gin.SetMode(cfg.GinMode)

	// Initialize handlers and routes
	handlers := api.NewHandlers(submissionService, downloads)
	router, err := api.NewRouter(handlers, api.RouterOptions{
		AllowedOrigins: cfg.AllowedOrigins,
		SubmitRate:     cfg.SubmitRate,
		SubmitBurst:    cfg.SubmitBurst,
	})
	if err != nil {
		log.Fatalf("Error loading templates: %v", err)
	}

	// Start the server
	log.Printf("Server starting on port %s (generation service: %s)", cfg.Port, cfg.BaseURL)
	if err := router.Run(cfg.Addr()); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}

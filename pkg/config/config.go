package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL     = "http://localhost:5000"
	DefaultPort        = "8080"
	DefaultGinMode     = "debug"
	DefaultDownloadTTL = 10 * time.Minute
	DefaultSubmitBurst = 5
)

// Config holds all application configuration values
type Config struct {
	// BaseURL is the root address of the document generation service
	BaseURL        string        `yaml:"base_url" validate:"required,url,startswith=http"`
	Port           string        `yaml:"port" validate:"required,numeric"`
	GinMode        string        `yaml:"gin_mode" validate:"oneof=debug release test"`
	DownloadTTL    time.Duration `yaml:"download_ttl" validate:"gt=0"`
	AllowedOrigins []string      `yaml:"allowed_origins" validate:"min=1,dive,required"`
	SubmitRate     int           `yaml:"submit_rate_per_minute" validate:"gte=0"`
	SubmitBurst    int           `yaml:"submit_burst" validate:"gte=1"`
}

// LoadConfig reads configuration from an optional YAML file (CONFIG_FILE)
// and then from environment variables, which take precedence.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		BaseURL:        DefaultBaseURL,
		Port:           DefaultPort,
		GinMode:        DefaultGinMode,
		DownloadTTL:    DefaultDownloadTTL,
		AllowedOrigins: []string{"*"},
		SubmitBurst:    DefaultSubmitBurst,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Addr is the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Port
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("error parsing config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("DOCGEN_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		cfg.GinMode = v
	}
	if v := os.Getenv("DOWNLOAD_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("error parsing DOWNLOAD_TTL: %w", err)
		}
		cfg.DownloadTTL = ttl
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("SUBMIT_RATE_PER_MINUTE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("error parsing SUBMIT_RATE_PER_MINUTE: %w", err)
		}
		cfg.SubmitRate = n
	}
	if v := os.Getenv("SUBMIT_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("error parsing SUBMIT_BURST: %w", err)
		}
		cfg.SubmitBurst = n
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

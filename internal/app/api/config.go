package api

import (
	"fmt"
	"os"
	"strings"

	openaiclient "github.com/medsupply/inventory-case-api/internal/clients/http/openai"
	openaiadapter "github.com/medsupply/inventory-case-api/internal/domains/orders/adapters/external/openai"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port          string
	DatasetPath   string
	PostgresDSN   string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
}

// LoadConfig reads environment variables, applies defaults, and validates
// basic constraints. The adjudication credential is mandatory: without it no
// late case can be resolved.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:          envDefault("PORT", "8080"),
		DatasetPath:   envDefault("DATASET_PATH", "inventory_data.json"),
		PostgresDSN:   strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		OpenAIAPIKey:  strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIBaseURL: envDefault("OPENAI_BASE_URL", openaiclient.DefaultBaseURL),
		OpenAIModel:   envDefault("OPENAI_MODEL", openaiadapter.DefaultModel),
	}
	if cfg.OpenAIAPIKey == "" {
		return Config{}, fmt.Errorf("OPENAI_API_KEY must be set")
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

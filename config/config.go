package config

import "os"

const (
	defaultPort  = "8080"
	defaultModel = "gpt-5-nano"
)

// Config holds the runtime settings read from the process environment after
// LoadEnv has run.
type Config struct {
	Port           string
	OpenAIModel    string
	AllowedOrigins []string
}

func FromEnv() Config {
	cfg := Config{
		Port:           getEnv("PORT", defaultPort),
		OpenAIModel:    getEnv("OPENAI_MODEL", defaultModel),
		AllowedOrigins: []string{"http://localhost:3000"},
	}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		cfg.AllowedOrigins = append(cfg.AllowedOrigins, frontendURL)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

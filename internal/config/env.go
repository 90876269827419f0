package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// PlaceholderDatabaseURL is the value shipped in .env.example. A DATABASE_URL
// equal to it (or empty) leaves the gateway unconfigured and the site on its
// built-in defaults.
const PlaceholderDatabaseURL = "postgres://placeholder.supabase.co:5432/postgres"

type Config struct {
	DatabaseURL string

	GeminiAPIKey string
	GenModel     string

	EmailJSServiceID  string
	EmailJSTemplateID string
	EmailJSPublicKey  string

	Port       string
	CORSOrigin string
}

// LoadConfig loads the environment variables and returns the config.
// Nothing here is fatal: a missing credential disables the feature it
// backs and the site degrades to default content.
func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GenModel:          getEnv("GEN_MODEL", "gemini-2.5-flash"),
		EmailJSServiceID:  getEnv("EMAILJS_SERVICE_ID", ""),
		EmailJSTemplateID: getEnv("EMAILJS_TEMPLATE_ID", ""),
		EmailJSPublicKey:  getEnv("EMAILJS_PUBLIC_KEY", ""),
		Port:              getEnv("PORT", "8080"),
		CORSOrigin:        getEnv("CORS_ORIGIN", "http://localhost:5173"),
	}

	if !cfg.DatabaseConfigured() {
		log.Println("DATABASE_URL not set or placeholder; serving default content only")
	}
	if cfg.GeminiAPIKey == "" {
		log.Println("GEMINI_API_KEY not set; chat assistant will answer with its configuration notice")
	}

	return cfg
}

// DatabaseConfigured reports whether the remote store credentials are usable.
func (c *Config) DatabaseConfigured() bool {
	return c.DatabaseURL != "" && c.DatabaseURL != PlaceholderDatabaseURL
}

// Helper to read environment variables with a default fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

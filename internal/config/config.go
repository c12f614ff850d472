package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Rate limiting
	RateLimitMax int    // Requests per minute per IP
	RedisURL     string // Limiter storage; in-memory when empty

	// Keyword source
	KeywordSource   string        // "primary", "secondary", "combined" or "remote"
	CombinedSources []string      // Variants merged by the "combined" source, in order
	SourceTimeout   time.Duration // Upper bound for one row source call
	SourcesFile     string        // Optional YAML file overriding the stub templates
	RemoteSourceURL string        // Base URL of the keyword data service for "remote"

	// Ads API credentials, parsed once at startup. Nil when absent or malformed.
	AdsCredentials *AdsCredentials

	// Query defaults
	DefaultCountry  string
	DefaultLanguage string

	// Site Branding
	SiteTitle   string // env: SITE_TITLE
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
}

// AdsCredentials is a service-account style credential blob for an ads API.
type AdsCredentials struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
	ClientID    string `json:"client_id"`
	PrivateKey  string `json:"private_key"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:         getEnv("ENV", "development"),
		ServerAddr:  getEnv("SERVER_ADDR", ":3000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:3000"),
		CORSOrigins: getEnv("CORS_ORIGINS", ""),

		RateLimitMax: getEnvInt("RATE_LIMIT_MAX", 100),
		RedisURL:     getEnv("REDIS_URL", ""),

		KeywordSource:   getEnv("KEYWORD_SOURCE", "primary"),
		CombinedSources: splitList(getEnv("COMBINED_SOURCES", "primary,secondary")),
		SourceTimeout:   getEnvDuration("SOURCE_TIMEOUT", 10*time.Second),
		SourcesFile:     getEnv("SOURCES_FILE", "sources.yaml"),
		RemoteSourceURL: getEnv("REMOTE_SOURCE_URL", ""),

		AdsCredentials: ParseAdsCredentials(getEnv("GOOGLE_ADS_KEY_JSON", "")),

		DefaultCountry:  getEnv("DEFAULT_COUNTRY", "KR"),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "ko"),

		SiteTitle:   getEnv("SITE_TITLE", "Keyscout"),
		SiteTagline: getEnv("SITE_TAGLINE", "Find the keywords worth bidding on"),
		SiteFooter:  getEnv("SITE_FOOTER", "Keyscout - keyword scoring for search ads"),
	}
}

// ParseAdsCredentials decodes a credential JSON blob. Malformed input is
// logged and treated as absent.
func ParseAdsCredentials(raw string) *AdsCredentials {
	if raw == "" {
		return nil
	}
	var creds AdsCredentials
	if err := json.Unmarshal([]byte(raw), &creds); err != nil {
		slog.Warn("failed to parse GOOGLE_ADS_KEY_JSON, continuing without ads credentials", "error", err)
		return nil
	}
	return &creds
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return d
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// HasAdsCredentials reports whether ads API credentials were loaded.
func (c *Config) HasAdsCredentials() bool {
	return c.AdsCredentials != nil
}

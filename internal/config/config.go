package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port          int
	CORSOrigins   []string
	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPass      string
	ReceiverEmail string
	VPICBaseURL   string
	GeoBaseURL    string
}

// Load reads configuration from environment variables with sensible defaults.
// SMTP credentials are optional: without them the contact relay reports
// itself unconfigured instead of refusing to start.
func Load() (*Config, error) {
	port, _ := strconv.Atoi(getEnv("PORT", "3001"))

	origins := strings.Split(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return &Config{
		Port:          port,
		CORSOrigins:   origins,
		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUser:      getEnv("SMTP_USER", ""),
		SMTPPass:      getEnv("SMTP_PASS", ""),
		ReceiverEmail: getEnv("RECEIVER_EMAIL", ""),
		VPICBaseURL:   getEnv("VPIC_BASE_URL", ""),
		GeoBaseURL:    getEnv("GEO_BASE_URL", ""),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

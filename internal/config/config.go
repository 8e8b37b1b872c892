package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all runtime settings for the gateway and the stub backend.
// Values come from environment variables (loaded from .env in main) with
// sensible local-dev defaults.
type Config struct {
	// APIBaseURL is the root of the remote careers API.
	APIBaseURL string
	// APITimeout bounds every outgoing API request.
	APITimeout time.Duration

	// Port the web gateway listens on.
	Port string

	// SessionFile is where the file-backed session store persists the
	// current login between runs (CLI / single-user mode).
	SessionFile string

	// DatabaseDSN and UploadDir are only used by the stub backend.
	DatabaseDSN string
	UploadDir   string
	// StubPort is the port the stub backend listens on.
	StubPort string
}

func Load() *Config {
	return &Config{
		APIBaseURL:  getenv("API_BASE_URL", "http://localhost:5000"),
		APITimeout:  time.Duration(getenvInt("API_TIMEOUT_SECONDS", 30)) * time.Second,
		Port:        getenv("PORT", "8080"),
		SessionFile: getenv("SESSION_FILE", ".careers-session.json"),
		DatabaseDSN: getenv("DATABASE_DSN", "host=localhost user=postgres password=password dbname=careers port=5432 sslmode=disable"),
		UploadDir:   getenv("UPLOAD_DIR", "./uploads"),
		StubPort:    getenv("STUB_PORT", "5000"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

package config

import (
	"os"
)

// Config holds the application configuration.
type Config struct {
	// Port is the HTTP listen port.
	Port string

	// Version is the service version reported by the health endpoint.
	Version string

	// AuditLogPath is the file the audit stream is appended to,
	// in addition to stdout.
	AuditLogPath string
}

// Default values used when the corresponding environment variable is unset.
const (
	defaultPort         = "5000"
	defaultVersion      = "1.0.0"
	defaultAuditLogPath = "audit.log"

	envPort         = "PORT"
	envVersion      = "APP_VERSION"
	envAuditLogPath = "AUDIT_LOG"
)

// Load reads the application configuration from environment variables,
// falling back to defaults for anything unset.
func Load() *Config {
	return &Config{
		Port:         getenvDefault(envPort, defaultPort),
		Version:      getenvDefault(envVersion, defaultVersion),
		AuditLogPath: getenvDefault(envAuditLogPath, defaultAuditLogPath),
	}
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

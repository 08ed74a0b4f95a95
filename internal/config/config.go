package config

import "os"

// Config holds all environment-backed settings for the backend.
// It is read once at startup and passed to the services that need it.
type Config struct {
	DriveAPIKey       string
	DriveFolderID     string
	NotificationEmail string
	SenderEmail       string
	SendGridAPIKey    string
}

// Load reads configuration from the process environment
func Load() Config {
	return Config{
		DriveAPIKey:       os.Getenv("DRIVE_API_KEY"),
		DriveFolderID:     os.Getenv("DRIVE_FOLDER_ID"),
		NotificationEmail: os.Getenv("NOTIFICATION_EMAIL"),
		SenderEmail:       getEnvOrDefault("SENDER_EMAIL", "noreply@portfolio.com"),
		SendGridAPIKey:    os.Getenv("SENDGRID_API_KEY"),
	}
}

// DriveConfigured reports whether the remote file index can be built.
// When false the site runs in local mode with bundled assets only.
func (c Config) DriveConfigured() bool {
	return c.DriveAPIKey != "" && c.DriveFolderID != ""
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

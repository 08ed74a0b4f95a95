package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DRIVE_API_KEY", "")
	t.Setenv("DRIVE_FOLDER_ID", "")
	t.Setenv("SENDER_EMAIL", "")

	cfg := Load()

	if cfg.SenderEmail != "noreply@portfolio.com" {
		t.Errorf("Expected default sender, got %q", cfg.SenderEmail)
	}
	if cfg.DriveConfigured() {
		t.Error("Expected DriveConfigured to be false without key and folder")
	}
}

func TestLoad_DriveConfigured(t *testing.T) {
	t.Setenv("DRIVE_API_KEY", "key")
	t.Setenv("DRIVE_FOLDER_ID", "folder")

	cfg := Load()

	if !cfg.DriveConfigured() {
		t.Error("Expected DriveConfigured to be true")
	}
	if cfg.DriveAPIKey != "key" || cfg.DriveFolderID != "folder" {
		t.Errorf("Unexpected config: %+v", cfg)
	}
}

func TestDriveConfigured_RequiresBoth(t *testing.T) {
	t.Setenv("DRIVE_API_KEY", "key")
	t.Setenv("DRIVE_FOLDER_ID", "")

	if Load().DriveConfigured() {
		t.Error("Expected DriveConfigured to be false with only an API key")
	}
}

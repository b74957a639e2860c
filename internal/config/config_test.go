package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig with missing file should fall back to defaults: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("default port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Listing.UpcomingPreview != 3 {
		t.Errorf("default upcoming preview = %d, want 3", cfg.Listing.UpcomingPreview)
	}
	if cfg.Club.WhatsAppNumber == "" {
		t.Error("default whatsapp number missing")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("server:\n  port: \"9090\"\nlogging:\n  level: \"debug\"\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("port from file = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level from file = %q, want debug", cfg.Logging.Level)
	}
	// Untouched sections keep their defaults
	if cfg.Listing.DefaultPageSize != 20 {
		t.Errorf("default page size = %d, want 20", cfg.Listing.DefaultPageSize)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("LISTING_UPCOMING_PREVIEW", "5")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != "7070" {
		t.Errorf("port from env = %q, want 7070", cfg.Server.Port)
	}
	if cfg.Listing.UpcomingPreview != 5 {
		t.Errorf("upcoming preview from env = %d, want 5", cfg.Listing.UpcomingPreview)
	}
}

func TestLoadConfigRejectsInvalidPageSizes(t *testing.T) {
	t.Setenv("LISTING_DEFAULT_PAGE_SIZE", "500")
	t.Setenv("LISTING_MAX_PAGE_SIZE", "100")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("default page size above max should fail validation")
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Setup
	tempDir, err := os.MkdirTemp("", "clipdeck-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	// Save original functions and restore them after the test
	origGetConfigPaths := getConfigPaths
	origGenerateDeviceID := generateDeviceID
	defer func() {
		getConfigPaths = origGetConfigPaths
		generateDeviceID = origGenerateDeviceID
	}()

	// Set up mocks
	getConfigPaths = func() (*ConfigPaths, error) {
		return &ConfigPaths{
			BaseDir:    tempDir,
			ConfigFile: filepath.Join(tempDir, "config.yaml"),
			DataDir:    filepath.Join(tempDir, "data"),
			DBFile:     filepath.Join(tempDir, "data", "clipdeck.db"),
		}, nil
	}
	generateDeviceID = func() string {
		return "mock-device-id"
	}

	// Test loading default config when file doesn't exist
	configPath := filepath.Join(tempDir, "config.yaml")
	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.DeviceID != "mock-device-id" {
		t.Errorf("Expected DeviceID mock-device-id, got %s", cfg.DeviceID)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Expected Log.Level info, got %s", cfg.Log.Level)
	}
	if cfg.CopyExpiry != 3 {
		t.Errorf("Expected CopyExpiry 3, got %d", cfg.CopyExpiry)
	}

	// The default config should have been written out
	if _, err := os.Stat(configPath); err != nil {
		t.Errorf("Expected config file to be created: %v", err)
	}

	// Test loading the saved config back
	cfg2, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() of saved config failed: %v", err)
	}
	if cfg2.DeviceID != cfg.DeviceID {
		t.Errorf("Expected DeviceID %s, got %s", cfg.DeviceID, cfg2.DeviceID)
	}
	if cfg2.Storage.DBPath != cfg.Storage.DBPath {
		t.Errorf("Expected DBPath %s, got %s", cfg.Storage.DBPath, cfg2.Storage.DBPath)
	}
}

func TestOverrideFromEnv(t *testing.T) {
	t.Setenv("CLIPDECK_DB_PATH", "/tmp/override.db")
	t.Setenv("CLIPDECK_LOG_LEVEL", "debug")
	t.Setenv("CLIPDECK_COPY_EXPIRY", "7")

	cfg := &Config{}
	overrideFromEnv(cfg)

	if cfg.Storage.DBPath != "/tmp/override.db" {
		t.Errorf("Expected DBPath /tmp/override.db, got %s", cfg.Storage.DBPath)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Expected Log.Level debug, got %s", cfg.Log.Level)
	}
	if cfg.CopyExpiry != 7 {
		t.Errorf("Expected CopyExpiry 7, got %d", cfg.CopyExpiry)
	}
}

func TestCopyExpiryDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds int64
		want    time.Duration
	}{
		{"default when zero", 0, 3 * time.Second},
		{"default when negative", -1, 3 * time.Second},
		{"configured value", 10, 10 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{CopyExpiry: tt.seconds}
			if got := cfg.CopyExpiryDuration(); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

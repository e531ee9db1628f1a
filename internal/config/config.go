package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ConfigPaths holds all relevant paths for the application
type ConfigPaths struct {
	BaseDir    string // Base directory for all config files
	ConfigFile string // Path to the config file
	DataDir    string // Directory for application data
	DBFile     string // Path to database file
}

// Config holds all application configuration
type Config struct {
	// General settings
	DeviceID string `json:"device_id" yaml:"device_id"`

	// System paths configuration
	SystemPaths ConfigPaths `json:"system_paths" yaml:"system_paths"`

	// Logging configuration
	Log LogConfig `json:"log" yaml:"log"`

	// Storage configuration
	Storage StorageConfig `json:"storage" yaml:"storage"`

	// Copy-state expiry window, in seconds
	CopyExpiry int64 `json:"copy_expiry" yaml:"copy_expiry"`
}

// LogConfig holds logging-related configuration
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"` // "json" or "console"
}

// StorageConfig holds storage-related configuration
type StorageConfig struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

// Function variables so tests can substitute deterministic behavior.
var (
	getConfigPaths   = GetConfigPaths
	generateDeviceID = func() string { return uuid.New().String() }
)

// GetConfigPaths returns the platform-specific configuration paths
func GetConfigPaths() (*ConfigPaths, error) {
	// First check environment variable for base directory
	baseDir := os.Getenv("CLIPDECK_CONFIG_DIR")
	if baseDir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}

		switch runtime.GOOS {
		case "windows":
			baseDir = filepath.Join(configDir, "Clipdeck")
		case "darwin":
			baseDir = filepath.Join(configDir, "com.clipdeck.clipdeck")
		default: // Linux and others
			baseDir = filepath.Join(configDir, "clipdeck")
		}
	}

	dataDir := os.Getenv("CLIPDECK_DATA_DIR")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		switch runtime.GOOS {
		case "windows":
			appData, err := os.UserConfigDir()
			if err == nil {
				dataDir = filepath.Join(appData, "Clipdeck", "Data")
			} else {
				dataDir = filepath.Join(homeDir, "AppData", "Local", "Clipdeck")
			}
		case "darwin":
			dataDir = filepath.Join(homeDir, "Library", "Application Support", "Clipdeck")
		default: // Linux and others
			if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
				dataDir = filepath.Join(xdgDataHome, "clipdeck")
			} else {
				dataDir = filepath.Join(homeDir, ".clipdeck")
			}
		}
	}

	paths := &ConfigPaths{
		BaseDir:    baseDir,
		ConfigFile: filepath.Join(baseDir, "config.yaml"),
		DataDir:    dataDir,
		DBFile:     filepath.Join(dataDir, "clipdeck.db"),
	}

	for _, dir := range []string{paths.BaseDir, paths.DataDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	return paths, nil
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	paths, _ := getConfigPaths() // Ignore error, will use fallback paths
	if paths == nil {
		paths = &ConfigPaths{}
	}

	return &Config{
		DeviceID:    generateDeviceID(),
		SystemPaths: *paths,
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Storage: StorageConfig{
			DBPath: paths.DBFile,
		},
		CopyExpiry: 3,
	}
}

// Load loads the configuration from the specified file or creates default if not exists
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		paths, err := getConfigPaths()
		if err != nil {
			return nil, err
		}
		configPath = paths.ConfigFile
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Create default config if it doesn't exist
			cfg := DefaultConfig()
			if err := cfg.Save(configPath); err != nil {
				return nil, fmt.Errorf("failed to create default config: %w", err)
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	overrideFromEnv(&cfg)

	return &cfg, nil
}

// Save saves the configuration to the specified file
func (c *Config) Save(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// CopyExpiryDuration returns the copy-state expiry window as a duration.
func (c *Config) CopyExpiryDuration() time.Duration {
	if c.CopyExpiry <= 0 {
		return 3 * time.Second
	}
	return time.Duration(c.CopyExpiry) * time.Second
}

// overrideFromEnv overrides configuration values from environment variables
func overrideFromEnv(config *Config) {
	if val := os.Getenv("CLIPDECK_DEVICE_ID"); val != "" {
		config.DeviceID = val
	}
	if val := os.Getenv("CLIPDECK_DB_PATH"); val != "" {
		config.Storage.DBPath = val
	}
	if val := os.Getenv("CLIPDECK_LOG_LEVEL"); val != "" {
		config.Log.Level = val
	}
	if val := os.Getenv("CLIPDECK_COPY_EXPIRY"); val != "" {
		if secs, err := strconv.ParseInt(val, 10, 64); err == nil {
			config.CopyExpiry = secs
		}
	}
}

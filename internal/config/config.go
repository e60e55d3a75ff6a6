// Package config provides configuration management for e-Laporan.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultSheetURL is the built-in Google Apps Script deployment the app
// submits to when the user has not configured their own.
const DefaultSheetURL = "https://script.google.com/macros/s/AKfycbzbPJUB_XCpCKjXyYYOAHYr2NBDuq7e5HeapeQAjQoS9sTZ2KrKw0LTkU9OFMcQf61pRg/exec"

// DefaultGeminiModel is the generation model used when none is configured.
const DefaultGeminiModel = "gemini-2.5-flash"

// Config holds all configuration for the e-Laporan application.
type Config struct {
	SheetURL      string             `mapstructure:"sheet_url"`
	Gemini        GeminiConfig       `mapstructure:"gemini"`
	Notifications NotificationConfig `mapstructure:"notifications"`
}

// GeminiConfig holds the AI generation settings.
type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// NotificationConfig holds desktop notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		SheetURL: DefaultSheetURL,
		Gemini: GeminiConfig{
			Model: DefaultGeminiModel,
		},
		Notifications: NotificationConfig{
			Enabled: true,
		},
	}
}

// Load loads the configuration from the config file, creating it with
// defaults on first run. The GEMINI_API_KEY environment variable overrides
// an empty configured key.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	setDefaults()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Gemini.APIKey == "" {
		cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = DefaultGeminiModel
	}

	return &cfg, nil
}

// Save writes the configuration back to the config file. Saving happens
// immediately on every explicit settings change.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	viper.Set("sheet_url", cfg.SheetURL)
	viper.Set("gemini.api_key", cfg.Gemini.APIKey)
	viper.Set("gemini.model", cfg.Gemini.Model)
	viper.Set("notifications.enabled", cfg.Notifications.Enabled)

	return viper.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".elaporan", "config.toml"), nil
}

// setDefaults sets default values for viper.
func setDefaults() {
	viper.SetDefault("sheet_url", DefaultSheetURL)
	viper.SetDefault("gemini.api_key", "")
	viper.SetDefault("gemini.model", DefaultGeminiModel)
	viper.SetDefault("notifications.enabled", true)
}

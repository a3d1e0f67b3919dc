package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/piwi3910/StudioFolio/internal/model"
)

// EnvPrefix prefixes every environment override, e.g. STUDIOFOLIO_IMAGE_ROOT.
const EnvPrefix = "STUDIOFOLIO_"

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.studiofolio/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".studiofolio")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// DefaultInquiryDBPath returns where inquiries are stored when the config
// leaves it unset.
func DefaultInquiryDBPath() string {
	return filepath.Join(DefaultConfigDir(), "inquiries.db")
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
// Fields missing from the file keep their defaults.
func LoadAppConfig(path string) (model.AppConfig, error) {
	config := model.DefaultAppConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return model.AppConfig{}, err
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, err
	}
	// Ensure RecentProjects is never nil
	if config.RecentProjects == nil {
		config.RecentProjects = []string{}
	}
	return config, nil
}

// ApplyEnv overlays STUDIOFOLIO_* variables onto config. A nil environ
// reads the process environment.
func ApplyEnv(config *model.AppConfig, environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(config, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEffectiveConfig loads the config file at path and applies the
// process environment on top. The on-disk file is not changed.
func LoadEffectiveConfig(path string) (model.AppConfig, error) {
	config, err := LoadAppConfig(path)
	if err != nil {
		return model.AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	if err := ApplyEnv(&config, nil); err != nil {
		return model.AppConfig{}, err
	}
	if config.InquiryDB == "" {
		config.InquiryDB = DefaultInquiryDBPath()
	}
	return config, nil
}

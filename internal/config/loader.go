package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/termsearch"
	projectConfigDir = ".termsearch"
	configFileName   = "config.yaml"
)

// LoadConfig loads the termsearch configuration by layering default, user, and project settings.
func LoadConfig() (TermsearchConfig, error) {
	// 1. Start with the default configuration
	config := GetDefaultConfig()

	// 2. Determine user-specific configuration path
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// user config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else {
		if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
			userConfig, err := loadConfigFromFile(userConfigPath)
			if err != nil {
				return TermsearchConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
			}
			config = mergeConfigs(config, userConfig)
		}
	}

	// 3. Determine project-specific configuration path
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else {
		if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
			projectConfig, err := loadConfigFromFile(projectConfigPath)
			if err != nil {
				return TermsearchConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
			}
			config = mergeConfigs(config, projectConfig)
		}
	}

	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a TermsearchConfig from a YAML file.
func loadConfigFromFile(filePath string) (TermsearchConfig, error) {
	var config TermsearchConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return TermsearchConfig{}, err
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return TermsearchConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
// Zero values in overlay leave base untouched, so safe search can be
// switched on by a layer but not switched back off.
func mergeConfigs(base, overlay TermsearchConfig) TermsearchConfig {
	merged := base

	if overlay.Search.APIKey != "" {
		merged.Search.APIKey = overlay.Search.APIKey
	}
	if overlay.Search.CX != "" {
		merged.Search.CX = overlay.Search.CX
	}
	if overlay.Search.Safe {
		merged.Search.Safe = true
	}
	if overlay.Search.Endpoint != "" {
		merged.Search.Endpoint = overlay.Search.Endpoint
	}
	if overlay.Search.Timeout != 0 {
		merged.Search.Timeout = overlay.Search.Timeout
	}

	if overlay.UI.PollInterval != 0 {
		merged.UI.PollInterval = overlay.UI.PollInterval
	}
	if overlay.UI.SeparatorRows != nil {
		rows := *overlay.UI.SeparatorRows
		merged.UI.SeparatorRows = &rows
	}

	if overlay.Logging.Level != "" {
		merged.Logging.Level = overlay.Logging.Level
	}
	if overlay.Logging.File != "" {
		merged.Logging.File = overlay.Logging.File
	}

	if overlay.Update.Repository != "" {
		merged.Update.Repository = overlay.Update.Repository
	}

	return merged
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

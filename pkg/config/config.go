// Package config provides configuration management for duokai.
// It handles loading and merging configuration from the embedded
// defaults and the user config file.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/duokai-tools/duokai/internal/utils"
)

//go:embed default.toml
var defaultConfigData string

// Config holds all duokai settings. Command sections stay untyped here;
// each command decodes its own section into its local config type.
type Config struct {
	Log      LogConfig      `toml:"log"`
	Shortcut map[string]any `toml:"shortcut"`
	Tile     map[string]any `toml:"tile"`
}

// LogConfig controls logging output.
type LogConfig struct {
	Level string `toml:"level"`
}

var globalConfig *Config

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "duokai", "config.toml")
}

// Load loads config, merging the user config file over the embedded defaults.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	defaultCfg, err := loadDefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	userConfigPath := GetUserConfigPath()
	if userConfigPath != "" && utils.FileExists(userConfigPath) {
		userCfg, err := loadConfigFromFile(userConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load user config: %v\n", err)
			fmt.Fprintf(os.Stderr, "Using default configuration\n")
			globalConfig = defaultCfg
			return globalConfig, nil
		}
		globalConfig = mergeConfigs(defaultCfg, userCfg)
		return globalConfig, nil
	}

	globalConfig = defaultCfg
	return globalConfig, nil
}

// Get returns the global config, loading it on first use.
func Get() *Config {
	if globalConfig == nil {
		globalConfig, _ = Load()
	}
	return globalConfig
}

func loadDefaultConfig() (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(defaultConfigData, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadConfigFromFile(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// mergeConfigs overlays user settings onto the defaults. Command sections
// merge key by key so a user file only has to name the keys it changes.
func mergeConfigs(defaultCfg, userCfg *Config) *Config {
	merged := *defaultCfg

	if userCfg.Log.Level != "" {
		merged.Log.Level = userCfg.Log.Level
	}

	merged.Shortcut = mergeSection(defaultCfg.Shortcut, userCfg.Shortcut)
	merged.Tile = mergeSection(defaultCfg.Tile, userCfg.Tile)

	return &merged
}

func mergeSection(defaults, user map[string]any) map[string]any {
	merged := make(map[string]any, len(defaults)+len(user))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range user {
		merged[k] = v
	}
	return merged
}

// GetShortcutConfig returns the raw shortcut section.
func (c *Config) GetShortcutConfig() map[string]any {
	return c.Shortcut
}

// GetTileConfig returns the raw tile section.
func (c *Config) GetTileConfig() map[string]any {
	return c.Tile
}

// InitUserConfig copies the default config into the user config directory.
func InitUserConfig() error {
	userConfigPath := GetUserConfigPath()
	if userConfigPath == "" {
		return fmt.Errorf("cannot determine home directory")
	}

	if utils.FileExists(userConfigPath) {
		return fmt.Errorf("config already exists: %s", userConfigPath)
	}

	if err := utils.EnsureDir(filepath.Dir(userConfigPath)); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(userConfigPath, []byte(defaultConfigData), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetDefaultConfigContent returns the embedded default config text.
func GetDefaultConfigContent() string {
	return defaultConfigData
}

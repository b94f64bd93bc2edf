// Package config loads and validates converter configuration.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	verrors "git.home.luguber.info/inful/vaultpress/internal/errors"
)

// Config represents the application configuration
type Config struct {
	Vault       string            `yaml:"vault,omitempty"`
	Hugo        HugoConfig        `yaml:"hugo"`
	Attachments AttachmentsConfig `yaml:"attachments"`
	Draft       bool              `yaml:"draft"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// HugoConfig locates the Hugo site the posts are written into
type HugoConfig struct {
	Root    string `yaml:"root,omitempty"`    // site root, CLI flag takes precedence
	Section string `yaml:"section,omitempty"` // content section, defaults to "posts"
}

// AttachmentsConfig controls the image lookup order
type AttachmentsConfig struct {
	Folders []string `yaml:"folders,omitempty"` // attachment directory names, in priority order
}

// LoggingConfig selects the log level ("debug", "info", "warn", "error")
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"`
}

// Load loads configuration from the specified file. A missing file is not an
// error: the converter runs fine on defaults plus CLI arguments.
//
// A .env file in the working directory is loaded first and `${VAR}`
// references inside the YAML are expanded from the environment.
func Load(configPath string) (*Config, error) {
	// Missing .env is the normal case, ignore it.
	_ = godotenv.Load()

	cfg := &Config{}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg.ApplyDefaults()
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, verrors.ConfigReadError(configPath, err)
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, verrors.ConfigParseError(configPath, err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

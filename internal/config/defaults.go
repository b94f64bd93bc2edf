package config

import (
	"git.home.luguber.info/inful/vaultpress/internal/images"
)

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills in unset fields. CLI-sourced fields (vault, hugo root)
// stay empty here; the command layer resolves them.
func (c *Config) ApplyDefaults() {
	if c.Hugo.Section == "" {
		c.Hugo.Section = "posts"
	}
	if len(c.Attachments.Folders) == 0 {
		c.Attachments.Folders = append([]string(nil), images.DefaultFolders...)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

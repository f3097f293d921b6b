// Package config loads and validates the host's YAML configuration.
package config

import "fmt"

// ConfigError represents a configuration error.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s", e.Message)
}

// Defaults returns a Config with sensible defaults applied.
func Defaults() Config {
	return Config{
		Logging: LoggingConfig{
			Level: "info",
			Style: "pretty",
		},
		Plugins: PluginsConfig{
			RawExtensions: []string{"raw"},
			AuditLevel:    "debug",
		},
		Run: RunConfig{
			Steps:    4,
			TimeStep: 1.0,
		},
	}
}

// applyDefaults fills gaps a partial config file left empty.
func applyDefaults(cfg *Config) {
	def := Defaults()
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}
	if cfg.Logging.Style == "" {
		cfg.Logging.Style = def.Logging.Style
	}
	if len(cfg.Plugins.RawExtensions) == 0 {
		cfg.Plugins.RawExtensions = def.Plugins.RawExtensions
	}
	if cfg.Plugins.AuditLevel == "" {
		cfg.Plugins.AuditLevel = def.Plugins.AuditLevel
	}
	if cfg.Run.Steps == 0 {
		cfg.Run.Steps = def.Run.Steps
	}
	if cfg.Run.TimeStep == 0 {
		cfg.Run.TimeStep = def.Run.TimeStep
	}
}

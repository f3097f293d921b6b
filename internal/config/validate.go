package config

import (
	"fmt"
	"slices"
)

// ValidationIssue describes a problem with a config value.
type ValidationIssue struct {
	Path    string
	Message string
}

func (v ValidationIssue) String() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

var validLogLevels = []string{"silent", "fatal", "error", "warn", "info", "debug", "trace"}

// Validate checks a Config for issues. Returns nil if valid.
func Validate(cfg *Config) []ValidationIssue {
	var issues []ValidationIssue

	if cfg.Logging.Level != "" && !slices.Contains(validLogLevels, cfg.Logging.Level) {
		issues = append(issues, ValidationIssue{
			Path:    "logging.level",
			Message: fmt.Sprintf("must be one of %v, got %q", validLogLevels, cfg.Logging.Level),
		})
	}

	validStyles := []string{"pretty", "json"}
	if cfg.Logging.Style != "" && !slices.Contains(validStyles, cfg.Logging.Style) {
		issues = append(issues, ValidationIssue{
			Path:    "logging.style",
			Message: fmt.Sprintf("must be one of %v, got %q", validStyles, cfg.Logging.Style),
		})
	}

	if cfg.Plugins.AuditLevel != "" && !slices.Contains(validLogLevels, cfg.Plugins.AuditLevel) {
		issues = append(issues, ValidationIssue{
			Path:    "plugins.auditLevel",
			Message: fmt.Sprintf("must be one of %v, got %q", validLogLevels, cfg.Plugins.AuditLevel),
		})
	}

	for i, ext := range cfg.Plugins.RawExtensions {
		if ext == "" {
			issues = append(issues, ValidationIssue{
				Path:    fmt.Sprintf("plugins.rawExtensions[%d]", i),
				Message: "extension must not be empty",
			})
		}
	}

	if cfg.Run.Steps < 0 {
		issues = append(issues, ValidationIssue{
			Path:    "run.steps",
			Message: fmt.Sprintf("must be non-negative, got %d", cfg.Run.Steps),
		})
	}
	if cfg.Run.TimeStep < 0 {
		issues = append(issues, ValidationIssue{
			Path:    "run.timeStep",
			Message: fmt.Sprintf("must be non-negative, got %g", cfg.Run.TimeStep),
		})
	}

	return issues
}

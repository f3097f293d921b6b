package config

// Config is the root configuration for the hookline host.
type Config struct {
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Plugins PluginsConfig `yaml:"plugins,omitempty"`
	Run     RunConfig     `yaml:"run,omitempty"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"` // trace..fatal, silent
	Style string `yaml:"style,omitempty"` // "pretty" | "json"
}

// PluginsConfig controls which built-in plugins are active and how they
// behave.
type PluginsConfig struct {
	// Disabled lists plugin names that must not be registered.
	Disabled []string `yaml:"disabled,omitempty"`

	// RawExtensions are the filename extensions (without dot) the raw
	// loader plugin claims.
	RawExtensions []string `yaml:"rawExtensions,omitempty"`

	// AuditLevel is the log level the audit plugin traces dispatches at.
	AuditLevel string `yaml:"auditLevel,omitempty"`
}

// RunConfig drives the pipeline when running the host.
type RunConfig struct {
	// Scripts are input files loaded at startup, in order.
	Scripts []string `yaml:"scripts,omitempty"`

	// Steps is how many time advances the pipeline performs.
	Steps int `yaml:"steps,omitempty"`

	// TimeStep is the network time increment per step, in seconds.
	TimeStep float64 `yaml:"timeStep,omitempty"`
}

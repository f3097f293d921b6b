package plugin

import "errors"

// Registration and configuration errors.
var (
	// ErrMissingName is returned when a plugin's configuration has no name.
	ErrMissingName = errors.New("plugin configuration has no name")

	// ErrMissingDescription is returned when a plugin's configuration has
	// no description.
	ErrMissingDescription = errors.New("plugin configuration has no description")

	// ErrAPIVersionMismatch is returned when a plugin was built against a
	// different plugin API version than the host's. The plugin is
	// excluded from all lifecycle and hook calls.
	ErrAPIVersionMismatch = errors.New("plugin API version mismatch")

	// ErrAlreadyRegistered is returned when a plugin is registered twice.
	ErrAlreadyRegistered = errors.New("plugin is already registered")

	// ErrRegistrationClosed is returned when registration is attempted
	// after startup initialization has begun.
	ErrRegistrationClosed = errors.New("plugin registration is closed")

	// ErrNotRegistered is returned when an operation needs a registered
	// plugin but the plugin has not been registered.
	ErrNotRegistered = errors.New("plugin is not registered")

	// ErrNoScriptLoader is returned when a plugin queues a script file
	// but the host has not installed a script loader.
	ErrNoScriptLoader = errors.New("no script loader installed")

	// ErrLoadAfterInit is returned when a plugin queues a script file
	// after InitPostScript, which is too late to load anything.
	ErrLoadAfterInit = errors.New("script load requested after post-script initialization")
)

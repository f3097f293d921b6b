package plugin

import (
	"fmt"

	"github.com/varkis/hookline/internal/version"
)

// VersionNumber is a plugin's own version. Versions are only meaningful
// for dynamically loaded plugins; built-ins normally leave it unset.
type VersionNumber struct {
	Major int
	Minor int
}

// Valid reports whether the version has been set to a non-negative value.
func (v VersionNumber) Valid() bool { return v.Major >= 0 && v.Minor >= 0 }

// String implements fmt.Stringer.
func (v VersionNumber) String() string {
	if !v.Valid() {
		return "unset"
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Configuration is a plugin's static self-description. Name and
// Description are mandatory; missing either is fatal to the plugin's
// activation at registration time.
type Configuration struct {
	Name        string
	Description string
	Version     VersionNumber

	apiVersion int
}

// NewConfiguration returns a Configuration stamped with the host's
// current plugin API version and an unset plugin version. A plugin built
// against a different host gets a different stamp and is rejected at
// registration; constructing Configuration directly skips the stamp and
// is likewise rejected.
func NewConfiguration() Configuration {
	return Configuration{
		Version:    VersionNumber{Major: -1, Minor: -1},
		apiVersion: version.APIVersion,
	}
}

// APIVersion returns the plugin API version the configuration was built
// against.
func (c Configuration) APIVersion() int { return c.apiVersion }

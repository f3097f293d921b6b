package version

import (
	"fmt"
	"runtime"
)

// Set via ldflags at build time:
//
//	go build -ldflags "-X github.com/varkis/hookline/internal/version.Version=1.0.0
//	  -X github.com/varkis/hookline/internal/version.Commit=abc123
//	  -X github.com/varkis/hookline/internal/version.Date=2026-01-01"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// APIVersion is the host's current plugin API version. A plugin whose
// configuration reports a different value is rejected at registration
// time. Bump on any incompatible change to the hook or plugin surface.
const APIVersion = 3

// Info returns a formatted version string.
func Info() string {
	return fmt.Sprintf("hookline %s (plugin API v%d, commit: %s, built: %s, %s/%s)",
		Version, APIVersion, short(Commit), Date, runtime.GOOS, runtime.GOARCH)
}

func short(s string) string {
	if len(s) > 7 {
		return s[:7]
	}
	return s
}

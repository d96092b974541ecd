package config

import "os"

// Version is the build version, overridable via ldflags.
var Version = "0.2.0"

// GetVersion returns the version from the environment (set by CI) or the
// compiled-in default.
func GetVersion() string {
	if envVersion := os.Getenv("APP_VERSION"); envVersion != "" {
		return envVersion
	}
	return Version
}

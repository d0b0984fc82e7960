package util

import (
	"os"
)

// UserHome returns the directory under which the configuration directory is
// created. It prefers os.UserHomeDir and falls back to the $HOME and
// USERPROFILE environment variables, then to the working directory, so the
// daemon can still start in containers where no home is set.
func UserHome() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		if home := os.Getenv("HOME"); home != "" {
			log.WithError(err).Warn("os.UserHomeDir failed, falling back to $HOME")
			return home
		}
		if home := os.Getenv("USERPROFILE"); home != "" {
			log.WithError(err).Warn("os.UserHomeDir failed, falling back to USERPROFILE")
			return home
		}
		// Working directory beats crashing during startup; the config
		// loader only writes a small YAML file there.
		if wd, wdErr := os.Getwd(); wdErr == nil {
			log.WithError(err).Warn("os.UserHomeDir and $HOME unavailable; falling back to working directory")
			return wd
		}
		Panicf("unable to determine home directory, set $HOME: %s", err)
		return ""
	}

	return homeDir
}

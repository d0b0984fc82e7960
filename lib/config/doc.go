// Package config provides configuration management for the go-monotime
// monitor daemon.
//
// Settings come from, in order of precedence: an explicit --config file,
// $HOME/.go-monotime/config.yaml, and built-in defaults. When no config
// file exists the defaults are written out to the standard location so
// users have something concrete to edit.
//
// Call InitConfig once at startup, then build snapshots with
// NewMonitorConfigFromViper. Snapshots are plain structs reading fresh
// viper values, so a SIGHUP-triggered re-read produces a new snapshot
// without mutating whatever the running monitor already holds.
package config

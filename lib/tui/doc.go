// Package tui renders a live terminal dashboard for the monotonic clock.
//
// The dashboard samples the resolved clock at a fixed interval and shows
// the current reading alongside the drift accumulated against the wall
// clock since the dashboard started. It is the implementation behind the
// watch subcommand.
package tui

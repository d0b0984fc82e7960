// Package drift measures how far the wall clock diverges from the resolved
// monotonic clock.
//
// A Tracker captures a paired baseline, one wall reading and one monotonic
// reading taken together, and on every Measure compares how much each clock
// has advanced since then. On a healthy, undisturbed system the two agree
// to within scheduling noise. A step adjustment (ntpdate, manual date set,
// VM resume) shows up as a sudden jump in the difference; NTP slewing shows
// up as a slow crawl.
//
// Drift here is diagnostic output, not a correction input: nothing in this
// package adjusts any clock. The optional Probe corroborates the local
// observation against an NTP server, which helps tell "our wall clock
// moved" apart from "our monotonic clock is broken".
package drift

// Package sample produces timestamped raw platform observations on a fixed
// cadence, either by polling OS-exposed stats directly (Linux) or by parsing
// a privileged subprocess's output stream (macOS powermetrics).
package sample

import "time"

// Sample pairs a wall-clock timestamp with the raw platform context read at
// that instant. Collectors turn a Sample's Raw field into standardized
// metric values.
type Sample struct {
	Timestamp float64 // UNIX seconds, fractional
	Raw       PlatformContext
}

// PlatformContext is either a PollingContext (Linux: collectors read live OS
// files/libs directly and the context is just a marker) or a
// *PowerMetricsDoc (macOS: a parsed powermetrics plist document).
type PlatformContext interface {
	isPlatformContext()
}

// PollingContext marks a Linux polling tick. It carries no payload because
// Linux collectors read /proc, gopsutil, etc. directly rather than through a
// shared parsed document.
type PollingContext struct {
	Timestamp float64
}

func (PollingContext) isPlatformContext() {}

// NowSeconds returns the current time as fractional UNIX seconds, giving
// CSV output the microsecond-resolution timestamps it needs.
func NowSeconds() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}

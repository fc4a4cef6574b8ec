// Package present turns stored raw values into display-ready rows: a
// title, a formatted label, and a scale for the horizon renderer to map
// intensity against. Presenters are pure data transforms — they never touch
// the store or the terminal.
package present

import (
	"fmt"
	"math"
)

// FormatPercent renders a percentage value to one decimal place.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// FormatWatts renders a wattage value to one decimal place.
func FormatWatts(v float64) string {
	return fmt.Sprintf("%.1fW", v)
}

// FormatBytesPerSec renders a byte rate using SI-ish buckets:
// [0,1e3)->B/s, [1e3,1e6)->KB/s, and so on up through PB/s.
func FormatBytesPerSec(v float64) string {
	unit, scaled := bytesBucket(v)
	if unit == "B" {
		return fmt.Sprintf("%.0fB/s", scaled)
	}
	return fmt.Sprintf("%.1f%s/s", scaled, unit)
}

// FormatBytes renders an absolute byte count (not a rate), used for
// memory and swap.
func FormatBytes(v float64) string {
	unit, scaled := bytesBucket(v)
	if unit == "B" {
		return fmt.Sprintf("%.0fB", scaled)
	}
	return fmt.Sprintf("%.1f%s", scaled, unit)
}

func bytesBucket(v float64) (string, float64) {
	units := []string{"B", "KB", "MB", "GB", "TB", "PB"}
	i := 0
	for v >= 1000 && i < len(units)-1 {
		v /= 1000
		i++
	}
	return units[i], v
}

// PowerOfTenCeiling returns the smallest power of 10 that is >= v, with a
// floor of 1. Used by rate-based scale policies to pick a chart ceiling.
func PowerOfTenCeiling(v float64) float64 {
	if v <= 1 {
		return 1
	}
	return math.Pow(10, math.Ceil(math.Log10(v)))
}

// MaxOf returns the maximum value in a slice, or 0 for an empty slice.
func MaxOf(values []float64) float64 {
	var m float64
	for _, v := range values {
		if v > m {
			m = v
		}
	}
	return m
}

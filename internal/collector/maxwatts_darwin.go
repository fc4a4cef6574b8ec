//go:build darwin

package collector

import (
	"os/exec"
	"strings"
)

// aneMaxWattsByModel is a conservative per-chip table for the ANE
// utilization approximation. Values follow cubestat/apple_reader.py's
// implicit 8W baseline for the single-die M-series parts and scale the
// "Ultra" duals accordingly.
var aneMaxWattsByModel = map[string]float64{
	"Apple M1":       8.0,
	"Apple M1 Pro":   8.0,
	"Apple M1 Max":   8.0,
	"Apple M1 Ultra": 16.0,
	"Apple M2":       8.0,
	"Apple M2 Pro":   8.0,
	"Apple M2 Max":   8.0,
	"Apple M2 Ultra": 16.0,
	"Apple M3":       8.0,
	"Apple M3 Pro":   8.0,
	"Apple M3 Max":   8.0,
	"Apple M4":       8.0,
	"Apple M4 Pro":   8.0,
	"Apple M4 Max":   8.0,
}

// defaultANEMaxWatts is used for unrecognized chip models.
const defaultANEMaxWatts = 8.0

// aneMaxWattsForModel looks up the max ANE power for a chip brand string.
// The bool return is false when the model is unknown and the conservative
// default was used, so callers can log once per process.
func aneMaxWattsForModel(model string) (float64, bool) {
	if w, ok := aneMaxWattsByModel[model]; ok {
		return w, true
	}
	return defaultANEMaxWatts, false
}

// detectChipModel shells out to sysctl for the CPU brand string, matching
// context-labs-mactop's "sysctl machdep.cpu" probe.
func detectChipModel() string {
	out, err := exec.Command("sysctl", "-n", "machdep.cpu.brand_string").Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(out))
}

//go:build darwin

package collector

import "go.uber.org/zap"

// ForPlatform returns the ordered collector list for macOS. See the linux
// variant of this function for why platform selection is a build tag
// rather than a runtime registry lookup.
func ForPlatform(intervalSeconds float64, log *zap.SugaredLogger) []Collector {
	rr := NewRateReader(intervalSeconds)
	return []Collector{
		CPU{},
		Memory{},
		Swap{},
		NewDisk(rr),
		NewNetwork(rr),
		GPU{},
		Power{},
		NewAccel(intervalSeconds, log),
	}
}

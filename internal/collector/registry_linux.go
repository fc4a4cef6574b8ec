//go:build linux

package collector

import "go.uber.org/zap"

// ForPlatform returns the ordered collector list for the platform this
// binary was built for, replacing the source's decorator-based registration
// with an explicit table resolved at compile time — GOOS never changes at
// runtime for a given binary, so a build-tagged file per platform is the
// direct Go equivalent of the source's "platform" key.
func ForPlatform(intervalSeconds float64, log *zap.SugaredLogger) []Collector {
	rr := NewRateReader(intervalSeconds)
	return []Collector{
		CPU{},
		Memory{},
		Swap{},
		NewDisk(rr),
		NewNetwork(rr),
		NewGPU(),
		Power{},
		Accel{},
	}
}

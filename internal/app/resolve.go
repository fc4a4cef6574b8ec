package app

import (
	"time"

	"github.com/kerlenton/system-eye/internal/metric"
)

// Resolved is Config after every string field has been parsed into its mode
// enum and every cross-flag rule has been checked, so Configuration errors
// fail fast, before any sampler or output worker starts.
type Resolved struct {
	RefreshMS  time.Duration
	BufferSize int

	View    metric.ViewMode
	CPU     metric.CPUMode
	GPU     metric.GPUMode
	Swap    metric.ToggleMode
	Network metric.ToggleMode
	Disk    metric.ToggleMode
	Power   metric.PowerMode
	Memory  metric.MemoryMode

	CSVEnabled bool

	HTTPHost       string
	HTTPPort       int
	PrometheusPort int
}

// TUI reports whether this run should draw the interactive chart, as
// opposed to running headless behind CSV/HTTP/Prometheus output.
func (r Resolved) TUI() bool {
	return !r.CSVEnabled && r.HTTPPort == 0 && r.PrometheusPort == 0
}

// Resolve validates c and converts it into a Resolved configuration, or
// returns a *ConfigError describing the first problem found.
func Resolve(c Config) (Resolved, error) {
	if c.RefreshMS <= 0 {
		return Resolved{}, newConfigError("refresh_ms must be greater than 0, got %d", c.RefreshMS)
	}
	if c.BufferSize <= 0 {
		return Resolved{}, newConfigError("buffer_size must be greater than 0, got %d", c.BufferSize)
	}
	outputsSet := 0
	if c.CSV {
		outputsSet++
	}
	if c.HTTPPort != 0 {
		outputsSet++
	}
	if c.PrometheusPort != 0 {
		outputsSet++
	}
	if outputsSet > 1 {
		return Resolved{}, newConfigError("csv, http_port and prometheus_port are mutually exclusive")
	}
	if c.HTTPPort != 0 && (c.HTTPPort < 1 || c.HTTPPort > 65535) {
		return Resolved{}, newConfigError("http_port out of range: %d", c.HTTPPort)
	}
	if c.PrometheusPort != 0 && (c.PrometheusPort < 1 || c.PrometheusPort > 65535) {
		return Resolved{}, newConfigError("prometheus_port out of range: %d", c.PrometheusPort)
	}

	view, ok := metric.ParseViewMode(c.View)
	if !ok {
		return Resolved{}, newConfigError("invalid view mode %q (want off, one or all)", c.View)
	}
	cpu, ok := metric.ParseCPUMode(c.CPU)
	if !ok {
		return Resolved{}, newConfigError("invalid cpu mode %q (want all, by_cluster or by_core)", c.CPU)
	}
	gpu, ok := metric.ParseGPUMode(c.GPU)
	if !ok {
		return Resolved{}, newConfigError("invalid gpu mode %q (want collapsed, load_only or load_and_vram)", c.GPU)
	}
	swap, ok := metric.ParseToggleMode(c.Swap)
	if !ok {
		return Resolved{}, newConfigError("invalid swap mode %q (want show or hide)", c.Swap)
	}
	network, ok := metric.ParseToggleMode(c.Network)
	if !ok {
		return Resolved{}, newConfigError("invalid network mode %q (want show or hide)", c.Network)
	}
	disk, ok := metric.ParseToggleMode(c.Disk)
	if !ok {
		return Resolved{}, newConfigError("invalid disk mode %q (want show or hide)", c.Disk)
	}
	power, ok := metric.ParsePowerMode(c.Power)
	if !ok {
		return Resolved{}, newConfigError("invalid power mode %q (want combined, all or off)", c.Power)
	}
	memory, ok := metric.ParseMemoryMode(c.Memory)
	if !ok {
		return Resolved{}, newConfigError("invalid memory mode %q (want percent or all)", c.Memory)
	}

	return Resolved{
		RefreshMS:      time.Duration(c.RefreshMS) * time.Millisecond,
		BufferSize:     c.BufferSize,
		View:           view,
		CPU:            cpu,
		GPU:            gpu,
		Swap:           swap,
		Network:        network,
		Disk:           disk,
		Power:          power,
		Memory:         memory,
		CSVEnabled:     c.CSV,
		HTTPHost:       c.HTTPHost,
		HTTPPort:       c.HTTPPort,
		PrometheusPort: c.PrometheusPort,
	}, nil
}

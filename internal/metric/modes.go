package metric

// Mode is implemented by every per-metric display-mode enum so the display
// registry can cycle them generically. Grounded on cubestat/common.py's
// EnumLoop.next/.prev.
type Mode interface {
	String() string
	Next() Mode
	Prev() Mode
}

// CPUMode controls how CPU rows are grouped: all cores flat, cluster totals
// only, or cluster totals with their cores nested underneath.
type CPUMode int

const (
	CPUAll CPUMode = iota
	CPUByCluster
	CPUByCore
)

var cpuModeNames = [...]string{"all", "by_cluster", "by_core"}

func (m CPUMode) String() string { return cpuModeNames[m] }
func (m CPUMode) Next() Mode     { return CPUMode((int(m) + 1) % len(cpuModeNames)) }
func (m CPUMode) Prev() Mode     { return CPUMode((int(m) - 1 + len(cpuModeNames)) % len(cpuModeNames)) }

// GPUMode controls how much GPU detail is shown.
type GPUMode int

const (
	GPUCollapsed GPUMode = iota
	GPULoadOnly
	GPULoadAndVRAM
)

var gpuModeNames = [...]string{"collapsed", "load_only", "load_and_vram"}

func (m GPUMode) String() string { return gpuModeNames[m] }
func (m GPUMode) Next() Mode     { return GPUMode((int(m) + 1) % len(gpuModeNames)) }
func (m GPUMode) Prev() Mode     { return GPUMode((int(m) - 1 + len(gpuModeNames)) % len(gpuModeNames)) }

// ViewMode controls ruler/legend density.
type ViewMode int

const (
	ViewOff ViewMode = iota
	ViewOne
	ViewAll
)

var viewModeNames = [...]string{"off", "one", "all"}

func (m ViewMode) String() string { return viewModeNames[m] }
func (m ViewMode) Next() Mode     { return ViewMode((int(m) + 1) % len(viewModeNames)) }
func (m ViewMode) Prev() Mode     { return ViewMode((int(m) - 1 + len(viewModeNames)) % len(viewModeNames)) }

// ToggleMode is the generic show/hide switch used by swap, network and disk.
type ToggleMode int

const (
	ToggleShow ToggleMode = iota
	ToggleHide
)

var toggleModeNames = [...]string{"show", "hide"}

func (m ToggleMode) String() string { return toggleModeNames[m] }
func (m ToggleMode) Next() Mode     { return ToggleMode((int(m) + 1) % len(toggleModeNames)) }
func (m ToggleMode) Prev() Mode     { return ToggleMode((int(m) - 1 + len(toggleModeNames)) % len(toggleModeNames)) }

// PowerMode controls whether power rows are combined into one line, split
// per component, or hidden entirely.
type PowerMode int

const (
	PowerCombined PowerMode = iota
	PowerAll
	PowerOff
)

var powerModeNames = [...]string{"combined", "all", "off"}

func (m PowerMode) String() string { return powerModeNames[m] }
func (m PowerMode) Next() Mode     { return PowerMode((int(m) + 1) % len(powerModeNames)) }
func (m PowerMode) Prev() Mode     { return PowerMode((int(m) - 1 + len(powerModeNames)) % len(powerModeNames)) }

// MemoryMode controls whether only the aggregate percent is shown or the
// full platform-extended breakdown.
type MemoryMode int

const (
	MemoryPercent MemoryMode = iota
	MemoryAll
)

var memoryModeNames = [...]string{"percent", "all"}

func (m MemoryMode) String() string { return memoryModeNames[m] }
func (m MemoryMode) Next() Mode     { return MemoryMode((int(m) + 1) % len(memoryModeNames)) }
func (m MemoryMode) Prev() Mode     { return MemoryMode((int(m) - 1 + len(memoryModeNames)) % len(memoryModeNames)) }

// ParseCPUMode, ParseGPUMode, etc. convert CLI/config strings into modes.
// The bool return is false for an unrecognized value; callers own reporting
// the resulting configuration error.

func ParseCPUMode(s string) (CPUMode, bool) { return parseNamed(s, cpuModeNames[:]) }
func ParseGPUMode(s string) (GPUMode, bool) {
	i, ok := parseNamed(s, gpuModeNames[:])
	return GPUMode(i), ok
}
func ParseViewMode(s string) (ViewMode, bool) {
	i, ok := parseNamed(s, viewModeNames[:])
	return ViewMode(i), ok
}
func ParseToggleMode(s string) (ToggleMode, bool) {
	i, ok := parseNamed(s, toggleModeNames[:])
	return ToggleMode(i), ok
}
func ParsePowerMode(s string) (PowerMode, bool) {
	i, ok := parseNamed(s, powerModeNames[:])
	return PowerMode(i), ok
}
func ParseMemoryMode(s string) (MemoryMode, bool) {
	i, ok := parseNamed(s, memoryModeNames[:])
	return MemoryMode(i), ok
}

func parseNamed(s string, names []string) (CPUMode, bool) {
	for i, n := range names {
		if n == s {
			return CPUMode(i), true
		}
	}
	return 0, false
}

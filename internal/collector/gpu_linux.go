//go:build linux

package collector

import (
	"os/exec"
	"strconv"
	"strings"

	"github.com/kerlenton/system-eye/internal/metric"
	"github.com/kerlenton/system-eye/internal/sample"
)

// GPU shells out to nvidia-smi once per tick when it is present on the
// machine. Grounded on cubestat/linux_reader.py's nvidia-smi probe; absence
// of the binary is not an error, it simply means the collector contributes
// only gpu.total.count = 0.
type GPU struct {
	available bool
}

// NewGPU probes for nvidia-smi once at startup, matching linux_reader.py's
// __init__-time check rather than re-probing every tick.
func NewGPU() *GPU {
	_, err := exec.LookPath("nvidia-smi")
	return &GPU{available: err == nil}
}

func (*GPU) Name() string { return "gpu" }

func (g *GPU) Collect(sample.PlatformContext) (metric.Values, error) {
	if !g.available {
		return metric.Values{{Name: "gpu.total.count", Value: 0}}, nil
	}
	out, err := exec.Command("nvidia-smi",
		"--query-gpu=utilization.gpu,memory.used,memory.total",
		"--format=csv,noheader,nounits",
	).Output()
	if err != nil {
		// nvidia-smi can fail transiently even when present (driver reload,
		// etc). Report no keys this tick rather than erroring out.
		return metric.Values{}, nil
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	result := make(metric.Values, 0, len(lines)*3+1)
	count := 0
	for idx, line := range lines {
		fields := strings.Split(line, ",")
		if len(fields) != 3 {
			continue
		}
		util, uerr := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		usedMB, merr := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		totalMB, terr := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if uerr != nil {
			continue
		}
		i := strconv.Itoa(idx)
		result = append(result, metric.Entry{Name: metric.Build("gpu", "nvidia", i, "compute", "utilization", "percent"), Value: util})
		if merr == nil {
			result = append(result, metric.Entry{Name: metric.Build("gpu", "nvidia", i, "memory", "used", "bytes"), Value: usedMB * 1024 * 1024})
		}
		if terr == nil {
			result = append(result, metric.Entry{Name: metric.Build("gpu", "nvidia", i, "memory", "total", "bytes"), Value: totalMB * 1024 * 1024})
		}
		count++
	}
	result = append(result, metric.Entry{Name: "gpu.total.count", Value: float64(count)})
	return result, nil
}

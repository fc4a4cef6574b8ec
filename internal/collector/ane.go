package collector

// aneUtilizationPercent approximates neural-engine utilization as
// watts / max_watts(model) * 100, clamped to [0, 100], since powermetrics
// reports ANE power draw but not a utilization percentage directly. Kept as
// a pure function so it is testable without a live powermetrics subprocess.
func aneUtilizationPercent(watts, maxWatts float64) float64 {
	pct := watts / maxWatts * 100.0
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return pct
}

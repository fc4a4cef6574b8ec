//go:build darwin

package collector

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/kerlenton/system-eye/internal/metric"
	"github.com/kerlenton/system-eye/internal/sample"
)

// Accel approximates Apple Neural Engine utilization from instantaneous
// power draw.
type Accel struct {
	intervalSeconds float64
	maxWatts        float64
}

// NewAccel detects the machine's chip model once at startup and resolves
// its ANE power ceiling, logging a WARN if the model is unrecognized.
func NewAccel(intervalSeconds float64, log *zap.SugaredLogger) *Accel {
	model := detectChipModel()
	maxWatts, known := aneMaxWattsForModel(model)
	if !known && log != nil {
		log.Warnw("unknown machine model for ANE scaling, using conservative default",
			"model", model, "default_max_watts", maxWatts)
	}
	return &Accel{intervalSeconds: intervalSeconds, maxWatts: maxWatts}
}

func (*Accel) Name() string { return "accel" }

func (a *Accel) Collect(raw sample.PlatformContext) (metric.Values, error) {
	doc, ok := raw.(*sample.PowerMetricsDoc)
	if !ok {
		return nil, fmt.Errorf("collector: accel: unexpected context %T", raw)
	}
	watts := doc.Processor.ANEEnergyMJ / (a.intervalSeconds * 1000.0)
	return metric.Values{{Name: "accel.ane.utilization.percent", Value: aneUtilizationPercent(watts, a.maxWatts)}}, nil
}

package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kerlenton/system-eye/internal/metric"
	"github.com/kerlenton/system-eye/internal/store"
)

// StoreCollector adapts a store.Store to prometheus.Collector. The metric
// set is discovered at scrape time rather than known at registration time
// (a CPU's core count, which disks and interfaces exist), so Describe
// deliberately sends no descriptors — client_golang's "unchecked collector"
// pattern for dynamically-labeled metrics.
type StoreCollector struct {
	store *store.Store
}

// NewStoreCollector wraps st for registration with a prometheus.Registerer.
func NewStoreCollector(st *store.Store) *StoreCollector {
	return &StoreCollector{store: st}
}

// Describe intentionally sends nothing; see the type doc comment.
func (c *StoreCollector) Describe(ch chan<- *prometheus.Desc) {}

// Collect emits the current value of every series in the store as a gauge,
// under its mapped Prometheus name and labels.
func (c *StoreCollector) Collect(ch chan<- prometheus.Metric) {
	c.store.IterOrdered(func(name metric.Name, r *store.Ring) {
		value, ok := r.Last()
		if !ok {
			return
		}
		mapped := Map(name)
		desc := prometheus.NewDesc(mapped.Name, "system-eye: "+string(name), mapped.LabelNames, nil)
		m, err := prometheus.NewConstMetric(desc, prometheus.GaugeValue, value, mapped.LabelValues...)
		if err != nil {
			return
		}
		ch <- m
	})
}

package app

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kerlenton/system-eye/internal/metric"
	"github.com/kerlenton/system-eye/internal/store"
	"github.com/stretchr/testify/require"
)

// TestRunHeadlessCSVStopsOnContextCancel exercises the non-TUI path end to
// end: a real sampler and real collectors write real ticks into the store
// and stream them out as CSV, and Run returns cleanly once ctx is canceled.
func TestRunHeadlessCSVStopsOnContextCancel(t *testing.T) {
	cfg := Defaults()
	cfg.RefreshMS = 50
	cfg.CSV = true
	resolved, err := Resolve(cfg)
	require.NoError(t, err)

	log := zap.NewNop().Sugar()
	a, err := New(resolved, log)
	require.NoError(t, err)
	require.NotNil(t, a.csvWriter)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	err = a.Run(ctx)
	require.NoError(t, err)

	names := 0
	a.Store().IterOrdered(func(_ metric.Name, _ *store.Ring) { names++ })
	require.Greater(t, names, 0)
}

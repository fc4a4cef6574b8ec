package sample

import (
	"context"
	"time"
)

// PollingSampler drives the tick loop by wall-clock deadline: it maintains
// a deadline and invokes the callback with a bare PollingContext marker,
// leaving the actual OS reads to the collectors.
type PollingSampler struct {
	Period time.Duration
}

// Run loops until ctx is canceled, calling cb once per Period. It advances
// the deadline by a fixed Period each tick and sleeps only the remainder,
// so slow callbacks don't compound drift across ticks.
func (s PollingSampler) Run(ctx context.Context, cb Callback) error {
	if s.Period <= 0 {
		return context.DeadlineExceeded
	}
	t := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		cb(Sample{Timestamp: NowSeconds(), Raw: PollingContext{Timestamp: NowSeconds()}})
		now := time.Now()

		t = t.Add(s.Period)
		sleep := t.Sub(now)
		if sleep < 0 {
			sleep = 0
			t = now
		}
		timer := time.NewTimer(sleep)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

// Package app wires the sampler, store, presenters and outputs into the
// three run shapes this application supports: an interactive TUI, headless
// CSV capture, or a headless HTTP/Prometheus scrape endpoint. Grounded on
// dashboard.go's runLiveDashboard: ui.Init/defer ui.Close, a ticker-plus-
// PollEvents select loop, and a context.Context carrying the shutdown
// signal — generalized from one hardcoded set of three plot widgets to the
// dynamic, presenter-driven horizon.Widget.
package app

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	ui "github.com/gizak/termui/v3"
	"go.uber.org/zap"

	"github.com/kerlenton/system-eye/internal/collector"
	"github.com/kerlenton/system-eye/internal/display"
	"github.com/kerlenton/system-eye/internal/horizon"
	csvout "github.com/kerlenton/system-eye/internal/output/csv"
	"github.com/kerlenton/system-eye/internal/output/httpjson"
	promout "github.com/kerlenton/system-eye/internal/output/prometheus"
	"github.com/kerlenton/system-eye/internal/present"
	"github.com/kerlenton/system-eye/internal/sample"
	"github.com/kerlenton/system-eye/internal/store"
)

// App is the assembled runtime: one sampler goroutine feeding a shared
// Store, and either a terminal render/input loop or a headless output
// worker consuming it.
type App struct {
	cfg        Resolved
	log        *zap.SugaredLogger
	store      *store.Store
	collectors []collector.Collector
	presenters []present.Presenter
	sampler    sample.Sampler
	csvWriter  *csvout.Writer

	ticks int64 // atomic count of samples ingested, bounds scroll clamping
}

// New assembles an App from a validated configuration.
func New(cfg Resolved, log *zap.SugaredLogger) (*App, error) {
	st := store.New(cfg.BufferSize)
	intervalSeconds := cfg.RefreshMS.Seconds()

	a := &App{
		cfg:        cfg,
		log:        log,
		store:      st,
		collectors: collector.ForPlatform(intervalSeconds, log),
		presenters: present.Registry(),
		sampler:    newSampler(int(cfg.RefreshMS/time.Millisecond), log),
	}

	if cfg.CSVEnabled {
		a.csvWriter = csvout.NewWriter(os.Stdout)
	}
	return a, nil
}

// Store exposes the underlying series store, e.g. for tests that want to
// assert on ingested values without going through a real sampler.
func (a *App) Store() *store.Store { return a.store }

// Run starts the sampler and, depending on configuration, either the
// interactive TUI or a headless output worker, blocking until ctx is
// canceled or a fatal error occurs.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	onCollectorError := func(name string, err error) {
		a.log.Warnw("collector failed, skipping this tick", "collector", name, "error", err)
	}

	tick := func(s sample.Sample) {
		values := collector.CollectAll(a.collectors, s.Raw, onCollectorError)
		a.store.Ingest(values)
		atomic.AddInt64(&a.ticks, 1)
		if a.csvWriter != nil {
			if err := a.csvWriter.WriteTick(s.Timestamp, values); err != nil {
				a.log.Warnw("csv write failed", "error", err)
			}
		}
	}

	sampleErrCh := make(chan error, 1)
	go func() { sampleErrCh <- a.sampler.Run(ctx, tick) }()

	if a.cfg.HTTPPort != 0 {
		go func() {
			if err := httpjson.Serve(ctx, a.cfg.HTTPHost, a.cfg.HTTPPort, a.store, a.log); err != nil && ctx.Err() == nil {
				a.log.Warnw("http json output exited", "error", err)
			}
		}()
	}
	if a.cfg.PrometheusPort != 0 {
		go func() {
			if err := promout.Serve(ctx, a.cfg.HTTPHost, a.cfg.PrometheusPort, a.store, a.log); err != nil && ctx.Err() == nil {
				a.log.Warnw("prometheus output exited", "error", err)
			}
		}()
	}

	if !a.cfg.TUI() {
		select {
		case err := <-sampleErrCh:
			return err
		case <-ctx.Done():
			return nil
		}
	}
	return a.runTUI(ctx, cancel, sampleErrCh)
}

// runTUI owns the terminal: it is the sole reader and writer of display.State,
// confined to this one goroutine, reading fresh Store snapshots on every
// render and reacting to input via display.Translate.
func (a *App) runTUI(ctx context.Context, cancel context.CancelFunc, sampleErrCh chan error) error {
	if err := ui.Init(); err != nil {
		return fmt.Errorf("app: init terminal: %w", err)
	}
	defer ui.Close()

	widget := horizon.NewWidget()
	widget.RefreshMS = int(a.cfg.RefreshMS / time.Millisecond)

	state := display.New()
	state.View = a.cfg.View
	state.CPU = a.cfg.CPU
	state.GPU = a.cfg.GPU
	state.Swap = a.cfg.Swap
	state.Network = a.cfg.Network
	state.Disk = a.cfg.Disk
	state.Power = a.cfg.Power
	state.Memory = a.cfg.Memory

	w, h := ui.TerminalDimensions()
	widget.SetRect(0, 0, w, h)

	render := func() {
		rect := widget.GetRect()
		cols := rect.Dx()
		if cols < 1 {
			return
		}
		widget.Lines = BuildLines(a.store, a.presenters, state, cols)
		widget.View = state.View
		widget.Selection = state.Selection
		ui.Render(widget)
	}
	render()

	uiEvents := ui.PollEvents()
	ticker := time.NewTicker(a.cfg.RefreshMS)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case err := <-sampleErrCh:
			return err

		case e := <-uiEvents:
			if e.ID == "<Resize>" {
				payload, ok := e.Payload.(ui.Resize)
				if ok {
					widget.SetRect(0, 0, payload.Width, payload.Height)
				}
				render()
				continue
			}
			intent, ok := display.Translate(e)
			if !ok {
				continue
			}
			if intent.Kind == display.KindQuit {
				cancel()
				return nil
			}
			maxColsOff := int(atomic.LoadInt64(&a.ticks)) - 1
			if maxColsOff < 0 {
				maxColsOff = 0
			}
			state.Apply(intent, maxColsOff)
			if state.Dirty {
				render()
				state.Dirty = false
			}

		case <-ticker.C:
			if !state.Paused {
				render()
			}
		}
	}
}

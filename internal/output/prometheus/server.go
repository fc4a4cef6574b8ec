package prometheus

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kerlenton/system-eye/internal/store"
)

// Serve runs a /metrics Prometheus scrape endpoint on host:port until ctx
// is canceled. See httpjson.Serve for the shutdown/error-reporting contract
// this mirrors.
func Serve(ctx context.Context, host string, port int, st *store.Store, log *zap.SugaredLogger) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(NewStoreCollector(st)); err != nil {
		return fmt.Errorf("prometheus: register collector: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", host, port),
		Handler: mux,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if log != nil {
		log.Infow("prometheus output listening", "addr", srv.Addr)
	}
	err := srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		if log != nil {
			log.Warnw("prometheus output stopped", "error", err)
		}
		return err
	}
	return nil
}

// Package httpjson serves the current value and buffered history of every
// metric as JSON. Grounded on context-labs-mactop's gorilla/mux + rs/cors
// HTTP server wiring, retargeted
// from a fixed set of named routes to a single /metrics endpoint driven by
// the store's dynamic series set.
package httpjson

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/kerlenton/system-eye/internal/metric"
	"github.com/kerlenton/system-eye/internal/store"
)

// Series is one metric's current value and its buffered history, oldest to
// newest.
type Series struct {
	Current float64   `json:"current"`
	History []float64 `json:"history"`
}

// Response is the /metrics payload: one Series per known metric, plus the
// wall-clock time it was assembled at. generated_at lets a polling client
// tell a stale cached response from a fresh empty one without a second
// round trip.
type Response struct {
	GeneratedAt float64           `json:"generated_at"`
	Metrics     map[string]Series `json:"metrics"`
}

// Handler builds the /metrics handler backed by st.
func Handler(st *store.Store) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/metrics", func(w http.ResponseWriter, req *http.Request) {
		resp := Response{
			GeneratedAt: float64(time.Now().UnixNano()) / 1e9,
			Metrics:     make(map[string]Series),
		}
		st.IterOrdered(func(name metric.Name, ring *store.Ring) {
			history, _ := ring.Slice(ring.Len(), 0)
			current, _ := ring.Last()
			resp.Metrics[string(name)] = Series{Current: current, History: history}
		})
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}).Methods(http.MethodGet)
	return cors.Default().Handler(r)
}

// Serve runs the HTTP server on host:port until ctx is canceled. Bind and
// accept failures are logged and returned; a failed output worker is
// non-fatal to the rest of the application, so the caller decides whether
// to keep running.
func Serve(ctx context.Context, host string, port int, st *store.Store, log *zap.SugaredLogger) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", host, port),
		Handler: Handler(st),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if log != nil {
		log.Infow("http json output listening", "addr", srv.Addr)
	}
	err := srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		if log != nil {
			log.Warnw("http json output stopped", "error", err)
		}
		return err
	}
	return nil
}

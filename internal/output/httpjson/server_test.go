package httpjson

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kerlenton/system-eye/internal/metric"
	"github.com/kerlenton/system-eye/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerReturnsCurrentAndHistory(t *testing.T) {
	st := store.New(10)
	st.Ingest(metric.Values{{Name: "cpu.total.utilization.percent", Value: 10}})
	st.Ingest(metric.Values{{Name: "cpu.total.utilization.percent", Value: 20}})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	Handler(st).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	series, ok := resp.Metrics["cpu.total.utilization.percent"]
	require.True(t, ok)
	assert.Equal(t, 20.0, series.Current)
	assert.Equal(t, []float64{10, 20}, series.History)
	assert.NotZero(t, resp.GeneratedAt)
}

func TestHandlerOmitsUnknownMetrics(t *testing.T) {
	st := store.New(10)
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	Handler(st).ServeHTTP(rec, req)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Metrics)
}

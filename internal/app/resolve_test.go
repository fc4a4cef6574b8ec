package app

import (
	"testing"

	"github.com/kerlenton/system-eye/internal/metric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaultsAreValid(t *testing.T) {
	r, err := Resolve(Defaults())
	require.NoError(t, err)
	assert.Equal(t, metric.ViewOne, r.View)
	assert.Equal(t, metric.CPUAll, r.CPU)
	assert.True(t, r.TUI())
}

func TestResolveRejectsZeroRefresh(t *testing.T) {
	c := Defaults()
	c.RefreshMS = 0
	_, err := Resolve(c)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestResolveRejectsZeroBufferSize(t *testing.T) {
	c := Defaults()
	c.BufferSize = 0
	_, err := Resolve(c)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestResolveRejectsMutuallyExclusiveOutputs(t *testing.T) {
	c := Defaults()
	c.CSV = true
	c.HTTPPort = 8080
	_, err := Resolve(c)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestResolveRejectsBothHTTPAndPrometheusPorts(t *testing.T) {
	c := Defaults()
	c.HTTPPort = 8080
	c.PrometheusPort = 9090
	_, err := Resolve(c)
	require.Error(t, err)
}

func TestResolveRejectsInvalidModeString(t *testing.T) {
	c := Defaults()
	c.CPU = "bogus"
	_, err := Resolve(c)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestResolveNonDefaultTUIFalseWithHTTPPort(t *testing.T) {
	c := Defaults()
	c.HTTPPort = 8080
	r, err := Resolve(c)
	require.NoError(t, err)
	assert.False(t, r.TUI())
}

func TestIsConfigErrorFalseForOtherErrors(t *testing.T) {
	assert.False(t, IsConfigError(assertPlainError()))
}

func assertPlainError() error {
	return &plainError{"boom"}
}

type plainError struct{ s string }

func (e *plainError) Error() string { return e.s }

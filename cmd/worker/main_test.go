package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"publications-api/internal/domain/entity"
	"publications-api/internal/observability/metrics"
	"publications-api/internal/repository"
)

type stubStats struct {
	stats repository.PublicationStats
	err   error
}

func (s stubStats) Stats(context.Context) (repository.PublicationStats, error) {
	return s.stats, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStatsJob_Run(t *testing.T) {
	before := testutil.ToFloat64(metrics.StatsRefreshTotal.WithLabelValues("success"))

	job := &statsJob{
		stats:   stubStats{stats: repository.PublicationStats{Scheduled: 4, Published: 9}},
		logger:  discardLogger(),
		timeout: time.Second,
	}
	job.Run(context.Background())

	assert.Equal(t, 4.0, testutil.ToFloat64(metrics.PublicationsByState.WithLabelValues(string(entity.StateScheduled))))
	assert.Equal(t, 9.0, testutil.ToFloat64(metrics.PublicationsByState.WithLabelValues(string(entity.StatePublished))))
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.StatsRefreshTotal.WithLabelValues("success")))
}

func TestStatsJob_RunFailure(t *testing.T) {
	metrics.SetPublicationStates(1, 2)
	before := testutil.ToFloat64(metrics.StatsRefreshTotal.WithLabelValues("failure"))

	job := &statsJob{
		stats:   stubStats{err: errors.New("connection refused")},
		logger:  discardLogger(),
		timeout: time.Second,
	}
	job.Run(context.Background())

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.StatsRefreshTotal.WithLabelValues("failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.PublicationsByState.WithLabelValues(string(entity.StateScheduled))),
		"gauges keep their last value when a refresh fails")
}

func TestMetricsMux(t *testing.T) {
	metrics.RecordStatsRefresh(true)
	mux := newMetricsMux()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "publication_stats_refresh_total")
}

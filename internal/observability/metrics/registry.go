package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Business metrics track application-specific operations
var (
	// EntitiesCreatedTotal counts successfully created records by entity
	EntitiesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "entities_created_total",
			Help: "Total number of records created",
		},
		[]string{"entity"}, // entity: media, post, publication
	)

	// GuardRejectionsTotal counts writes refused by integrity rules
	GuardRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "integrity_guard_rejections_total",
			Help: "Total number of writes rejected by integrity guards",
		},
		[]string{"entity", "reason"},
	)

	// PublicationsByState tracks publications per derived state.
	// Refreshed periodically by the worker.
	PublicationsByState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "publications_by_state",
			Help: "Number of publications in each lifecycle state",
		},
		[]string{"state"},
	)

	// StatsRefreshTotal counts worker refresh runs by result
	StatsRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "publication_stats_refresh_total",
			Help: "Total number of publication statistics refresh runs",
		},
		[]string{"result"},
	)
)

// Database metrics track database performance
var (
	// DBQueryDuration measures database query duration
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"operation"},
	)

	// DBConnectionsActive tracks active database connections
	DBConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		},
	)

	// DBConnectionsIdle tracks idle database connections
	DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)
)

// RecordDBQuery records the duration of a database query operation.
// Operation should describe the query type (e.g., "select_media", "insert_publication").
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateDBConnectionStats updates database connection pool statistics.
func UpdateDBConnectionStats(active, idle int) {
	DBConnectionsActive.Set(float64(active))
	DBConnectionsIdle.Set(float64(idle))
}

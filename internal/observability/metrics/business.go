package metrics

import "publications-api/internal/domain/entity"

// RecordEntityCreated counts a successfully created record.
func RecordEntityCreated(entityName string) {
	EntitiesCreatedTotal.WithLabelValues(entityName).Inc()
}

// RecordGuardRejection counts a write refused by an integrity rule.
// Reason is a short label such as "conflict", "forbidden" or "missing_media".
func RecordGuardRejection(entityName, reason string) {
	GuardRejectionsTotal.WithLabelValues(entityName, reason).Inc()
}

// SetPublicationStates publishes the current scheduled and published counts.
// This gauge should be updated periodically to reflect the current state.
func SetPublicationStates(scheduled, published int64) {
	PublicationsByState.WithLabelValues(string(entity.StateScheduled)).Set(float64(scheduled))
	PublicationsByState.WithLabelValues(string(entity.StatePublished)).Set(float64(published))
}

// RecordStatsRefresh records the outcome of a statistics refresh run.
func RecordStatsRefresh(success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	StatsRefreshTotal.WithLabelValues(result).Inc()
}

// Package resilience provides reliability and fault tolerance patterns for the application.
//
// The package supports:
//   - Circuit breakers around database calls (circuitbreaker)
//   - Retry logic with exponential backoff and jitter (retry)
//
// Usage Example:
//
//	dcb := circuitbreaker.NewDBCircuitBreaker(db)
//	rows, err := dcb.QueryContext(ctx, "SELECT id FROM medias")
//
//	err := retry.WithBackoff(ctx, retry.DBConfig(), func() error {
//	    return db.PingContext(ctx)
//	})
package resilience

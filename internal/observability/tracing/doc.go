// Package tracing provides OpenTelemetry tracing integration.
//
// It installs the tracer provider, exposes the application tracer and offers
// an HTTP middleware that starts a server span per request and returns the
// trace id in the X-Trace-Id response header.
//
// Example usage:
//
//	shutdown := tracing.InitProvider("publications-api", version, true, logger)
//	defer func() { _ = shutdown(context.Background()) }()
//
//	ctx, span := tracing.GetTracer().Start(ctx, "publication.Update")
//	defer span.End()
package tracing

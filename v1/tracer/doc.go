// Package tracer provides distributed tracing built on OpenTelemetry.
//
// It wraps the OTel SDK behind a small API: create spans for significant
// operations, record errors on them, attach attributes, and propagate trace
// context across service boundaries using W3C trace headers. The provider is
// registered globally, so the logger package can pull trace and span IDs out
// of any context for log correlation.
//
// Basic usage:
//
//	tracerClient, err := tracer.NewClient(tracer.Config{
//	    ServiceName:  "search-api",
//	    AppEnv:       "production",
//	    EnableExport: true,
//	}, log)
//	if err != nil {
//	    return err
//	}
//
//	ctx, span := tracerClient.StartSpan(ctx, "handle-request")
//	defer span.End()
//
//	if err := doWork(ctx); err != nil {
//	    tracerClient.RecordErrorOnSpan(span, err)
//	    return err
//	}
//
// With export disabled the tracer still creates spans locally, which keeps
// trace IDs flowing into logs without shipping data anywhere.
package tracer

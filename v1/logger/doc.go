// Package logger provides structured logging functionality built on Uber's Zap.
//
// The package exposes a thin wrapper with leveled methods that accept an
// optional error and free-form field maps, plus *WithContext variants that
// attach OpenTelemetry trace/span IDs when tracing integration is enabled.
//
// Direct usage:
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:       logger.Info,
//		ServiceName: "vector-search",
//	})
//
//	log.Info("User logged in", nil, map[string]interface{}{
//		"user_id": "12345",
//	})
//
//	// With trace context (automatically includes trace_id and span_id)
//	log.InfoWithContext(ctx, "Processing request", nil, map[string]interface{}{
//		"request_id": "abc-123",
//	})
//
// For fx-based applications, FXModule provides the logger and registers a
// shutdown hook that flushes buffered entries:
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Provide(func() logger.Config {
//			return logger.Config{Level: logger.Info}
//		}),
//		// other modules...
//	)
package logger

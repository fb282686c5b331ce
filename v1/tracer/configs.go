package tracer

// Config holds the settings for the OpenTelemetry tracer provider.
type Config struct {
	// ServiceName identifies this process in exported traces.
	ServiceName string `yaml:"service_name" envconfig:"TRACER_SERVICE_NAME"`

	// AppEnv tags every span with the deployment environment.
	AppEnv string `yaml:"app_env" envconfig:"TRACER_APP_ENV"`

	// EnableExport turns on the OTLP HTTP exporter (endpoint taken from the
	// standard OTEL_EXPORTER_OTLP_* environment variables). When false the
	// provider still creates spans, so trace IDs remain available for log
	// correlation, but nothing leaves the process.
	EnableExport bool `yaml:"enable_export" envconfig:"TRACER_ENABLE_EXPORT"`
}

// DefaultConfig provides sensible defaults for local development.
func DefaultConfig() Config {
	return Config{
		ServiceName: "std",
		AppEnv:      "development",
	}
}

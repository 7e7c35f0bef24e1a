package config

// Otel configures trace export. Tracing is a no-op when CollectorURL is empty.
type Otel struct {
	ServiceName    string  `env:"OTEL_SERVICE_NAME" envDefault:"hvac-catalog"`
	ServiceVersion string  `env:"OTEL_SERVICE_VERSION" envDefault:"dev"`
	CollectorURL   string  `env:"OTEL_COLLECTOR_URL"`
	Insecure       bool    `env:"OTEL_INSECURE"`
	TraceIDRatio   float64 `env:"OTEL_TRACE_ID_RATIO" envDefault:"0.1"`
	CollectorAuth  string  `env:"OTEL_COLLECTOR_AUTH"`
}

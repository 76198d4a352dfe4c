// Package config provides the configuration model of sample-app.
//
// Configuration comes from a YAML document compiled into the binary; the
// program reads no files or environment variables at runtime.
package config

// EmbeddedConfig holds the raw YAML compiled into the binary via go:embed.
type EmbeddedConfig []byte

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the logging level ("DEBUG", "INFO", "WARN", "ERROR", "FATAL", "SILENT").
	Level string `yaml:"level"`
}

// SystemConfig holds system-wide settings.
type SystemConfig struct {
	Logging LoggingConfig `yaml:"logging"`
}

// GreetingConfig configures the greeting run.
type GreetingConfig struct {
	// Name labels the run in logs, metrics and spans.
	Name string `yaml:"name"`
}

// MetricsConfig controls the in-process metric recorder.
type MetricsConfig struct {
	// Enabled selects the prometheus recorder; otherwise a no-op recorder is used.
	Enabled bool `yaml:"enabled"`
	// Namespace prefixes every metric name.
	Namespace string `yaml:"namespace"`
}

// TracingConfig controls the in-process tracer.
type TracingConfig struct {
	// Enabled selects the OpenTelemetry tracer; otherwise a no-op tracer is used.
	Enabled bool `yaml:"enabled"`
	// InstrumentationName is the name of the OpenTelemetry tracer.
	InstrumentationName string `yaml:"instrumentation_name"`
}

// SampleConfig holds all configuration under the "sample" top-level key.
type SampleConfig struct {
	System   SystemConfig   `yaml:"system"`
	Greeting GreetingConfig `yaml:"greeting"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Tracing  TracingConfig  `yaml:"tracing"`
}

// Config is the root of the application configuration.
type Config struct {
	Sample SampleConfig `yaml:"sample"`
}

// NewConfig returns a Config with default values.
func NewConfig() *Config {
	return &Config{
		Sample: SampleConfig{
			System: SystemConfig{
				Logging: LoggingConfig{Level: "WARN"},
			},
			Greeting: GreetingConfig{Name: "sampleApp"},
			Metrics: MetricsConfig{
				Enabled:   true,
				Namespace: "sample",
			},
			Tracing: TracingConfig{
				Enabled:             true,
				InstrumentationName: "github.com/beubi/sampleapp",
			},
		},
	}
}

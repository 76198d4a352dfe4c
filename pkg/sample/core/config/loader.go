package config

import (
	"gopkg.in/yaml.v3"

	"go.uber.org/fx"

	"github.com/beubi/sampleapp/pkg/sample/support/util/configbinder"
	"github.com/beubi/sampleapp/pkg/sample/support/util/exception"
	"github.com/beubi/sampleapp/pkg/sample/support/util/logger"
)

const moduleName = "config"

// ConfigParams defines the dependencies for NewConfigProvider.
type ConfigParams struct {
	fx.In
	EmbeddedConfig EmbeddedConfig
}

// LoadConfig builds a Config from the defaults of NewConfig overlaid with
// the embedded YAML document. Keys missing from the document keep their
// defaults.
func LoadConfig(embeddedConfig EmbeddedConfig) (*Config, error) {
	cfg := NewConfig()

	var properties map[string]interface{}
	if err := yaml.Unmarshal(embeddedConfig, &properties); err != nil {
		return nil, exception.NewSampleError(moduleName, "failed to unmarshal embedded config", err)
	}

	if len(properties) > 0 {
		if err := configbinder.BindProperties(properties, cfg); err != nil {
			return nil, exception.NewSampleError(moduleName, "failed to bind embedded config", err)
		}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if _, err := logger.ParseLevel(cfg.Sample.System.Logging.Level); err != nil {
		return exception.NewSampleError(moduleName, "invalid sample.system.logging.level", err)
	}
	if cfg.Sample.Greeting.Name == "" {
		return exception.NewSampleError(moduleName, "sample.greeting.name must not be empty", nil)
	}
	if cfg.Sample.Metrics.Enabled && cfg.Sample.Metrics.Namespace == "" {
		return exception.NewSampleError(moduleName, "sample.metrics.namespace must not be empty when metrics are enabled", nil)
	}
	return nil
}

// NewConfigProvider is an Fx provider that loads *Config and applies the
// configured log level.
func NewConfigProvider(params ConfigParams) (*Config, error) {
	cfg, err := LoadConfig(params.EmbeddedConfig)
	if err != nil {
		return nil, err
	}

	logger.SetLogLevel(cfg.Sample.System.Logging.Level)
	logger.Infof("Log level set to: %s", cfg.Sample.System.Logging.Level)
	return cfg, nil
}

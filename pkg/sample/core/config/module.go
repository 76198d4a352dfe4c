package config

import "go.uber.org/fx"

// Module provides *Config. The caller must fx.Supply an EmbeddedConfig.
var Module = fx.Options(
	fx.Provide(NewConfigProvider),
)

package main

import (
	"io"

	"go.uber.org/fx"

	usecase "github.com/beubi/sampleapp/pkg/sample/core/application/usecase"
	config "github.com/beubi/sampleapp/pkg/sample/core/config"
	inframetrics "github.com/beubi/sampleapp/pkg/sample/infrastructure/metrics"
	logger "github.com/beubi/sampleapp/pkg/sample/support/util/logger"
)

// GetApplicationOptions builds the fx options of the application. The
// greeting is written to stdout.
func GetApplicationOptions(embeddedConfig config.EmbeddedConfig, stdout io.Writer) []fx.Option {
	return []fx.Option{
		logger.Module,
		fx.Supply(embeddedConfig),
		fx.Provide(fx.Annotate(
			func() io.Writer { return stdout },
			fx.ResultTags(`name:"stdout"`),
		)),
		config.Module,
		inframetrics.Module,
		usecase.Module,
	}
}

package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	_ "embed"

	"go.uber.org/fx"

	usecase "github.com/beubi/sampleapp/pkg/sample/core/application/usecase"
	config "github.com/beubi/sampleapp/pkg/sample/core/config"
	"github.com/beubi/sampleapp/pkg/sample/support/util/exception"
	logger "github.com/beubi/sampleapp/pkg/sample/support/util/logger"
)

// embeddedConfig is the application configuration compiled into the binary.
//
//go:embed resources/application.yaml
var embeddedConfig []byte

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run prints the greeting to stdout and returns the process exit code.
// Command-line arguments are accepted and ignored.
func run(_ []string, stdout io.Writer) int {
	var launcher *usecase.GreetingLauncher
	fxApp := fx.New(append(
		GetApplicationOptions(config.EmbeddedConfig(embeddedConfig), stdout),
		fx.Populate(&launcher),
	)...)
	if err := fxApp.Err(); err != nil {
		logger.Errorf("Failed to build application: %v", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startCtx, cancelStart := context.WithTimeout(ctx, fxApp.StartTimeout())
	defer cancelStart()
	if err := fxApp.Start(startCtx); err != nil {
		logger.Errorf("Failed to start application: %v", err)
		return 1
	}

	execution, err := launcher.Launch(ctx)
	if err != nil {
		logger.Errorf("Greeting %s (ID: %s): %s: %v",
			execution.ExitStatus, execution.ID, exception.ExtractErrorMessage(err), errors.Unwrap(err))
	}

	stopCtx, cancelStop := context.WithTimeout(context.Background(), fxApp.StopTimeout())
	defer cancelStop()
	if err := fxApp.Stop(stopCtx); err != nil {
		logger.Warnf("Application stopped with errors: %v", err)
	}

	return execution.ExitStatus.ExitCode()
}

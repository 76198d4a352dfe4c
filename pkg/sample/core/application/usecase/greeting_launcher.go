// Package usecase contains the application use case of sample-app: run the
// greeting once and report how it went.
package usecase

import (
	"context"
	"io"
	"time"

	"go.uber.org/fx"

	config "github.com/beubi/sampleapp/pkg/sample/core/config"
	model "github.com/beubi/sampleapp/pkg/sample/core/domain/model"
	metrics "github.com/beubi/sampleapp/pkg/sample/core/metrics"
	"github.com/beubi/sampleapp/pkg/sample/support/util/exception"
	logger "github.com/beubi/sampleapp/pkg/sample/support/util/logger"
)

const moduleName = "launcher"

// GreetingLauncherParams defines the dependencies of NewGreetingLauncher.
type GreetingLauncherParams struct {
	fx.In
	Config         *config.Config
	Stdout         io.Writer `name:"stdout"`
	MetricRecorder metrics.MetricRecorder
	Tracer         metrics.Tracer
}

// GreetingLauncher writes the SampleApp greeting to standard output.
type GreetingLauncher struct {
	name           string
	stdout         io.Writer
	metricRecorder metrics.MetricRecorder
	tracer         metrics.Tracer
}

// NewGreetingLauncher creates a new GreetingLauncher.
func NewGreetingLauncher(p GreetingLauncherParams) *GreetingLauncher {
	return &GreetingLauncher{
		name:           p.Config.Sample.Greeting.Name,
		stdout:         p.Stdout,
		metricRecorder: p.MetricRecorder,
		tracer:         p.Tracer,
	}
}

// Launch constructs a SampleApp and writes its message plus a newline to
// stdout in a single write. The returned execution is never nil.
//
// A context cancelled before the write stops the run with no output. A
// failed or short write ends the run FAILED and returns a *SampleError.
// Failures are returned, not logged; the caller reports them.
func (l *GreetingLauncher) Launch(ctx context.Context) (*model.GreetingExecution, error) {
	execution := model.NewGreetingExecution(l.name)
	l.metricRecorder.RecordGreetingStart(ctx, execution)
	ctx, endSpan := l.tracer.StartGreetingSpan(ctx, execution)
	defer func() {
		endSpan()
		l.metricRecorder.RecordGreetingEnd(ctx, execution)
		logger.Debugf("Greeting '%s' finished: %s", l.name, execution)
	}()

	if err := ctx.Err(); err != nil {
		execution.MarkAsStopped(err)
		return execution, exception.NewSampleError(moduleName, "greeting stopped before writing", err)
	}

	app := model.NewSampleApp()
	line := app.Message() + "\n"

	writeStart := time.Now()
	n, err := io.WriteString(l.stdout, line)
	l.metricRecorder.RecordDuration(ctx, "write", time.Since(writeStart), map[string]string{"greeting": l.name})
	if err == nil && n < len(line) {
		err = io.ErrShortWrite
	}
	if err != nil {
		wrapped := exception.NewSampleErrorf(moduleName, "failed to write greeting after %d of %d bytes", n, len(line), err)
		execution.MarkAsFailed(n, wrapped)
		l.tracer.RecordError(ctx, moduleName, wrapped)
		return execution, wrapped
	}

	l.tracer.RecordEvent(ctx, "greeting.written", map[string]interface{}{"bytes": n})
	execution.MarkAsCompleted(n)
	return execution, nil
}

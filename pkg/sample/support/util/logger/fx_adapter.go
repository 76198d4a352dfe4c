package logger

import (
	"strings"

	"go.uber.org/fx/fxevent"
)

// FxLoggerAdapter implements fxevent.Logger on top of the package logger.
// Container wiring is logged at DEBUG; only failures reach ERROR.
type FxLoggerAdapter struct{}

// NewFxLoggerAdapter creates a new instance of FxLoggerAdapter.
func NewFxLoggerAdapter() fxevent.Logger {
	return &FxLoggerAdapter{}
}

// LogEvent logs events from Fx.
func (l *FxLoggerAdapter) LogEvent(event fxevent.Event) {
	switch e := event.(type) {
	case *fxevent.OnStartExecuting:
		Debugf("OnStart hook executing: %s", shortFunctionName(e.FunctionName))
	case *fxevent.OnStopExecuting:
		Debugf("OnStop hook executing: %s", shortFunctionName(e.FunctionName))
	case *fxevent.OnStartExecuted:
		logHook("OnStart", e.FunctionName, e.Runtime.String(), e.Err)
	case *fxevent.OnStopExecuted:
		logHook("OnStop", e.FunctionName, e.Runtime.String(), e.Err)
	case *fxevent.Provided:
		if e.Err != nil {
			Errorf("Provide error: %v", e.Err)
			return
		}
		Debugf("Provided: %s", strings.Join(e.OutputTypeNames, ", "))
	case *fxevent.Invoked:
		if e.Err != nil {
			Errorf("Invoke failed: %s, error: %v", e.FunctionName, e.Err)
		}
	case *fxevent.Started:
		if e.Err != nil {
			Errorf("Start failed, error: %v", e.Err)
		}
	case *fxevent.Stopped:
		if e.Err != nil {
			Errorf("Stop failed, error: %v", e.Err)
		}
	}
}

func logHook(kind, funcName, runtime string, err error) {
	if err != nil {
		Errorf("%s hook failed: %s, error: %v", kind, shortFunctionName(funcName), err)
		return
	}
	Debugf("%s hook executed: %s (%s)", kind, shortFunctionName(funcName), runtime)
}

// shortFunctionName strips the closure suffix (".func1") fx reports for
// hooks registered from inside a helper.
func shortFunctionName(funcName string) string {
	if idx := strings.LastIndex(funcName, ".func"); idx != -1 {
		return funcName[:idx]
	}
	return funcName
}

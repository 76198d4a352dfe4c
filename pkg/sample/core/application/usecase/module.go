package usecase

import "go.uber.org/fx"

// Module provides *GreetingLauncher. It expects an io.Writer named "stdout".
var Module = fx.Options(
	fx.Provide(NewGreetingLauncher),
)

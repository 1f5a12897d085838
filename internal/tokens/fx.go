package tokens

import "go.uber.org/fx"

var Module = fx.Module("tokens.service",
	fx.Provide(New),
)

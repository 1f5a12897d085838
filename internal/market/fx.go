package market

import (
	"github.com/tradiehq/tradiehq/internal/config"
	"go.uber.org/fx"
)

var Module = fx.Module("market",
	fx.Provide(func(cfg config.Config) Lock {
		return ParseLock(cfg.MarketLock)
	}),
)

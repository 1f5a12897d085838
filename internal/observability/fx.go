package observability

import (
	"github.com/tradiehq/tradiehq/pkg/telemetry"
	"go.uber.org/fx"
)

var Module = fx.Module("observability",
	fx.Provide(telemetry.NewMetrics),
)

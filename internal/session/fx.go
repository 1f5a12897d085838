package session

import (
	"context"

	"github.com/tradiehq/tradiehq/pkg/telemetry"
	"go.uber.org/fx"
)

var Module = fx.Module("session",
	fx.Provide(NewMemoryStore),
	fx.Provide(func(m *MemoryStore) Store { return m }),
	fx.Provide(NewManager),
	fx.Invoke(runPruner),
)

type prunerParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Store     *MemoryStore
	Metrics   *telemetry.Metrics `optional:"true"`
}

func runPruner(p prunerParams) {
	if p.Metrics != nil {
		p.Store.SetPruneHook(func(removed, remaining int) {
			p.Metrics.AddPrunedSessions(removed)
			p.Metrics.SetActiveSessions(float64(remaining))
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go p.Store.Run(ctx)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

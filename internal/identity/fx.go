package identity

import (
	"github.com/tradiehq/tradiehq/internal/identity/repository"
	"github.com/tradiehq/tradiehq/internal/identity/service"
	"go.uber.org/fx"
)

var Module = fx.Module("identity.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)

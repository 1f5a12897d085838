package organization

import (
	"github.com/tradiehq/tradiehq/internal/organization/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("organization.service",
	fx.Provide(repository.New),
)

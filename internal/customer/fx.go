package customer

import (
	"github.com/tradiehq/tradiehq/internal/customer/repository"
	"github.com/tradiehq/tradiehq/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)

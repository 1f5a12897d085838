package job

import (
	"github.com/tradiehq/tradiehq/internal/job/repository"
	"github.com/tradiehq/tradiehq/internal/job/service"
	"go.uber.org/fx"
)

var Module = fx.Module("job.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)

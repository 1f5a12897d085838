package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/tradiehq/tradiehq/internal/clock"
	"github.com/tradiehq/tradiehq/internal/config"
	"github.com/tradiehq/tradiehq/internal/logger"
	"github.com/tradiehq/tradiehq/internal/migration"
	"github.com/tradiehq/tradiehq/internal/observability"
	"github.com/tradiehq/tradiehq/internal/server"
	"github.com/tradiehq/tradiehq/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}

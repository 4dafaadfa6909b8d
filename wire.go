//go:build wireinject

package main

import (
	"context"

	"csv2l5x/internal/app"
	"csv2l5x/ioc"
	"github.com/google/wire"
)

func InitApp(ctx context.Context) (*app.App, func(), error) {
	panic(wire.Build(
		ioc.InitConfig,
		ioc.InitLogger,
		ioc.InitDeviceSource,
		ioc.InitService,
		app.NewApp,
	))
}

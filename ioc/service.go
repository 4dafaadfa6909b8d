package ioc

import (
	"context"

	"csv2l5x/internal/app"
	"csv2l5x/internal/device"
	"go.uber.org/zap"
)

// InitService 构建梯级生成服务。
func InitService(ctx context.Context, cfg app.Config, source device.Source, logger *zap.Logger) (*app.Service, error) {
	return app.NewService(ctx, cfg, source, logger)
}

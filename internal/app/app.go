package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// App 把一次性的生成流程包装成可执行入口。
type App struct {
	Config  Config
	Service *Service
	Logger  *zap.Logger
}

// NewApp 构建 App。
func NewApp(cfg Config, svc *Service, logger *zap.Logger) *App {
	return &App{
		Config:  cfg,
		Service: svc,
		Logger:  logger,
	}
}

// Run 执行一次生成并输出结果。
func (a *App) Run(ctx context.Context) error {
	if a.Service == nil {
		return fmt.Errorf("未初始化 service")
	}

	report, err := a.Service.Generate(ctx)
	if err != nil {
		return err
	}
	if report.Written {
		fmt.Printf("Rungs added successfully and saved to %s\n", report.Output)
	}
	return nil
}

// Shutdown 释放资源。
func (a *App) Shutdown(ctx context.Context) {
	if a.Service != nil {
		if err := a.Service.Close(ctx); err != nil && a.Logger != nil {
			a.Logger.Warn("close app service failed", zap.Error(err))
		}
	}
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
}

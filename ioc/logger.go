package ioc

import (
	"csv2l5x/internal/logging"
	"go.uber.org/zap"
)

// InitLogger 构建全局 logger, cleanup 负责刷盘。
func InitLogger() (*zap.Logger, func(), error) {
	logger, err := logging.New()
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = logger.Sync()
	}
	return logger, cleanup, nil
}

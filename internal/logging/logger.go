package logging

import "go.uber.org/zap"

// New 返回生成器使用的 zap logger, 控制台输出。
func New() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Encoding = "console"
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	cfg.DisableStacktrace = true
	return cfg.Build()
}

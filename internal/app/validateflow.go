package app

import (
	"context"
	"fmt"

	"csv2l5x/internal/l5x"
	"go.uber.org/zap"
)

// ValidateFlow 负责校验模板: 能解析且带有梯形图插入点才算通过。
type ValidateFlow struct {
	TemplatePath string
	Logger       *zap.Logger
}

// Run 执行校验流程。
func (f *ValidateFlow) Run(ctx context.Context) error {
	if f.TemplatePath == "" {
		return fmt.Errorf("校验依赖未注入完整")
	}
	if f.Logger == nil {
		f.Logger = zap.NewNop()
	}

	doc, err := l5x.Load(f.TemplatePath)
	if err != nil {
		return fmt.Errorf("加载 L5X 模板失败: %w", err)
	}

	content, missing := doc.ResolveRLLContent()
	if content == nil {
		return fmt.Errorf("模板缺少 %s 节点", missing)
	}

	existing := l5x.CollectRungs(content)
	f.Logger.Info("模板校验通过",
		zap.String("template", f.TemplatePath),
		zap.Int("rungs", len(existing)))
	return nil
}

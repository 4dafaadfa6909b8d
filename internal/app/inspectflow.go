package app

import (
	"context"
	"fmt"

	"csv2l5x/internal/l5x"
	"csv2l5x/internal/rung"
	"go.uber.org/zap"
)

// InspectFlow 读取一份已生成的 L5X, 把其中的梯级还原成片段列表。
type InspectFlow struct {
	DocumentPath string
	Logger       *zap.Logger
}

func (f *InspectFlow) Run(ctx context.Context) ([]rung.Fragment, error) {
	if f == nil {
		return nil, fmt.Errorf("inspect flow 未初始化")
	}

	doc, err := l5x.Load(f.DocumentPath)
	if err != nil {
		return nil, fmt.Errorf("加载 L5X 文档失败: %w", err)
	}

	content, missing := doc.ResolveRLLContent()
	if content == nil {
		return nil, fmt.Errorf("文档缺少 %s 节点", missing)
	}

	frags := l5x.CollectRungs(content)
	if f.Logger != nil {
		f.Logger.Info("读取梯级完成",
			zap.String("document", f.DocumentPath),
			zap.Int("rungs", len(frags)))
	}
	return frags, nil
}

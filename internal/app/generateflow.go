package app

import (
	"context"
	"fmt"

	"csv2l5x/internal/device"
	"csv2l5x/internal/l5x"
	"csv2l5x/internal/rung"
	"go.uber.org/zap"
)

// GenerateReport 汇总一次生成的结果, Written 为 false 表示
// 模板里没有插入点, 没有产出文件。
type GenerateReport struct {
	Devices int
	Rungs   int
	Removed int
	Written bool
	Output  string
}

// GenerateFlow 负责整条生成流水线: 读设备清单, 合成梯级, 写回模板副本。
type GenerateFlow struct {
	Source       device.Source
	Synth        *rung.Synthesizer
	TemplatePath string
	OutputPath   string
	Logger       *zap.Logger
}

func (f *GenerateFlow) Run(ctx context.Context) (*GenerateReport, error) {
	if f == nil {
		return nil, fmt.Errorf("generate flow 未初始化")
	}
	if f.Source == nil || f.Synth == nil {
		return nil, fmt.Errorf("generate flow 依赖未注入完整")
	}

	devices, err := f.Source.FetchDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("读取设备清单失败: %w", err)
	}
	if f.Logger != nil {
		f.Logger.Info("加载设备清单", zap.Int("devices", len(devices)))
	}

	doc, err := l5x.Load(f.TemplatePath)
	if err != nil {
		return nil, fmt.Errorf("加载 L5X 模板失败: %w", err)
	}

	content, missing := doc.ResolveRLLContent()
	if content == nil {
		if f.Logger != nil {
			f.Logger.Warn("模板缺少梯形图插入点, 跳过生成",
				zap.String("template", f.TemplatePath),
				zap.String("missing", missing))
		}
		return &GenerateReport{Devices: len(devices)}, nil
	}

	removed := l5x.ClearRungs(content)
	frags := f.Synth.Build(devices)
	l5x.AppendRungs(content, frags)

	if err := doc.Write(f.OutputPath); err != nil {
		return nil, fmt.Errorf("写入输出文件失败: %w", err)
	}

	if f.Logger != nil {
		f.Logger.Info("梯级生成完成",
			zap.Int("rungs", len(frags)),
			zap.Int("removed", removed),
			zap.String("output", f.OutputPath))
	}
	return &GenerateReport{
		Devices: len(devices),
		Rungs:   len(frags),
		Removed: removed,
		Written: true,
		Output:  f.OutputPath,
	}, nil
}

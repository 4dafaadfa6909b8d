package app

import (
	"context"
	"fmt"

	"csv2l5x/internal/device"
	"csv2l5x/internal/rung"
	"go.uber.org/zap"
)

// Service 负责装配各个 Flow 并提供统一入口。
type Service struct {
	cfg          Config
	source       device.Source
	GenerateFlow *GenerateFlow
	ValidateFlow *ValidateFlow
	InspectFlow  *InspectFlow
	logger       *zap.Logger
}

// NewService 根据配置构建 Service。
func NewService(ctx context.Context, cfg Config, source device.Source, logger *zap.Logger) (*Service, error) {
	if source == nil {
		return nil, fmt.Errorf("必须提供设备数据源")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	synth := rung.NewSynthesizer(cfg.Target.Tag)

	generateFlow := &GenerateFlow{
		Source:       source,
		Synth:        synth,
		TemplatePath: cfg.Inputs.Template,
		OutputPath:   cfg.Output.Path,
		Logger:       logger,
	}

	validateFlow := &ValidateFlow{
		TemplatePath: cfg.Inputs.Template,
		Logger:       logger,
	}

	inspectFlow := &InspectFlow{
		DocumentPath: cfg.Output.Path,
		Logger:       logger,
	}

	svc := &Service{
		cfg:          cfg,
		source:       source,
		GenerateFlow: generateFlow,
		ValidateFlow: validateFlow,
		InspectFlow:  inspectFlow,
		logger:       logger,
	}
	return svc, nil
}

// Close 释放资源。
func (s *Service) Close(ctx context.Context) error {
	if s.logger != nil {
		_ = s.logger.Sync()
	}
	return nil
}

func (s *Service) Generate(ctx context.Context) (*GenerateReport, error) {
	if s.GenerateFlow == nil {
		return nil, fmt.Errorf("未初始化 generate flow")
	}
	return s.GenerateFlow.Run(ctx)
}

func (s *Service) Validate(ctx context.Context) error {
	if s.ValidateFlow == nil {
		return fmt.Errorf("未初始化 validate flow")
	}
	return s.ValidateFlow.Run(ctx)
}

func (s *Service) Inspect(ctx context.Context) ([]rung.Fragment, error) {
	if s.InspectFlow == nil {
		return nil, fmt.Errorf("未初始化 inspect flow")
	}
	return s.InspectFlow.Run(ctx)
}

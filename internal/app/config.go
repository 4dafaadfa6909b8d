package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"csv2l5x/internal/rung"
	"gopkg.in/yaml.v3"
)

type Inputs struct {
	DevicesCSV string `yaml:"devices_csv"`
	Template   string `yaml:"template"`
}

type Output struct {
	Path string `yaml:"path"`
}

type Target struct {
	Tag string `yaml:"tag"`
}

type Config struct {
	Inputs Inputs `yaml:"inputs"`
	Output Output `yaml:"output"`
	Target Target `yaml:"target"`
}

// DefaultConfig 返回内置的固定文件名与控制器数据结构名,
// 不带配置文件时整条流水线按这套默认值跑。
func DefaultConfig() Config {
	return Config{
		Inputs: Inputs{
			DevicesCSV: "devices.csv",
			Template:   "HMI_Lables_Template.L5X",
		},
		Output: Output{Path: "output.L5X"},
		Target: Target{Tag: rung.DefaultTag},
	}
}

// LoadConfig 从文件加载配置, 文件不存在时退回默认配置,
// 留空的字段也补成默认值。
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("读取配置失败: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("解析配置失败: %w", err)
	}
	return withDefaults(cfg), nil
}

func withDefaults(cfg Config) Config {
	def := DefaultConfig()
	if cfg.Inputs.DevicesCSV == "" {
		cfg.Inputs.DevicesCSV = def.Inputs.DevicesCSV
	}
	if cfg.Inputs.Template == "" {
		cfg.Inputs.Template = def.Inputs.Template
	}
	if cfg.Output.Path == "" {
		cfg.Output.Path = def.Output.Path
	}
	if cfg.Target.Tag == "" {
		cfg.Target.Tag = def.Target.Tag
	}
	return cfg
}

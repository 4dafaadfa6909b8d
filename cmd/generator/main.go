package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"csv2l5x/internal/app"
	"csv2l5x/internal/device"
	"csv2l5x/internal/logging"
)

func main() {
	var configPath, csvPath, templatePath, outPath string
	flag.StringVar(&configPath, "config", "configs/config.yaml", "配置文件路径")
	flag.StringVar(&csvPath, "csv", "", "设备清单 CSV 路径, 覆盖配置")
	flag.StringVar(&templatePath, "template", "", "L5X 模板路径, 覆盖配置")
	flag.StringVar(&outPath, "out", "", "输出 L5X 路径, 覆盖配置")
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(1)
	}

	cmd := flag.Arg(0)

	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}
	if csvPath != "" {
		cfg.Inputs.DevicesCSV = csvPath
	}
	if templatePath != "" {
		cfg.Inputs.Template = templatePath
	}
	if outPath != "" {
		cfg.Output.Path = outPath
	}

	ctx := context.Background()

	logger, err := logging.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "构建 logger 失败: %v\n", err)
		os.Exit(1)
	}

	source, err := device.NewCSVSource(cfg.Inputs.DevicesCSV)
	if err != nil {
		fmt.Fprintf(os.Stderr, "构建设备数据源失败: %v\n", err)
		os.Exit(1)
	}

	svc, err := app.NewService(ctx, cfg, source, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "构建服务失败: %v\n", err)
		os.Exit(1)
	}
	defer svc.Close(ctx)

	switch cmd {
	case "generate":
		var report *app.GenerateReport
		report, err = svc.Generate(ctx)
		if err == nil && report.Written {
			fmt.Printf("Rungs added successfully and saved to %s\n", report.Output)
		}
	case "validate":
		err = svc.Validate(ctx)
	case "inspect":
		err = inspect(ctx, svc)
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "%s 执行失败: %v\n", cmd, err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("用法: generator [-config configs/config.yaml] [-csv devices.csv] [-template HMI_Lables_Template.L5X] [-out output.L5X] {generate|validate|inspect}")
}

func inspect(ctx context.Context, svc *app.Service) error {
	frags, err := svc.Inspect(ctx)
	if err != nil {
		return err
	}
	for _, f := range frags {
		fmt.Printf("#%d %s\n", f.Number, f.Text)
	}
	return nil
}

package ioc

import (
	"csv2l5x/internal/app"
	"csv2l5x/internal/device"
)

// InitDeviceSource 构建设备清单数据源。
func InitDeviceSource(cfg app.Config) (device.Source, error) {
	return device.NewCSVSource(cfg.Inputs.DevicesCSV)
}

package device

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Source 抽象设备清单数据源。
type Source interface {
	FetchDevices(ctx context.Context) ([]Device, error)
}

// StaticSource 用于测试或最小实现, 直接返回内存中的设备清单。
type StaticSource struct {
	Devices []Device
}

// FetchDevices 返回预设清单。
func (s *StaticSource) FetchDevices(context.Context) ([]Device, error) {
	return s.Devices, nil
}

// CSVSource 从逗号分隔的文本文件读取设备清单, 不要求表头。
type CSVSource struct {
	path string
}

// NewCSVSource 构建 CSV 数据源。
func NewCSVSource(path string) (*CSVSource, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("设备清单路径不能为空")
	}
	return &CSVSource{path: path}, nil
}

// FetchDevices 按文件行序返回设备清单, 行内字段数不符即失败。
func (s *CSVSource) FetchDevices(context.Context) ([]Device, error) {
	rows, err := readRows(s.path)
	if err != nil {
		return nil, err
	}
	devices := make([]Device, 0, len(rows))
	for i, row := range rows {
		d, err := fromRow(row)
		if err != nil {
			return nil, fmt.Errorf("第 %d 行设备记录无效: %w", i+1, err)
		}
		devices = append(devices, d)
	}
	return devices, nil
}

// readRows 只负责按行读出字段列表, 不做任何字段数或内容校验。
func readRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开设备清单失败: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("读取设备清单失败: %w", err)
	}
	return rows, nil
}

package device

import "fmt"

// fieldCount 是一条设备记录的固定字段数, 顺序与 CSV 列一一对应。
const fieldCount = 5

// Device 表示需要映射进控制器内存的一台网络设备。
// 字段内容原样保留, 不做格式校验。
type Device struct {
	ModuleName string
	IPAddress  string
	ID         string
	EMSwitch   string
	Port       string
}

// fromRow 按固定顺序拆解一行记录, 字段数不符直接报错。
func fromRow(row []string) (Device, error) {
	if len(row) != fieldCount {
		return Device{}, fmt.Errorf("期望 %d 个字段, 实际 %d 个", fieldCount, len(row))
	}
	return Device{
		ModuleName: row[0],
		IPAddress:  row[1],
		ID:         row[2],
		EMSwitch:   row[3],
		Port:       row[4],
	}, nil
}

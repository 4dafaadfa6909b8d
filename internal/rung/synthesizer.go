package rung

import (
	"fmt"
	"strings"

	"csv2l5x/internal/device"
)

const (
	// UseTarget 与 TypeNormal 是生成梯级的固定属性值。
	UseTarget  = "Target"
	TypeNormal = "N"

	// DefaultTag 是控制器侧存放设备描述的数据结构名。
	DefaultTag = "ENET_STAT_1stSYS_ID"

	noOpText = "NOP();"
)

// Fragment 表示一条待写入 RLLContent 的梯级片段。
// Comment 与 Text 均为原文, 序列化时以 CDATA 形式存放, 不做转义。
type Fragment struct {
	Number  int
	Use     string
	Type    string
	Comment string
	Text    string
}

// Synthesizer 负责把设备记录合成梯级片段。
type Synthesizer struct {
	tag string
}

// NewSynthesizer 构建合成器, tag 为空时使用 DefaultTag。
func NewSynthesizer(tag string) *Synthesizer {
	if strings.TrimSpace(tag) == "" {
		tag = DefaultTag
	}
	return &Synthesizer{tag: tag}
}

// Build 按输入顺序为每台设备生成两条梯级: 先是带横幅注释的 NOP 占位梯级,
// 然后是把设备名逐字符写入控制器描述区的 MOV 梯级。编号从 1 开始连续递增。
func (s *Synthesizer) Build(devices []device.Device) []Fragment {
	frags := make([]Fragment, 0, len(devices)*2)
	number := 1
	for _, d := range devices {
		frags = append(frags, Fragment{
			Number:  number,
			Use:     UseTarget,
			Type:    TypeNormal,
			Comment: buildComment(d.ModuleName),
			Text:    noOpText,
		})
		number++

		frags = append(frags, Fragment{
			Number: number,
			Use:    UseTarget,
			Type:   TypeNormal,
			Text:   s.buildMoves(d),
		})
		number++
	}
	return frags
}

func buildComment(moduleName string) string {
	return MustTemplate("comment.tmpl", map[string]string{"ModuleName": moduleName})
}

// buildMoves 先写名称长度, 再按字符序写入每个码点, 地址都落在设备 ID 下标上。
// 生成的指令串对本工具是不透明文本, 语法由下游控制器运行时决定。
func (s *Synthesizer) buildMoves(d device.Device) string {
	runes := []rune(d.ModuleName)
	moves := make([]string, 0, len(runes)+1)
	moves = append(moves, fmt.Sprintf("MOV(%d, %s[%s].Description.LEN)", len(runes), s.tag, d.ID))
	for i, r := range runes {
		moves = append(moves, fmt.Sprintf("MOV(%d, %s[%s].Description.DATA[%d])", r, s.tag, d.ID, i))
	}
	return "[" + strings.Join(moves, ", ") + " ];"
}

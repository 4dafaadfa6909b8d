package l5x

import (
	"strconv"

	"csv2l5x/internal/rung"
	"github.com/beevik/etree"
)

// AppendRungs 把片段按序追加到 content 下。注释与指令文本写成 CDATA 块,
// 保证星号横幅和 MOV 指令串原样落盘, 不经过实体转义。
func AppendRungs(content *etree.Element, frags []rung.Fragment) {
	for _, f := range frags {
		el := content.CreateElement("Rung")
		el.CreateAttr("Use", f.Use)
		el.CreateAttr("Number", strconv.Itoa(f.Number))
		el.CreateAttr("Type", f.Type)
		if f.Comment != "" {
			c := el.CreateElement("Comment")
			c.CreateCData(f.Comment)
		}
		t := el.CreateElement("Text")
		t.CreateCData(f.Text)
	}
}

// CollectRungs 从 content 读回全部梯级片段, 顺序与文档一致。
// 用于 inspect 流程和生成结果的回读校验。
func CollectRungs(content *etree.Element) []rung.Fragment {
	if content == nil {
		return nil
	}
	var frags []rung.Fragment
	for _, el := range content.SelectElements("Rung") {
		f := rung.Fragment{
			Use:  el.SelectAttrValue("Use", ""),
			Type: el.SelectAttrValue("Type", ""),
		}
		if n, err := strconv.Atoi(el.SelectAttrValue("Number", "")); err == nil {
			f.Number = n
		}
		if c := el.SelectElement("Comment"); c != nil {
			f.Comment = c.Text()
		}
		if t := el.SelectElement("Text"); t != nil {
			f.Text = t.Text()
		}
		frags = append(frags, f)
	}
	return frags
}

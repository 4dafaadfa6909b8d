package l5x

import "github.com/beevik/etree"

// ClearRungs 删除 content 下所有 Rung 直接子节点, 返回删除数量。
// 重新生成前必须先清空, 否则梯级会随每次运行不断累积。
func ClearRungs(content *etree.Element) int {
	if content == nil {
		return 0
	}
	rungs := content.SelectElements("Rung")
	for _, r := range rungs {
		content.RemoveChild(r)
	}
	return len(rungs)
}

package l5x

import "github.com/beevik/etree"

// contentPath 是从文档根出发到逻辑内容节点的固定标签路径。
// 定位只按每层的直接子元素标签名匹配, 不递归搜索, 不看属性。
var contentPath = []string{"Controller", "Programs", "Program", "Routines", "Routine", "RLLContent"}

// RLLContent 返回文档序上第一个完整解析出固定路径的 RLLContent 节点,
// 路径在任意一层断掉则返回 nil。
func (d *Document) RLLContent() *etree.Element {
	el, _ := d.ResolveRLLContent()
	return el
}

// ResolveRLLContent 除定位结果外还报告第一个缺失的层级标签,
// 供校验流程给出可读的诊断; 定位成功时 missing 为空串。
func (d *Document) ResolveRLLContent() (el *etree.Element, missing string) {
	root := d.Root()
	if root == nil {
		return nil, contentPath[0]
	}
	level := []*etree.Element{root}
	for _, tag := range contentPath {
		var next []*etree.Element
		for _, parent := range level {
			next = append(next, parent.SelectElements(tag)...)
		}
		if len(next) == 0 {
			return nil, tag
		}
		level = next
	}
	return level[0], ""
}

package l5x

import (
	"fmt"

	"github.com/beevik/etree"
)

const xmlDeclaration = `version="1.0" encoding="UTF-8"`

// Document 封装一棵 L5X 工程文档树, 提供最小读写接口。
// 树在单次运行内被独占持有, 不做跨协程共享。
type Document struct {
	tree *etree.Document
}

// Load 解析 L5X 文件。文件缺失或标记不合法都直接失败, 不做结构校验,
// 缺少预期节点的情况留给定位器处理。
func Load(path string) (*Document, error) {
	tree := etree.NewDocument()
	tree.ReadSettings.PreserveCData = true
	if err := tree.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("解析 L5X 文档失败: %w", err)
	}
	return &Document{tree: tree}, nil
}

// Write 序列化文档: 带编码声明头, 两空格缩进。
func (d *Document) Write(path string) error {
	d.ensureDeclaration()
	d.tree.Indent(2)
	if err := d.tree.WriteToFile(path); err != nil {
		return fmt.Errorf("写入 L5X 文档失败: %w", err)
	}
	return nil
}

// Root 返回文档根元素, 空文档返回 nil。
func (d *Document) Root() *etree.Element {
	return d.tree.Root()
}

// ensureDeclaration 保证文档首部有 xml 声明, 模板自带的声明原样保留。
func (d *Document) ensureDeclaration() {
	for _, tok := range d.tree.Child {
		if pi, ok := tok.(*etree.ProcInst); ok && pi.Target == "xml" {
			return
		}
	}
	pi := d.tree.CreateProcInst("xml", xmlDeclaration)
	d.tree.RemoveChild(pi)
	d.tree.InsertChildAt(0, pi)
}

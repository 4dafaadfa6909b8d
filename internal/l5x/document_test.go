package l5x

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"csv2l5x/internal/rung"
)

const templateXML = `<?xml version="1.0" encoding="UTF-8"?>
<RSLogix5000Content SchemaRevision="1.0" TargetName="Demo">
  <Controller Use="Target" Name="Demo">
    <Programs>
      <Program Name="MainProgram">
        <Routines>
          <Routine Name="MainRoutine" Type="RLL">
            <RLLContent>
              <Rung Use="Target" Number="0" Type="N">
                <Text><![CDATA[NOP();]]></Text>
              </Rung>
            </RLLContent>
          </Routine>
        </Routines>
      </Program>
    </Programs>
  </Controller>
</RSLogix5000Content>
`

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "template.L5X")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write doc: %v", err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.L5X")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeDoc(t, "<a><b></a>")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for malformed document")
	}
}

func TestResolveRLLContent(t *testing.T) {
	doc, err := Load(writeDoc(t, templateXML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	el, missing := doc.ResolveRLLContent()
	if el == nil {
		t.Fatalf("expected insertion point, missing %q", missing)
	}
	if missing != "" {
		t.Fatalf("missing should be empty, got %q", missing)
	}
	if el.Tag != "RLLContent" {
		t.Fatalf("expect RLLContent, got %s", el.Tag)
	}
}

func TestResolveReportsMissingLevel(t *testing.T) {
	doc, err := Load(writeDoc(t, `<RSLogix5000Content><Controller><Programs><Program Name="x"/></Programs></Controller></RSLogix5000Content>`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	el, missing := doc.ResolveRLLContent()
	if el != nil {
		t.Fatalf("expected no insertion point")
	}
	if missing != "Routines" {
		t.Fatalf("expect missing Routines, got %q", missing)
	}
	if doc.RLLContent() != nil {
		t.Fatalf("RLLContent should be nil")
	}
}

func TestResolveFirstMatchInDocumentOrder(t *testing.T) {
	doc, err := Load(writeDoc(t, `<RSLogix5000Content>
  <Controller>
    <Programs>
      <Program Name="Empty"/>
      <Program Name="Main">
        <Routines>
          <Routine Name="First"><RLLContent/></Routine>
          <Routine Name="Second"><RLLContent/></Routine>
        </Routines>
      </Program>
    </Programs>
  </Controller>
</RSLogix5000Content>`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	el, missing := doc.ResolveRLLContent()
	if el == nil {
		t.Fatalf("expected insertion point, missing %q", missing)
	}
	if got := el.Parent().SelectAttrValue("Name", ""); got != "First" {
		t.Fatalf("expect first routine in document order, got %q", got)
	}
}

func TestClearRungs(t *testing.T) {
	doc, err := Load(writeDoc(t, templateXML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	content := doc.RLLContent()
	if removed := ClearRungs(content); removed != 1 {
		t.Fatalf("expect 1 removed, got %d", removed)
	}
	if rest := content.SelectElements("Rung"); len(rest) != 0 {
		t.Fatalf("expect no rungs left, got %d", len(rest))
	}
	if removed := ClearRungs(content); removed != 0 {
		t.Fatalf("second clear should remove 0, got %d", removed)
	}
	if removed := ClearRungs(nil); removed != 0 {
		t.Fatalf("nil content should remove 0, got %d", removed)
	}
}

func TestAppendCollectRoundTrip(t *testing.T) {
	doc, err := Load(writeDoc(t, templateXML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	content := doc.RLLContent()
	ClearRungs(content)

	frags := []rung.Fragment{
		{Number: 1, Use: "Target", Type: "N", Comment: "banner line", Text: "NOP();"},
		{Number: 2, Use: "Target", Type: "N", Text: "[MOV(3, TAG[3].Description.LEN) ];"},
	}
	AppendRungs(content, frags)

	got := CollectRungs(content)
	if len(got) != 2 {
		t.Fatalf("expect 2 rungs, got %d", len(got))
	}
	for i := range frags {
		if got[i] != frags[i] {
			t.Fatalf("rung %d mismatch:\n got %+v\nwant %+v", i, got[i], frags[i])
		}
	}
}

func TestWriteKeepsLiteralTextBlocks(t *testing.T) {
	doc, err := Load(writeDoc(t, templateXML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	content := doc.RLLContent()
	ClearRungs(content)
	AppendRungs(content, []rung.Fragment{
		{Number: 1, Use: "Target", Type: "N", Comment: "A&B", Text: "NOP();"},
	})

	out := filepath.Join(t.TempDir(), "out.L5X")
	if err := doc.Write(out); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	text := string(data)
	if !strings.HasPrefix(text, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Fatalf("missing declaration, got %q", text[:60])
	}
	if strings.Count(text, "<?xml") != 1 {
		t.Fatalf("expect single declaration")
	}
	if !strings.Contains(text, "<![CDATA[A&B]]>") {
		t.Fatalf("comment should stay literal, got:\n%s", text)
	}
	if strings.Contains(text, "A&amp;B") {
		t.Fatalf("comment should not be entity-escaped")
	}

	reloaded, err := Load(out)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	got := CollectRungs(reloaded.RLLContent())
	if len(got) != 1 || got[0].Comment != "A&B" || got[0].Text != "NOP();" {
		t.Fatalf("reload mismatch: %+v", got)
	}
}

func TestWriteAddsDeclarationWhenAbsent(t *testing.T) {
	doc, err := Load(writeDoc(t, `<RSLogix5000Content><Controller><Programs><Program><Routines><Routine><RLLContent/></Routine></Routines></Program></Programs></Controller></RSLogix5000Content>`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	out := filepath.Join(t.TempDir(), "out.L5X")
	if err := doc.Write(out); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.HasPrefix(string(data), `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Fatalf("declaration not added, got %q", string(data[:40]))
	}
}

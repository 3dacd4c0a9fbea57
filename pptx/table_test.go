package pptx

import (
	"testing"

	"github.com/deckfold/deckfold/model"
)

func tableFrame(rows string) string {
	return `<p:graphicFrame><p:nvGraphicFramePr/>` +
		`<p:xfrm><a:off x="10" y="20"/><a:ext cx="30" cy="40"/></p:xfrm>` +
		`<a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/table">` +
		`<a:tbl><a:tblPr/><a:tblGrid/>` + rows + `</a:tbl></a:graphicData></a:graphic></p:graphicFrame>`
}

func tableCell(attrs, inner, text string) string {
	body := ""
	if text != "" {
		body = `<a:txBody><a:bodyPr/><a:p><a:r><a:t>` + text + `</a:t></a:r></a:p></a:txBody>`
	}
	return `<a:tc` + attrs + `>` + body + inner + `</a:tc>`
}

func extractTable(t *testing.T, rows string) *model.Table {
	t.Helper()
	r := openReader(t, deckFiles(t, tableFrame(rows)))
	doc, err := r.Slide(1)
	if err != nil {
		t.Fatalf("Slide failed: %v", err)
	}
	if len(doc.Tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(doc.Tables))
	}
	return doc.Tables[0]
}

func TestGridSpanMerge(t *testing.T) {
	rows := `<a:tr>` + tableCell(` gridSpan="2"`, "", "Merged Header") + tableCell(` hMerge="1"`, "", "") + `</a:tr>` +
		`<a:tr>` + tableCell("", "", "A") + tableCell("", "", "B") + `</a:tr>`
	tbl := extractTable(t, rows)

	if tbl.Rows != 2 || tbl.Columns != 2 {
		t.Fatalf("dimensions: got %dx%d, want 2x2", tbl.Rows, tbl.Columns)
	}
	// The continuation cell is consumed by the span, leaving one logical
	// cell that occupies both columns.
	if len(tbl.Cells[0]) != 1 {
		t.Fatalf("merged row: got %d cells, want 1", len(tbl.Cells[0]))
	}
	head := tbl.Cells[0][0]
	if head.Text != "Merged Header" || head.ColSpan != 2 {
		t.Errorf("merged cell: %+v", head)
	}
	if len(tbl.Cells[1]) != 2 || tbl.Cells[1][0].Text != "A" || tbl.Cells[1][1].Text != "B" {
		t.Errorf("second row: %+v", tbl.Cells[1])
	}
}

func TestShortRowPadding(t *testing.T) {
	rows := `<a:tr>` + tableCell("", "", "h1") + tableCell("", "", "h2") + tableCell("", "", "h3") + `</a:tr>` +
		`<a:tr>` + tableCell("", "", "only") + `</a:tr>`
	tbl := extractTable(t, rows)

	if tbl.Columns != 3 {
		t.Fatalf("columns: got %d, want 3", tbl.Columns)
	}
	if len(tbl.Cells[1]) != 3 {
		t.Fatalf("padded row: got %d cells, want 3", len(tbl.Cells[1]))
	}
	for i := 1; i < 3; i++ {
		pad := tbl.Cells[1][i]
		if pad.Text != "" || pad.ColSpan != 1 || pad.RowSpan != 1 {
			t.Errorf("pad cell %d: %+v", i, pad)
		}
	}
}

func TestRowSpanRecordedNotSkipped(t *testing.T) {
	rows := `<a:tr>` + tableCell(` rowSpan="2"`, "", "tall") + tableCell("", "", "r1c2") + `</a:tr>` +
		`<a:tr>` + tableCell(` vMerge="1"`, "", "") + tableCell("", "", "r2c2") + `</a:tr>`
	tbl := extractTable(t, rows)

	if tbl.Cells[0][0].RowSpan != 2 {
		t.Errorf("rowSpan: got %d, want 2", tbl.Cells[0][0].RowSpan)
	}
	// Vertical continuation cells stay in the physical row: only gridSpan
	// triggers skipping.
	if len(tbl.Cells[1]) != 2 || tbl.Cells[1][1].Text != "r2c2" {
		t.Errorf("second row: %+v", tbl.Cells[1])
	}
}

func TestRectangularTableUnchanged(t *testing.T) {
	rows := `<a:tr>` + tableCell("", "", "a") + tableCell("", "", "b") + `</a:tr>` +
		`<a:tr>` + tableCell("", "", "c") + tableCell("", "", "d") + `</a:tr>`
	tbl := extractTable(t, rows)

	if tbl.Rows != 2 || tbl.Columns != 2 {
		t.Fatalf("dimensions: got %dx%d", tbl.Rows, tbl.Columns)
	}
	for i, row := range tbl.Cells {
		if len(row) != 2 {
			t.Fatalf("row %d: %d cells", i, len(row))
		}
		for j, cell := range row {
			if cell.ColSpan != 1 || cell.RowSpan != 1 {
				t.Errorf("cell %d,%d spans: %+v", i, j, cell)
			}
		}
	}
	if tbl.Cells[1][1].Text != "d" {
		t.Errorf("cell text: %q", tbl.Cells[1][1].Text)
	}
}

func TestEmptyTableDropped(t *testing.T) {
	r := openReader(t, deckFiles(t, tableFrame("")))
	doc, err := r.Slide(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Tables) != 0 {
		t.Errorf("a table with no rows should be dropped, got %d tables", len(doc.Tables))
	}
	// The census still sees the table node.
	if doc.ObjectCounts.Tables != 1 {
		t.Errorf("table count: got %d, want 1", doc.ObjectCounts.Tables)
	}
}

func TestTablePositionFromFrame(t *testing.T) {
	tbl := extractTable(t, `<a:tr>`+tableCell("", "", "x")+`</a:tr>`)
	if tbl.Position.X != 10 || tbl.Position.Y != 20 {
		t.Errorf("position: %+v", tbl.Position)
	}
	if tbl.Size.X != 30 || tbl.Size.Y != 40 {
		t.Errorf("size: %+v", tbl.Size)
	}
}

func TestCellFormatting(t *testing.T) {
	inner := `<a:tcPr><a:lnL w="12700"><a:solidFill><a:srgbClr val="000000"/></a:solidFill></a:lnL>` +
		`<a:solidFill><a:srgbClr val="FFCC00"/></a:solidFill></a:tcPr>`
	tbl := extractTable(t, `<a:tr>`+tableCell("", inner, "shaded")+`</a:tr>`)

	cell := tbl.Cells[0][0]
	// The border's own fill must not shadow the cell fill.
	if cell.FillColor != "#FFCC00" {
		t.Errorf("fill color: got %q, want #FFCC00", cell.FillColor)
	}
	if cell.Borders == nil {
		t.Fatal("borders should be recorded")
	}
	if cell.Borders.Left != 12700 {
		t.Errorf("left border: got %d, want 12700", cell.Borders.Left)
	}
	if cell.Borders.Right != 0 || cell.Borders.Top != 0 || cell.Borders.Bottom != 0 {
		t.Errorf("unset borders should be zero: %+v", cell.Borders)
	}
}

func TestCellMultiParagraphText(t *testing.T) {
	body := `<a:txBody><a:bodyPr/><a:p><a:r><a:t>line one</a:t></a:r></a:p>` +
		`<a:p><a:r><a:t>line </a:t></a:r><a:r><a:t>two</a:t></a:r></a:p></a:txBody>`
	tbl := extractTable(t, `<a:tr><a:tc>`+body+`</a:tc></a:tr>`)

	want := "line one\nline two"
	if got := tbl.Cells[0][0].Text; got != want {
		t.Errorf("cell text: got %q, want %q", got, want)
	}
}

func TestTableMarkdownRendering(t *testing.T) {
	rows := `<a:tr>` + tableCell("", "", "Name") + tableCell("", "", "Value") + `</a:tr>` +
		`<a:tr>` + tableCell("", "", "Revenue") + tableCell("", "", "42") + `</a:tr>`
	tbl := extractTable(t, rows)

	want := "| Name | Value |\n|---|---|\n| Revenue | 42 |\n"
	if got := tbl.ToMarkdown(); got != want {
		t.Errorf("markdown:\ngot:  %q\nwant: %q", got, want)
	}
}

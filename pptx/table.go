package pptx

import (
	"strings"

	"github.com/deckfold/deckfold/model"
	"github.com/deckfold/deckfold/ooxml"
)

// normalizeTable reconstructs a rectangular logical grid from a table
// node. A cell's gridSpan makes the next gridSpan-1 physical cells in
// the row virtual continuations: they are skipped during the physical
// to logical mapping, never read as separate cells. rowSpan is recorded
// on the owning cell but triggers no skip here; cell-indexed consumers
// re-derive vertical continuation themselves.
//
// Returns nil for a table with zero rows.
func (r *Reader) normalizeTable(tbl *ooxml.Node, pos, size model.Point) *model.Table {
	rows := r.x.FindAll(tbl, "//a:tr")
	if len(rows) == 0 {
		return nil
	}

	var grid [][]model.TableCell
	columns := 0

	for _, tr := range rows {
		var logical []model.TableCell
		occupied := 0
		skip := 0

		for _, tc := range r.x.FindAll(tr, "a:tc") {
			if skip > 0 {
				skip--
				continue
			}
			cell := r.readCell(tc)
			logical = append(logical, cell)
			occupied += cell.ColSpan
			if cell.ColSpan > 1 {
				skip = cell.ColSpan - 1
			}
		}

		grid = append(grid, logical)
		if occupied > columns {
			columns = occupied
		}
	}

	// Pad short rows on the right with empty span-1 cells so every row
	// occupies exactly `columns` logical columns.
	for i, row := range grid {
		occupied := 0
		for _, cell := range row {
			occupied += cell.ColSpan
		}
		for occupied < columns {
			row = append(row, model.TableCell{RowSpan: 1, ColSpan: 1})
			occupied++
		}
		grid[i] = row
	}

	return &model.Table{
		Rows:     len(grid),
		Columns:  columns,
		Cells:    grid,
		Position: pos,
		Size:     size,
	}
}

// readCell reads one physical owning cell: text, spans and formatting.
func (r *Reader) readCell(tc *ooxml.Node) model.TableCell {
	cell := model.TableCell{
		Text:    r.cellText(tc),
		RowSpan: parseIntDefault(tc.AttrDefault("rowSpan", "1"), 1),
		ColSpan: parseIntDefault(tc.AttrDefault("gridSpan", "1"), 1),
	}
	if cell.RowSpan < 1 {
		cell.RowSpan = 1
	}
	if cell.ColSpan < 1 {
		cell.ColSpan = 1
	}

	if tcPr := r.x.FindFirst(tc, "a:tcPr"); tcPr != nil {
		// Direct child only: border elements carry their own fills.
		if fill := r.x.FindFirst(tcPr, "a:solidFill"); fill != nil {
			if color, ok := r.fillColor(fill); ok {
				cell.FillColor = color
			}
		}
		cell.Borders = r.cellBorders(tcPr)
	}
	return cell
}

// cellText joins the cell's paragraphs with newlines, runs within a
// paragraph concatenated without separator.
func (r *Reader) cellText(tc *ooxml.Node) string {
	body := r.x.FindFirst(tc, "a:txBody")
	if body == nil {
		return ""
	}
	var paragraphs []string
	for _, p := range r.x.FindAll(body, "a:p") {
		var sb strings.Builder
		for _, t := range r.x.FindAll(p, "//a:t") {
			sb.WriteString(t.Text)
		}
		paragraphs = append(paragraphs, sb.String())
	}
	return strings.Join(paragraphs, "\n")
}

func (r *Reader) cellBorders(tcPr *ooxml.Node) *model.CellBorders {
	var b model.CellBorders
	found := false
	read := func(name string, dst *int64) {
		if ln := r.x.FindFirst(tcPr, "a:"+name); ln != nil {
			*dst = parseInt64(ln.AttrDefault("w", "0"))
			found = true
		}
	}
	read("lnL", &b.Left)
	read("lnR", &b.Right)
	read("lnT", &b.Top)
	read("lnB", &b.Bottom)
	if !found {
		return nil
	}
	return &b
}

package model

import (
	"fmt"
	"strings"
)

// Table is a rectangular logical grid reconstructed from a possibly-merged
// physical cell sequence. Every row holds exactly Columns cells; a merged
// cell occupies one logical cell carrying its span metadata.
type Table struct {
	Rows     int           `json:"rows"`
	Columns  int           `json:"columns"`
	Cells    [][]TableCell `json:"cells"`
	Position Point         `json:"position"`
	Size     Point         `json:"size"`
}

// TableCell is one logical cell. RowSpan and ColSpan are always >= 1.
type TableCell struct {
	Text      string       `json:"text"`
	RowSpan   int          `json:"row_span"`
	ColSpan   int          `json:"col_span"`
	FillColor string       `json:"fill_color,omitempty"`
	Borders   *CellBorders `json:"borders,omitempty"`
}

// CellBorders holds per-edge border widths in EMUs.
type CellBorders struct {
	Left   int64 `json:"left"`
	Right  int64 `json:"right"`
	Top    int64 `json:"top"`
	Bottom int64 `json:"bottom"`
}

// NewTable creates a table of the given dimensions with every cell
// initialized to an empty span-1 cell.
func NewTable(rows, cols int) *Table {
	t := &Table{
		Rows:    rows,
		Columns: cols,
		Cells:   make([][]TableCell, rows),
	}
	for i := 0; i < rows; i++ {
		t.Cells[i] = make([]TableCell, cols)
		for j := 0; j < cols; j++ {
			t.Cells[i][j] = TableCell{RowSpan: 1, ColSpan: 1}
		}
	}
	return t
}

// Cell returns the cell at the given row and column (0-indexed), or nil
// when out of bounds.
func (t *Table) Cell(row, col int) *TableCell {
	if row < 0 || row >= len(t.Cells) {
		return nil
	}
	if col < 0 || col >= len(t.Cells[row]) {
		return nil
	}
	return &t.Cells[row][col]
}

// SetCell replaces the cell at the given position.
func (t *Table) SetCell(row, col int, cell TableCell) error {
	if row < 0 || row >= len(t.Cells) {
		return fmt.Errorf("row index %d out of bounds", row)
	}
	if col < 0 || col >= len(t.Cells[row]) {
		return fmt.Errorf("col index %d out of bounds", col)
	}
	t.Cells[row][col] = cell
	return nil
}

// GetText returns the table content as tab-separated rows.
func (t *Table) GetText() string {
	var sb strings.Builder
	for _, row := range t.Cells {
		for j, cell := range row {
			sb.WriteString(cell.Text)
			if j < len(row)-1 {
				sb.WriteString("\t")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToMarkdown converts the table to markdown, treating the first row as
// the header row.
func (t *Table) ToMarkdown() string {
	if len(t.Cells) == 0 {
		return ""
	}

	var sb strings.Builder

	for j, cell := range t.Cells[0] {
		sb.WriteString("| ")
		sb.WriteString(strings.ReplaceAll(cell.Text, "\n", " "))
		sb.WriteString(" ")
		if j == len(t.Cells[0])-1 {
			sb.WriteString("|")
		}
	}
	sb.WriteString("\n")

	for j := range t.Cells[0] {
		sb.WriteString("|---")
		if j == len(t.Cells[0])-1 {
			sb.WriteString("|")
		}
	}
	sb.WriteString("\n")

	for i := 1; i < len(t.Cells); i++ {
		for j, cell := range t.Cells[i] {
			sb.WriteString("| ")
			sb.WriteString(strings.ReplaceAll(cell.Text, "\n", " "))
			sb.WriteString(" ")
			if j == len(t.Cells[i])-1 {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// ToCSV converts the table to CSV format.
func (t *Table) ToCSV() string {
	var sb strings.Builder
	for _, row := range t.Cells {
		for j, cell := range row {
			text := cell.Text
			if strings.Contains(text, ",") || strings.Contains(text, "\"") || strings.Contains(text, "\n") {
				text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
			}
			sb.WriteString(text)
			if j < len(row)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
